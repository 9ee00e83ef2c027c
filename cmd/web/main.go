package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/server"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/config"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/workforce"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the workforce projection API server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "workforce.yaml",
		"Path to the settings file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	controller, err := workforce.BuildController(logger, cfg, false)
	if err != nil {
		return fmt.Errorf("failed to build workforce controller: %w", err)
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().Msgf("Registered baseline sources:")
	for _, source := range controller.Sources() {
		logger.Info().Msgf("Name: `%s`", source)
	}

	// .env entries take precedence over the settings file.
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = cfg.Server.Host
	}
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = strconv.Itoa(cfg.Server.Port)
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Workforce: controller,
		},
	})

	return webAPI.Start()
}
