// Package nhsbsa fetches the consolidated pharmaceutical list from the
// NHS Business Services Authority open data portal (a CKAN datastore API).
package nhsbsa

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/store"
)

const (
	// DefaultBaseURL is the datastore_search action endpoint.
	DefaultBaseURL = "https://opendata.nhsbsa.net/api/3/action/datastore_search"
	// DefaultPageSize is the portal's maximum records per request.
	DefaultPageSize = 32000

	openingHoursPrefix = "PHARMACY_OPENING_HOURS_"
)

// Client pages through datastore resources.
type Client interface {
	// Count returns the number of records in a resource without fetching
	// them (limit=0 query).
	Count(ctx context.Context, resourceID string) (int, error)
	// Pharmacies fetches every record of a consolidated pharmacy list
	// resource, following the portal's limit/offset pagination.
	Pharmacies(ctx context.Context, resourceID string) ([]store.Pharmacy, error)
}

// Config tunes the datastore client. Zero values take the defaults above.
type Config struct {
	BaseURL  string
	PageSize int
	Retries  int
}

type client struct {
	http     *retryablehttp.Client
	baseURL  string
	pageSize int
}

func NewClient(logger zerolog.Logger, cfg Config) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}

	rc := retryablehttp.NewClient()
	if cfg.Retries > 0 {
		rc.RetryMax = cfg.Retries
	}
	rc.Logger = leveledLogger{logger: logger.With().Str("component", "nhsbsa").Logger()}

	return &client{
		http:     rc,
		baseURL:  cfg.BaseURL,
		pageSize: cfg.PageSize,
	}
}

type searchResponse struct {
	Success bool `json:"success"`
	Result  struct {
		Total   int                      `json:"total"`
		Records []map[string]interface{} `json:"records"`
	} `json:"result"`
}

func (c *client) Count(ctx context.Context, resourceID string) (int, error) {
	resp, err := c.search(ctx, resourceID, 0, 0)
	if err != nil {
		return 0, err
	}
	return resp.Result.Total, nil
}

func (c *client) Pharmacies(ctx context.Context, resourceID string) ([]store.Pharmacy, error) {
	logger := zerolog.Ctx(ctx)

	var pharmacies []store.Pharmacy
	offset := 0
	for {
		resp, err := c.search(ctx, resourceID, c.pageSize, offset)
		if err != nil {
			return nil, err
		}

		records := resp.Result.Records
		if len(records) == 0 {
			break
		}

		for _, record := range records {
			pharmacies = append(pharmacies, mapPharmacy(record))
		}
		offset += len(records)
		logger.Debug().
			Str("resource_id", resourceID).
			Int("fetched", offset).
			Int("total", resp.Result.Total).
			Msg("datastore page fetched")

		if len(records) < c.pageSize {
			break
		}
	}

	if len(pharmacies) == 0 {
		return nil, fmt.Errorf("resource %q returned no records", resourceID)
	}
	return pharmacies, nil
}

func (c *client) search(ctx context.Context, resourceID string, limit, offset int) (*searchResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("bad datastore base URL %q: %w", c.baseURL, err)
	}
	q := u.Query()
	q.Set("resource_id", resourceID)
	q.Set("limit", strconv.Itoa(limit))
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	u.RawQuery = q.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building datastore request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("datastore request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("datastore returned status %d for resource %q", resp.StatusCode, resourceID)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding datastore response: %w", err)
	}
	if !decoded.Success {
		return nil, fmt.Errorf("datastore reported failure for resource %q", resourceID)
	}
	return &decoded, nil
}

// mapPharmacy extracts the identity and opening-hours columns from a raw
// datastore record. Column sets vary across quarters, so days are found by
// prefix rather than a fixed list.
func mapPharmacy(record map[string]interface{}) store.Pharmacy {
	p := store.Pharmacy{OpeningHours: make(map[string]string)}

	if v, ok := record["ODS_CODE"].(string); ok {
		p.ODSCode = v
	}
	if v, ok := record["PHARMACY_TRADING_NAME"].(string); ok {
		p.Name = v
	}

	for column, value := range record {
		day, found := strings.CutPrefix(column, openingHoursPrefix)
		if !found {
			continue
		}
		switch v := value.(type) {
		case nil:
			p.OpeningHours[day] = ""
		case string:
			p.OpeningHours[day] = v
		default:
			p.OpeningHours[day] = fmt.Sprint(v)
		}
	}
	return p
}

// ResourceYear extracts the starting calendar year from a resource ID such
// as CONSOL_PHARMACY_LIST_202526Q1FINAL.
func ResourceYear(resourceID string) (int, error) {
	parts := strings.Split(resourceID, "_")
	tail := parts[len(parts)-1]
	if len(tail) < 4 {
		return 0, fmt.Errorf("resource ID %q carries no year", resourceID)
	}
	year, err := strconv.Atoi(tail[:4])
	if err != nil {
		return 0, fmt.Errorf("resource ID %q carries no year: %w", resourceID, err)
	}
	return year, nil
}

// leveledLogger adapts zerolog to retryablehttp's logging interface.
type leveledLogger struct {
	logger zerolog.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}
