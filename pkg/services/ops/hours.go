package ops

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/store"
)

// timeSpan matches the leading "HH:MM-HH:MM" span of an opening-hours cell.
var timeSpan = regexp.MustCompile(`^(\d{1,2}):(\d{2})-(\d{1,2}):(\d{2})`)

var closedMarkers = map[string]struct{}{
	"closed": {},
	"n/a":    {},
	"na":     {},
	"":       {},
	"none":   {},
}

// ParseDayHours converts one day's opening-hours text into decimal hours.
// Split days ("09:00-12:00,14:00-17:00") sum their spans, overnight spans
// ("22:00-06:00") wrap past midnight, and closed markers or unparseable
// text count as zero hours.
func ParseDayHours(text string) float64 {
	text = strings.TrimSpace(text)
	if _, closed := closedMarkers[strings.ToLower(text)]; closed {
		return 0
	}

	if strings.Contains(text, ",") {
		total := 0.0
		for _, span := range strings.Split(text, ",") {
			total += parseSpan(strings.TrimSpace(span))
		}
		return total
	}
	return parseSpan(text)
}

func parseSpan(span string) float64 {
	m := timeSpan.FindStringSubmatch(span)
	if m == nil {
		return 0
	}

	startHour, _ := strconv.Atoi(m[1])
	startMin, _ := strconv.Atoi(m[2])
	endHour, _ := strconv.Atoi(m[3])
	endMin, _ := strconv.Atoi(m[4])

	start := startHour*60 + startMin
	end := endHour*60 + endMin
	if end < start {
		end += 24 * 60
	}
	return float64(end-start) / 60.0
}

// WeeklyHours sums the daily opening hours of one pharmacy record.
func WeeklyHours(p store.Pharmacy) float64 {
	total := 0.0
	for _, text := range p.OpeningHours {
		total += ParseDayHours(text)
	}
	return total
}
