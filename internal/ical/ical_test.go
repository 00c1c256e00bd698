package ical_test

import (
	"bytes"
	"strings"
	"testing"

	goical "github.com/emersion/go-ical"
	"github.com/stretchr/testify/require"

	icalx "ivcal/internal/ical"
	"ivcal/internal/storage"
)

func TestEncode(t *testing.T) {
	events := []storage.Event{
		{
			ID:          "1",
			Title:       "django developer",
			Description: "1st Round",
			Interviewer: "Vinodini",
			Date:        "2025-08-29",
			StartTime:   "5:00 PM",
			EndTime:     "6:00 PM",
			Link:        "https://meet.example.com/abc",
		},
		{
			ID:        "2",
			Title:     "broken",
			Date:      "not-a-date",
			StartTime: "5:00 PM",
		},
		{
			ID:        "3",
			Title:     "open ended",
			Date:      "2025-08-30",
			StartTime: "9:00 AM",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, icalx.Encode(&buf, events))
	text := buf.String()

	cal, err := goical.NewDecoder(strings.NewReader(text)).Decode()
	require.NoError(t, err)

	var summaries []string
	for _, comp := range cal.Children {
		if comp.Name != goical.CompEvent {
			continue
		}
		summary, err := comp.Props.Text(goical.PropSummary)
		require.NoError(t, err)
		summaries = append(summaries, summary)
	}

	// The malformed event is skipped, the rest are exported.
	require.Equal(t, []string{"django developer", "open ended"}, summaries)

	require.Contains(t, text, "Interviewer: Vinodini")
	require.True(t, strings.Contains(text, "https://meet.example.com/abc"))
}
