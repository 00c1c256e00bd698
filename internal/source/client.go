// Package source fetches the upstream interview list and adapts its wire
// shape into the internal event model. This is the only place that knows
// what the upstream records look like.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"ivcal/internal/storage"
	"ivcal/internal/timeutil"
)

var ErrFetch = errors.New("failed to fetch events")

type Config struct {
	URL     string
	Timeout time.Duration
}

type Client struct {
	url        string
	httpClient *http.Client
}

func New(config Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		url:        config.URL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// record is the upstream wire shape.
type record struct {
	ID      json.Number `json:"id"`
	Desc    string      `json:"desc"`
	Start   string      `json:"start"`
	End     string      `json:"end"`
	Link    string      `json:"link"`
	UserDet struct {
		JobID struct {
			Title string `json:"jobRequest_Title"`
		} `json:"job_id"`
		HandledBy struct {
			FirstName string `json:"firstName"`
		} `json:"handled_by"`
	} `json:"user_det"`
}

// Fetch GETs the event list and maps it into events. A transport or decode
// failure is terminal for the whole load; a record with an unparsable start
// is dropped with a warning and the rest survive.
func (c *Client) Fetch(ctx context.Context) ([]storage.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("bad source URL %q: %w", c.url, ErrFetch)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %q failed: %v: %w", c.url, err, ErrFetch)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %q: %w", resp.StatusCode, c.url, ErrFetch)
	}

	var records []record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode response from %q: %v: %w", c.url, err, ErrFetch)
	}

	events := make([]storage.Event, 0, len(records))
	for _, r := range records {
		e, err := mapRecord(r)
		if err != nil {
			log.WithField("id", r.ID.String()).Warnf("dropping upstream record: %v", err)
			continue
		}
		events = append(events, e)
	}
	return events, nil
}

func mapRecord(r record) (storage.Event, error) {
	start, err := parseISOTime(r.Start)
	if err != nil {
		return storage.Event{}, fmt.Errorf("unparsable start %q", r.Start)
	}

	e := storage.Event{
		ID:          r.ID.String(),
		Title:       r.UserDet.JobID.Title,
		Description: r.Desc,
		Interviewer: r.UserDet.HandledBy.FirstName,
		Date:        timeutil.FormatCalendarDate(start),
		StartTime:   timeutil.FormatClockTime(start),
		Link:        r.Link,
	}
	if end, err := parseISOTime(r.End); err == nil {
		e.EndTime = timeutil.FormatClockTime(end)
	} else {
		log.WithField("id", e.ID).Debugf("record has unparsable end %q", r.End)
	}
	return e, nil
}

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseISOTime(text string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", text)
}
