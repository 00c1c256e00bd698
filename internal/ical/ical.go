// Package ical renders the event collection as an iCalendar document.
package ical

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	log "github.com/sirupsen/logrus"

	"ivcal/internal/storage"
	"ivcal/internal/timeutil"
)

// Encode writes events as a VCALENDAR. Events whose date or start time do
// not parse are skipped with a warning; a missing or unparsable end time
// falls back to one hour after the start.
func Encode(w io.Writer, events []storage.Event) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//ivcal//interview calendar//EN")

	stamp := time.Now().UTC()
	for _, e := range events {
		comp, err := eventComponent(e, stamp)
		if err != nil {
			log.WithField("id", e.ID).Warnf("skipping event in export: %v", err)
			continue
		}
		cal.Children = append(cal.Children, comp)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

func eventComponent(e storage.Event, stamp time.Time) (*ical.Component, error) {
	date, err := timeutil.ParseCalendarDate(e.Date)
	if err != nil {
		return nil, err
	}
	startClock, err := timeutil.ParseClockTime(e.StartTime)
	if err != nil {
		return nil, err
	}

	start := time.Date(date.Year(), date.Month(), date.Day(),
		startClock.Hour(), startClock.Minute(), 0, 0, time.Local)
	end := start.Add(time.Hour)
	if endClock, err := timeutil.ParseClockTime(e.EndTime); err == nil {
		end = time.Date(date.Year(), date.Month(), date.Day(),
			endClock.Hour(), endClock.Minute(), 0, 0, time.Local)
	}

	ev := ical.NewEvent()
	ev.Props.SetText(ical.PropUID, e.ID)
	ev.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	ev.Props.SetText(ical.PropSummary, e.Title)
	ev.Props.SetDateTime(ical.PropDateTimeStart, start)
	ev.Props.SetDateTime(ical.PropDateTimeEnd, end)
	if e.Description != "" || e.Interviewer != "" {
		desc := e.Description
		if e.Interviewer != "" {
			if desc != "" {
				desc += "\n"
			}
			desc += "Interviewer: " + e.Interviewer
		}
		ev.Props.SetText(ical.PropDescription, desc)
	}
	if e.Link != "" {
		ev.Props.SetText(ical.PropURL, e.Link)
	}
	return ev.Component, nil
}
