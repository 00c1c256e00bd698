// Package bucket derives per-cell event groupings for the calendar grids.
// All functions are pure over the input slice: events are grouped in input
// order and the slice is never reordered, so repeated calls with the same
// collection produce the same cells.
package bucket

import (
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"ivcal/internal/storage"
	"ivcal/internal/timeutil"
)

// Slot is a group of events sharing the same date and start time. The first
// event is the representative shown on the compact card; the full list backs
// the overlap badge and the multi-event list.
type Slot struct {
	Events []storage.Event
}

func (s Slot) Representative() storage.Event {
	return s.Events[0]
}

func (s Slot) Size() int {
	return len(s.Events)
}

// DayCells holds the hour-keyed slots for one calendar date. Hours with no
// events stay nil.
type DayCells struct {
	Date  time.Time
	Hours [24][]Slot
}

// WeekCells holds one DayCells per date of the Monday-starting week.
type WeekCells struct {
	Start time.Time
	Days  [7]DayCells
}

// MonthCell is one date cell of the month grid. InMonth is false for the
// leading/trailing days borrowed from adjacent months, which render
// de-emphasized. All events on the date form a single group.
type MonthCell struct {
	Date    time.Time
	InMonth bool
	Events  []storage.Event
}

// MonthCells spans whole Monday-starting weeks: the week containing the 1st
// through the Sunday-ending week containing the last day of the month.
type MonthCells struct {
	Year  int
	Month time.Month
	Cells []MonthCell
}

// MonthGroup is one month bucket of the year view, sorted ascending by
// (date, start time); the earliest event is the representative.
type MonthGroup struct {
	Month  time.Month
	Events []storage.Event
}

func (g MonthGroup) Representative() storage.Event {
	return g.Events[0]
}

type YearCells struct {
	Year   int
	Months [12]MonthGroup
}

// ForDay restricts events to the reference date and groups them into
// hour-keyed slots. Events with an unparsable start time cannot be placed in
// an hour-keyed grid and are skipped.
func ForDay(events []storage.Event, ref time.Time) DayCells {
	return DayCells{Date: timeutil.TruncateToDay(ref), Hours: daySlots(events, ref)}
}

// ForWeek applies the day slotting to each date of the Monday-starting week
// containing ref.
func ForWeek(events []storage.Event, ref time.Time) WeekCells {
	start, _ := timeutil.WeekBounds(ref, true)
	w := WeekCells{Start: start}
	for i := range w.Days {
		date := start.AddDate(0, 0, i)
		w.Days[i] = DayCells{Date: date, Hours: daySlots(events, date)}
	}
	return w
}

// ForMonth buckets events by calendar date over the full month grid,
// including the adjacent-month days of the leading and trailing weeks.
func ForMonth(events []storage.Event, ref time.Time) MonthCells {
	first, last := timeutil.MonthBounds(ref)
	gridStart, _ := timeutil.WeekBounds(first, true)
	_, gridEnd := timeutil.WeekBounds(last, true)

	byDate := make(map[string][]storage.Event)
	for _, e := range events {
		d, err := timeutil.ParseCalendarDate(e.Date)
		if err != nil {
			log.WithField("id", e.ID).Warnf("dropping event with malformed date %q", e.Date)
			continue
		}
		if d.Before(gridStart) || d.After(gridEnd) {
			continue
		}
		key := timeutil.FormatCalendarDate(d)
		byDate[key] = append(byDate[key], e)
	}

	m := MonthCells{Year: ref.Year(), Month: ref.Month()}
	for date := gridStart; !date.After(gridEnd); date = date.AddDate(0, 0, 1) {
		m.Cells = append(m.Cells, MonthCell{
			Date:    date,
			InMonth: date.Month() == ref.Month() && date.Year() == ref.Year(),
			Events:  byDate[timeutil.FormatCalendarDate(date)],
		})
	}
	return m
}

// ForYear partitions the reference year's events into 12 month buckets,
// each sorted ascending by date and start time. Start times that fail to
// parse sort after the parseable ones of the same date.
func ForYear(events []storage.Event, ref time.Time) YearCells {
	y := YearCells{Year: ref.Year()}
	for i := range y.Months {
		y.Months[i].Month = time.Month(i + 1)
	}
	for _, e := range events {
		d, err := timeutil.ParseCalendarDate(e.Date)
		if err != nil {
			log.WithField("id", e.ID).Warnf("dropping event with malformed date %q", e.Date)
			continue
		}
		if d.Year() != ref.Year() {
			continue
		}
		m := &y.Months[int(d.Month())-1]
		m.Events = append(m.Events, e)
	}
	for i := range y.Months {
		sortByStart(y.Months[i].Events)
	}
	return y
}

func daySlots(events []storage.Event, day time.Time) [24][]Slot {
	type slotRef struct {
		hour int
		idx  int
	}
	type dedupKey struct {
		minute           int
		title, start, end string
	}

	var hours [24][]Slot
	slots := make(map[int]slotRef)
	seen := make(map[dedupKey]struct{})

	for _, e := range events {
		d, err := timeutil.ParseCalendarDate(e.Date)
		if err != nil {
			log.WithField("id", e.ID).Warnf("dropping event with malformed date %q", e.Date)
			continue
		}
		if !timeutil.SameDay(d, day) {
			continue
		}
		st, err := timeutil.ParseClockTime(e.StartTime)
		if err != nil {
			log.WithField("id", e.ID).Debugf("skipping event with unparsable start time %q", e.StartTime)
			continue
		}
		minute := st.Hour()*60 + st.Minute()

		key := dedupKey{minute: minute, title: e.Title, start: e.StartTime, end: e.EndTime}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if ref, ok := slots[minute]; ok {
			hours[ref.hour][ref.idx].Events = append(hours[ref.hour][ref.idx].Events, e)
			continue
		}
		h := st.Hour()
		slots[minute] = slotRef{hour: h, idx: len(hours[h])}
		hours[h] = append(hours[h], Slot{Events: []storage.Event{e}})
	}
	return hours
}

func sortByStart(events []storage.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		di, _ := timeutil.ParseCalendarDate(events[i].Date)
		dj, _ := timeutil.ParseCalendarDate(events[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return startMinute(events[i]) < startMinute(events[j])
	})
}

func startMinute(e storage.Event) int {
	st, err := timeutil.ParseClockTime(e.StartTime)
	if err != nil {
		return 24 * 60
	}
	return st.Hour()*60 + st.Minute()
}
