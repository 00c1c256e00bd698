package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"ivcal/internal/source"
	"ivcal/internal/storage"
	"ivcal/internal/timeutil"
)

// ErrValidation marks a create/edit rejected before it reaches the store.
var ErrValidation = errors.New("invalid event")

type App struct {
	Storage storage.Store
	Source  *source.Client
}

func New(store storage.Store, src *source.Client) *App {
	return &App{Storage: store, Source: src}
}

// Load fetches the upstream list and replaces the collection with it. On
// failure the collection is left empty and the error is surfaced to the
// caller; there is no retry.
func (a *App) Load(ctx context.Context) error {
	events, err := a.Source.Fetch(ctx)
	if err != nil {
		a.Storage.Replace(nil)
		return err
	}
	a.Storage.Replace(events)
	log.Infof("loaded %d events", len(events))
	return nil
}

func (a *App) Events() []storage.Event {
	return a.Storage.List()
}

func (a *App) CreateEvent(e storage.Event) (storage.Event, error) {
	if err := validate(e); err != nil {
		return storage.Event{}, err
	}
	if err := a.Storage.Add(&e); err != nil {
		return storage.Event{}, err
	}
	return e, nil
}

func (a *App) UpdateEvent(id string, e storage.Event) error {
	if err := validate(e); err != nil {
		return err
	}
	return a.Storage.Update(id, e)
}

func (a *App) RemoveEvent(id string) {
	a.Storage.Remove(id)
}

func validate(e storage.Event) error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("title is required: %w", ErrValidation)
	}
	if _, err := timeutil.ParseCalendarDate(e.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %w", ErrValidation)
	}
	if _, err := timeutil.ParseClockTime(e.StartTime); err != nil {
		return fmt.Errorf("start time must be like 5:00 PM: %w", ErrValidation)
	}
	if e.EndTime != "" {
		if _, err := timeutil.ParseClockTime(e.EndTime); err != nil {
			return fmt.Errorf("end time must be like 6:00 PM: %w", ErrValidation)
		}
	}
	return nil
}
