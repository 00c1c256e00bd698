package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ivcal/internal/storage"
)

func TestNavAdvance(t *testing.T) {
	ref := time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		mode Mode
		next time.Time
		prev time.Time
	}{
		{mode: ModeDay, next: ref.AddDate(0, 0, 1), prev: ref.AddDate(0, 0, -1)},
		{mode: ModeWeek, next: time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC), prev: time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC)},
		{mode: ModeMonth, next: time.Date(2025, 9, 29, 0, 0, 0, 0, time.UTC), prev: time.Date(2025, 7, 29, 0, 0, 0, 0, time.UTC)},
		{mode: ModeYear, next: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), prev: time.Date(2024, 8, 29, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			n := Nav{Reference: ref, Mode: tc.mode}
			n.Advance(1)
			require.Equal(t, tc.next, n.Reference)

			n = Nav{Reference: ref, Mode: tc.mode}
			n.Advance(-1)
			require.Equal(t, tc.prev, n.Reference)
		})
	}
}

func TestNavSwitchView(t *testing.T) {
	ref := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 8, 29, 14, 30, 0, 0, time.UTC)

	t.Run("into day resets to today", func(t *testing.T) {
		n := Nav{Reference: ref, Mode: ModeMonth}
		n.switchViewAt(ModeDay, now)
		require.Equal(t, ModeDay, n.Mode)
		require.Equal(t, time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC), n.Reference)
	})

	t.Run("other switches keep the reference", func(t *testing.T) {
		n := Nav{Reference: ref, Mode: ModeDay}
		n.switchViewAt(ModeWeek, now)
		require.Equal(t, ModeWeek, n.Mode)
		require.Equal(t, ref, n.Reference)

		n.switchViewAt(ModeYear, now)
		require.Equal(t, ref, n.Reference)
	})

	t.Run("day to day does not reset", func(t *testing.T) {
		n := Nav{Reference: ref, Mode: ModeDay}
		n.switchViewAt(ModeDay, now)
		require.Equal(t, ref, n.Reference)
	})
}

func TestSelection(t *testing.T) {
	a := storage.Event{ID: "a", Title: "a"}
	b := storage.Event{ID: "b", Title: "b"}
	c := storage.Event{ID: "c", Title: "c"}

	t.Run("single group selects directly", func(t *testing.T) {
		var s Selection
		s.Activate([]storage.Event{a})
		require.Equal(t, SingleSelected, s.State())
		require.Equal(t, a, s.Event())
		require.Empty(t, s.Group())
	})

	t.Run("larger group opens the list", func(t *testing.T) {
		var s Selection
		s.Activate([]storage.Event{a, b, c})
		require.Equal(t, MultiOpen, s.State())
		require.Len(t, s.Group(), 3)
	})

	t.Run("choosing from the list closes it", func(t *testing.T) {
		var s Selection
		s.Activate([]storage.Event{a, b, c})
		s.Choose(b)
		require.Equal(t, SingleSelected, s.State())
		require.Equal(t, b, s.Event())
		require.Empty(t, s.Group())
	})

	t.Run("activating replaces an open selection", func(t *testing.T) {
		var s Selection
		s.Activate([]storage.Event{a})
		s.Activate([]storage.Event{b, c})
		require.Equal(t, MultiOpen, s.State())
		require.Equal(t, storage.Event{}, s.Event())
	})

	t.Run("empty group ignored", func(t *testing.T) {
		var s Selection
		s.Activate(nil)
		require.Equal(t, Idle, s.State())
	})

	t.Run("clear from any state", func(t *testing.T) {
		var s Selection
		s.Activate([]storage.Event{a, b})
		s.Clear()
		require.Equal(t, Idle, s.State())

		s.Activate([]storage.Event{a})
		s.Clear()
		require.Equal(t, Idle, s.State())
	})
}
