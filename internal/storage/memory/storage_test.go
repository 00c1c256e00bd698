package memorystorage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ivcal/internal/storage"
	memorystorage "ivcal/internal/storage/memory"
)

func TestStorage(t *testing.T) {
	t.Run("add assigns id and preserves order", func(t *testing.T) {
		s := memorystorage.New()
		first := storage.Event{Title: "django developer", Date: "2025-08-29", StartTime: "5:00 PM"}
		second := storage.Event{Title: "python developer", Date: "2025-03-05", StartTime: "10:00 AM"}

		require.NoError(t, s.Add(&first))
		require.NoError(t, s.Add(&second))
		require.NotEmpty(t, first.ID)
		require.NotEmpty(t, second.ID)
		require.NotEqual(t, first.ID, second.ID)

		events := s.List()
		require.Len(t, events, 2)
		require.Equal(t, first, events[0])
		require.Equal(t, second, events[1])
	})

	t.Run("add rejects duplicate id", func(t *testing.T) {
		s := memorystorage.New()
		e := storage.Event{ID: "fixed", Title: "test"}
		require.NoError(t, s.Add(&e))

		dup := storage.Event{ID: "fixed", Title: "other"}
		require.ErrorIs(t, s.Add(&dup), storage.ErrDuplicateEventID)
	})

	t.Run("update replaces by id", func(t *testing.T) {
		s := memorystorage.New()
		e := storage.Event{Title: "before", Date: "2025-08-29", StartTime: "5:00 PM"}
		require.NoError(t, s.Add(&e))

		updated := e
		updated.Title = "after"
		require.NoError(t, s.Update(e.ID, updated))

		events := s.List()
		require.Len(t, events, 1)
		require.Equal(t, "after", events[0].Title)
		require.Equal(t, e.ID, events[0].ID)
	})

	t.Run("update unknown id fails", func(t *testing.T) {
		s := memorystorage.New()
		err := s.Update("missing", storage.Event{Title: "x"})
		require.ErrorIs(t, err, storage.ErrNotFoundEvent)
	})

	t.Run("remove keeps order of the rest", func(t *testing.T) {
		s := memorystorage.New()
		events := []storage.Event{
			{Title: "a", Date: "2025-08-29"},
			{Title: "b", Date: "2025-08-29"},
			{Title: "c", Date: "2025-08-29"},
		}
		for i := range events {
			require.NoError(t, s.Add(&events[i]))
		}

		s.Remove(events[1].ID)

		rest := s.List()
		require.Len(t, rest, 2)
		require.Equal(t, "a", rest[0].Title)
		require.Equal(t, "c", rest[1].Title)

		// Index stays consistent after the shift.
		require.NoError(t, s.Update(events[2].ID, storage.Event{Title: "c2"}))
		require.Equal(t, "c2", s.List()[1].Title)
	})

	t.Run("remove unknown id is a no-op", func(t *testing.T) {
		s := memorystorage.New()
		e := storage.Event{Title: "a"}
		require.NoError(t, s.Add(&e))
		s.Remove("missing")
		require.Len(t, s.List(), 1)
	})

	t.Run("replace swaps the collection", func(t *testing.T) {
		s := memorystorage.New()
		old := storage.Event{Title: "old"}
		require.NoError(t, s.Add(&old))

		s.Replace([]storage.Event{
			{ID: "1", Title: "loaded-1"},
			{Title: "loaded-2"},
		})

		events := s.List()
		require.Len(t, events, 2)
		require.Equal(t, "loaded-1", events[0].Title)
		require.NotEmpty(t, events[1].ID)
		require.ErrorIs(t, s.Update(old.ID, old), storage.ErrNotFoundEvent)
	})

	t.Run("list returns a copy", func(t *testing.T) {
		s := memorystorage.New()
		e := storage.Event{Title: "a"}
		require.NoError(t, s.Add(&e))

		events := s.List()
		events[0].Title = "mutated"
		require.Equal(t, "a", s.List()[0].Title)
	})
}
