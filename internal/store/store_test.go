package store

import (
	"path/filepath"
	"testing"

	"github.com/mmcdole/kiosk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type savedView struct {
	SearchTerm string   `json:"search_term"`
	Genres     []string `json:"genres"`
}

func rating(r int) *int { return &r }

var openers = map[string]func(t *testing.T) *StateStore{
	"memory": func(t *testing.T) *StateStore {
		s, err := NewStateStore("")
		require.NoError(t, err)
		return s
	},
	"bolt": func(t *testing.T) *StateStore {
		s, err := NewStateStore(filepath.Join(t.TempDir(), "nested", "kiosk.db"))
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	},
}

func TestStateStore_State(t *testing.T) {
	for name, open := range openers {
		t.Run(name, func(t *testing.T) {
			s := open(t)

			_, ok := s.GetState(domain.KindMovies, "1")
			assert.False(t, ok)

			want := domain.UserState{Flags: map[string]bool{"watchlist": true}, Rating: rating(4)}
			require.NoError(t, s.SaveState(domain.KindMovies, "1", want))
			require.NoError(t, s.SaveState(domain.KindMovies, "2", domain.UserState{Flags: map[string]bool{"watched": true}}))
			require.NoError(t, s.SaveState(domain.KindProducts, "1", domain.UserState{Flags: map[string]bool{"favorite": true}}))

			got, ok := s.GetState(domain.KindMovies, "1")
			require.True(t, ok)
			assert.Equal(t, want, got)

			all, err := s.States(domain.KindMovies)
			require.NoError(t, err)
			assert.Len(t, all, 2)
			assert.Equal(t, want, all["1"])

			require.NoError(t, s.DeleteState(domain.KindMovies, "1"))
			_, ok = s.GetState(domain.KindMovies, "1")
			assert.False(t, ok)

			all, err = s.States(domain.KindMovies)
			require.NoError(t, err)
			assert.Len(t, all, 1)

			products, err := s.States(domain.KindProducts)
			require.NoError(t, err)
			assert.True(t, products["1"].Flags["favorite"])
		})
	}
}

func TestStateStore_Views(t *testing.T) {
	for name, open := range openers {
		t.Run(name, func(t *testing.T) {
			s := open(t)

			require.NoError(t, s.SaveView(domain.KindMovies, "nolan", savedView{SearchTerm: "nolan"}))
			require.NoError(t, s.SaveView(domain.KindMovies, "drames", savedView{Genres: []string{"Drame"}}))
			require.NoError(t, s.SaveView(domain.KindProducts, "promo", savedView{}))

			names, err := s.Views(domain.KindMovies)
			require.NoError(t, err)
			assert.Equal(t, []string{"drames", "nolan"}, names)

			var v savedView
			ok, err := s.GetView(domain.KindMovies, "drames", &v)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []string{"Drame"}, v.Genres)

			ok, err = s.GetView(domain.KindMovies, "missing", &v)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.DeleteView(domain.KindMovies, "nolan"))
			names, err = s.Views(domain.KindMovies)
			require.NoError(t, err)
			assert.Equal(t, []string{"drames"}, names)
		})
	}
}

func TestStateStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiosk.db")

	s, err := NewStateStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveState(domain.KindMovies, "7", domain.UserState{Rating: rating(5)}))
	require.NoError(t, s.SaveView(domain.KindMovies, "top", savedView{SearchTerm: "x"}))
	require.NoError(t, s.Close())

	s, err = NewStateStore(path)
	require.NoError(t, err)
	defer s.Close()

	got, ok := s.GetState(domain.KindMovies, "7")
	require.True(t, ok)
	assert.Equal(t, 5, *got.Rating)

	names, err := s.Views(domain.KindMovies)
	require.NoError(t, err)
	assert.Equal(t, []string{"top"}, names)
}
