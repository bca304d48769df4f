package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betagym/internal/domain/content"
	"betagym/internal/domain/location"
)

const sampleContent = `
business:
  address: "רחוב דיזנגוף 50, תל אביב"
  coordinates: {lat: 32.08, lng: 34.77}
sections:
  hero:
    heading: "ברוכים הבאים"
  services:
    items:
      - {icon: "🧘", title: "יוגה", description: "שיעורי בוקר"}
`

func TestParseContent(t *testing.T) {
	sc, err := ParseContent(strings.NewReader(sampleContent))
	require.NoError(t, err)

	store := NewContentStore()
	require.NoError(t, store.Apply(sc))

	page := store.Page()
	assert.Equal(t, "ברוכים הבאים", page.Hero.Heading)
	assert.Equal(t, content.Defaults().Hero.Subheading, page.Hero.Subheading)
	assert.Len(t, page.Services.Items, 1)

	v := store.Panel().View(true)
	assert.Equal(t, "רחוב דיזנגוף 50, תל אביב", v.Address)
	assert.Equal(t, location.DefaultInfo().Phone, v.Phone)
	assert.Contains(t, v.Map.Marker.Caption, "דיזנגוף")
}

func TestParseContentRejectsUnknownKeys(t *testing.T) {
	_, err := ParseContent(strings.NewReader("sections:\n  heroo:\n    heading: x\n"))
	assert.Error(t, err)

	sc, err := ParseContent(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, sc.Business)
}

func TestApplyKeepsPreviousOnInvalidCoordinates(t *testing.T) {
	store := NewContentStore()
	before := store.Panel()

	err := store.Apply(&SiteContent{Business: &location.Info{Coordinates: &location.LatLng{Lat: 200}}})
	assert.True(t, errors.Is(err, location.ErrInvalidCoordinates))
	assert.Same(t, before, store.Panel())
}

func TestWatchContentReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sections:\n  hero:\n    heading: one\n"), 0o644))

	store := NewContentStore()
	require.NoError(t, store.Reload(path))
	require.Equal(t, "one", store.Page().Hero.Heading)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- WatchContent(ctx, path, store, nil) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// the watcher registers asynchronously; keep rewriting until it is seen
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("sections:\n  hero:\n    heading: two\n"), 0o644)
		return store.Page().Hero.Heading == "two"
	}, 5*time.Second, 100*time.Millisecond)

	// a broken document keeps the last good content
	require.NoError(t, os.WriteFile(path, []byte("sections: [oops"), 0o644))
	time.Sleep(2 * reloadDebounce)
	assert.Equal(t, "two", store.Page().Hero.Heading)
}
