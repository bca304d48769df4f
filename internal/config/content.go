package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"betagym/internal/domain/content"
	"betagym/internal/domain/location"
)

// SiteContent is the layout of the CONTENT_FILE YAML document.
//
//	business:
//	  address: "..."
//	  coordinates: {lat: 32.0853, lng: 34.7818}
//	sections:
//	  hero:
//	    heading: "..."
type SiteContent struct {
	Business *location.Info    `yaml:"business"`
	Sections content.Overrides `yaml:"sections"`
}

// ParseContent decodes a content document. Unknown keys are rejected so a
// typo does not silently fall back to the defaults.
func ParseContent(r io.Reader) (*SiteContent, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc SiteContent
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return &sc, nil
		}
		return nil, fmt.Errorf("parse content: %w", err)
	}
	return &sc, nil
}

func LoadContentFile(path string) (*SiteContent, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	return ParseContent(bytes.NewReader(raw))
}

// business merges the file's business block over the built-in details.
func (sc *SiteContent) business() location.Info {
	info := location.DefaultInfo()
	if sc == nil || sc.Business == nil {
		return info
	}
	b := sc.Business
	if b.Name != "" {
		info.Name = b.Name
	}
	if b.Address != "" {
		info.Address = b.Address
	}
	if b.Phone != "" {
		info.Phone = b.Phone
	}
	if b.Email != "" {
		info.Email = b.Email
	}
	if len(b.Hours) > 0 {
		info.Hours = b.Hours
	}
	if b.Coordinates != nil {
		info.Coordinates = b.Coordinates
	}
	return info
}

// ContentStore holds the active page content and location panel. Readers
// always see a consistent pair; a failed reload keeps the previous one.
type ContentStore struct {
	mu    sync.RWMutex
	page  content.Page
	panel *location.Panel
}

// NewContentStore builds a store from the defaults.
func NewContentStore() *ContentStore {
	s := &ContentStore{}
	if err := s.Apply(nil); err != nil {
		// defaults always carry coordinates
		panic(err)
	}
	return s
}

// Apply validates sc and swaps it in. A nil sc restores the defaults.
func (s *ContentStore) Apply(sc *SiteContent) error {
	var overrides content.Overrides
	if sc != nil {
		overrides = sc.Sections
	}

	panel, err := location.NewPanel(sc.business())
	if err != nil {
		return fmt.Errorf("business: %w", err)
	}
	page := content.Resolve(overrides)

	s.mu.Lock()
	s.page = page
	s.panel = panel
	s.mu.Unlock()
	return nil
}

// Reload reads path and applies it.
func (s *ContentStore) Reload(path string) error {
	sc, err := LoadContentFile(path)
	if err != nil {
		return err
	}
	return s.Apply(sc)
}

// Page returns the active content. Callers must treat its slices as read-only.
func (s *ContentStore) Page() content.Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

func (s *ContentStore) Panel() *location.Panel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.panel
}
