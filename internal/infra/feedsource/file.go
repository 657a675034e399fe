package feedsource

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Moustaash/lcc-availability-2/internal/app/feed"
)

// FileSource reads the raw feed from a local JSON file, the usual setup for
// local development and tests.
type FileSource struct {
	path string
}

func NewFileSource(path string) FileSource {
	return FileSource{path: path}
}

func (s FileSource) Fetch(_ context.Context) ([]feed.RawProperty, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("feedsource: read %s: %w", s.path, err)
	}
	var raw []feed.RawProperty
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("feedsource: decode %s: %w", s.path, err)
	}
	return raw, nil
}
