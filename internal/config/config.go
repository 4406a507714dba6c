// Package config keeps the converter's small JSON sidecar: a first-run
// marker recording when the tool was first used and with which version. The
// store is an explicit dependency scoped to a directory, not ambient state in
// the process working directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the sidecar file created inside the store directory.
const FileName = "easyeda2kicad_config.json"

// Local is the persisted sidecar content.
type Local struct {
	UpdatedAt float64 `json:"updated_at"`
	Version   string  `json:"version"`
}

// Store reads and bootstraps the sidecar inside one directory.
type Store struct {
	Dir         string
	ToolVersion string
}

func (s *Store) path() string {
	return filepath.Join(s.Dir, FileName)
}

// Load returns the sidecar content, creating the file on first run.
func (s *Store) Load() (Local, error) {
	if _, err := os.Stat(s.path()); os.IsNotExist(err) {
		initial := Local{
			UpdatedAt: float64(time.Now().UTC().UnixNano()) / float64(time.Second),
			Version:   s.ToolVersion,
		}
		data, err := json.MarshalIndent(initial, "", "    ")
		if err != nil {
			return Local{}, fmt.Errorf("encoding sidecar: %w", err)
		}
		if err := os.WriteFile(s.path(), data, 0o644); err != nil {
			return Local{}, fmt.Errorf("creating sidecar %s: %w", s.path(), err)
		}
		return initial, nil
	} else if err != nil {
		return Local{}, fmt.Errorf("checking sidecar %s: %w", s.path(), err)
	}

	data, err := os.ReadFile(s.path())
	if err != nil {
		return Local{}, fmt.Errorf("reading sidecar %s: %w", s.path(), err)
	}

	var conf Local
	if err := json.Unmarshal(data, &conf); err != nil {
		return Local{}, fmt.Errorf("decoding sidecar %s: %w", s.path(), err)
	}
	return conf, nil
}
