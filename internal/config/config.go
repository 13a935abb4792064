// Package config persists the small piece of surface state that
// survives restarts: the identities of the two DAW ports, so other
// applications can reconnect to the same virtual endpoints after a
// reload. Pad, layout and coordinate state is deliberately not
// persisted; it is rebuilt from firmware on every activation.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// State is the persisted surface state.
type State struct {
	// SurfaceID uniquely names this surface instance across reloads.
	SurfaceID string `json:"surface_id"`

	// DAWInPort and DAWOutPort are the registered names of the
	// host-internal DAW port pair.
	DAWInPort  string `json:"daw_in_port"`
	DAWOutPort string `json:"daw_out_port"`
}

// NewState creates a fresh state with a generated surface ID and the
// default DAW port names.
func NewState() *State {
	return &State{
		SurfaceID:  uuid.New().String(),
		DAWInPort:  "Launchpad Pro Surface daw in",
		DAWOutPort: "Launchpad Pro Surface daw out",
	}
}

func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "lppro"), nil
}

// StatePath returns the full path to the state file.
func StatePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.json"), nil
}

// Load reads the state from disk, returning a fresh state if none
// exists yet.
func Load() (*State, error) {
	path, err := StatePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewState(), nil
	}
	if err != nil {
		return nil, err
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	if st.SurfaceID == "" {
		st.SurfaceID = uuid.New().String()
	}
	if st.DAWInPort == "" || st.DAWOutPort == "" {
		fresh := NewState()
		if st.DAWInPort == "" {
			st.DAWInPort = fresh.DAWInPort
		}
		if st.DAWOutPort == "" {
			st.DAWOutPort = fresh.DAWOutPort
		}
	}
	return &st, nil
}

// Save writes the state to disk.
func (s *State) Save() error {
	path, err := StatePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
