package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedState is the demo state stored on disk between runs.
type SavedState struct {
	LastLevel  string  `json:"lastLevel"`
	SpawnX     float64 `json:"spawnX"`
	SpawnY     float64 `json:"spawnY"`
	Fullscreen bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for demo state storage.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadState loads the saved demo state from disk. Returns nil when nothing
// was saved yet.
func LoadState() (*SavedState, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("state")
	if err != nil {
		log.Printf("Warning: Could not load state: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var state SavedState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("Warning: Could not parse saved state: %v", err)
		return nil, err
	}

	return &state, nil
}

// SaveState saves the demo state to disk.
func SaveState(s *SavedState) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if err := gdataManager.SaveItem("state", data); err != nil {
		log.Printf("Warning: Could not save state: %v", err)
		return err
	}
	return nil
}
