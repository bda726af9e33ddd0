package storage

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	saveObject   = "highscore"
	saveProperty = "best"
)

// savePayload is the YAML document kept in the save file.
type savePayload struct {
	Best int `yaml:"best"`
}

// SaveFile keeps the single best score in the platform's user data
// directory through gdata. A nil manager runs in memory only.
type SaveFile struct {
	manager *gdata.Manager
	best    int
}

// OpenSaveFile opens the gdata storage for appName.
func OpenSaveFile(appName string) (*SaveFile, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open save data: %w", err)
	}
	return NewSaveFile(m), nil
}

// NewSaveFile wraps an existing manager. m may be nil.
func NewSaveFile(m *gdata.Manager) *SaveFile {
	return &SaveFile{manager: m}
}

// LoadHighScore reads the saved best. A missing save is not an error.
func (f *SaveFile) LoadHighScore() (int, error) {
	if f.manager == nil || !f.manager.ObjectPropExists(saveObject, saveProperty) {
		return f.best, nil
	}

	data, err := f.manager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return f.best, fmt.Errorf("storage: cannot load save data: %w", err)
	}

	var p savePayload
	if err := yaml.Unmarshal(data, &p); err != nil {
		return f.best, fmt.Errorf("storage: cannot decode save data: %w", err)
	}
	f.best = max(f.best, p.Best)
	return f.best, nil
}

// SaveHighScore writes score if it beats the saved best.
func (f *SaveFile) SaveHighScore(score int) error {
	if score <= f.best {
		return nil
	}
	f.best = score
	if f.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(savePayload{Best: score})
	if err != nil {
		return fmt.Errorf("storage: cannot encode save data: %w", err)
	}
	if err := f.manager.SaveObjectProp(saveObject, saveProperty, data); err != nil {
		return fmt.Errorf("storage: cannot write save data: %w", err)
	}
	return nil
}

// Memory keeps the best score for the life of the process.
type Memory struct {
	mu   sync.Mutex
	best int
}

// NewMemory returns a Memory seeded with best.
func NewMemory(best int) *Memory {
	return &Memory{best: best}
}

func (m *Memory) LoadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

func (m *Memory) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = max(m.best, score)
	return nil
}
