// Package learning persists learning statistics between runs as JSON.
package learning

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/remedykit/remedy/internal/domain"
)

const learningFile = ".remedy/learning.json"

// FileStore implements domain.LearningPersistence using JSON file storage.
type FileStore struct{}

func New() *FileStore {
	return &FileStore{}
}

func (f *FileStore) Save(projectPath string, entries map[string]domain.LearningEntry) error {
	fp := filepath.Join(projectPath, learningFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (f *FileStore) Load(projectPath string) (map[string]domain.LearningEntry, error) {
	fp := filepath.Join(projectPath, learningFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries map[string]domain.LearningEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
