package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// JSONStore persists a single JSON document on disk. Writes go through a
// temp file and rename so readers never see a partial file.
type JSONStore struct {
	mu       sync.RWMutex
	filePath string
}

func NewJSONStore(dataDir, filename string) (*JSONStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	return &JSONStore{filePath: filepath.Join(dataDir, filename)}, nil
}

// Load decodes the file into data. A missing file leaves data untouched.
func (s *JSONStore) Load(data interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read(data)
}

func (s *JSONStore) Save(data interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(data)
}

// Update loads the document into data, applies mutate and saves the result,
// holding the write lock for the whole sequence. Nothing is written if
// mutate fails.
func (s *JSONStore) Update(data interface{}, mutate func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.read(data); err != nil {
		return err
	}
	if err := mutate(); err != nil {
		return err
	}
	return s.write(data)
}

func (s *JSONStore) Exists() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := os.Stat(s.filePath)
	return err == nil
}

func (s *JSONStore) read(data interface{}) error {
	file, err := os.Open(s.filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(data)
}

func (s *JSONStore) write(data interface{}) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.filePath), filepath.Base(s.filePath)+".*.tmp")
	if err != nil {
		return err
	}

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.filePath)
}
