package tokenstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// FileStore keeps the token in a JSON object file under Key, so other keys
// written by different tools survive updates.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by path. The file is created on first
// Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path is the backing file.
func (f *FileStore) Path() string { return f.path }

func (f *FileStore) Get() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.load()
	if err != nil {
		return "", err
	}
	return slots[Key], nil
}

func (f *FileStore) Set(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.load()
	if err != nil {
		return err
	}
	slots[Key] = token
	return f.save(slots)
}

func (f *FileStore) Delete() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := slots[Key]; !ok {
		return nil
	}
	delete(slots, Key)
	return f.save(slots)
}

func (f *FileStore) load() (map[string]string, error) {
	b, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read token file %s", f.path)
	}
	slots := map[string]string{}
	if len(b) == 0 {
		return slots, nil
	}
	if err := json.Unmarshal(b, &slots); err != nil {
		return nil, errors.Wrapf(err, "decode token file %s", f.path)
	}
	return slots, nil
}

// save writes slots atomically through a temp file and rename.
func (f *FileStore) save(slots map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errors.Wrap(err, "create token directory")
	}
	b, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode token file")
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return errors.Wrap(err, "write token file")
	}
	if err := os.Rename(tmp, f.path); err == nil {
		return nil
	}
	defer func() { _ = os.Remove(tmp) }()

	if runtime.GOOS == "windows" {
		_ = os.Remove(f.path)
	}
	return errors.Wrap(os.Rename(tmp, f.path), "replace token file")
}
