package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/Ramsha-Haris/table/internal/model"
	"github.com/Ramsha-Haris/table/internal/platform"
)

const (
	tabsDir     = "tabs"
	userFile    = "user.json"
	cookiesFile = "cookies.json"

	// DefaultTab is the namespace used when none is configured.
	DefaultTab = "default"
)

var tabNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Storage persists the current user.
type Storage interface {
	Load() (*model.User, error)
	Save(u *model.User) error
	Clear() error
}

// TabDir returns the directory holding one tab's session files.
func TabDir(home, tab string) (string, error) {
	if tab == "" {
		tab = DefaultTab
	}
	if !tabNamePattern.MatchString(tab) || tab == "." || tab == ".." {
		return "", fmt.Errorf("invalid tab name %q", tab)
	}
	return filepath.Join(home, tabsDir, tab), nil
}

// FileStorage keeps the user as JSON in <tab dir>/user.json.
type FileStorage struct {
	path string
}

// NewFileStorage returns storage rooted at the given tab directory.
func NewFileStorage(tabDir string) *FileStorage {
	return &FileStorage{path: filepath.Join(tabDir, userFile)}
}

// Path returns the file the user is stored in.
func (s *FileStorage) Path() string { return s.path }

// Load returns nil, nil when nothing is stored.
func (s *FileStorage) Load() (*model.User, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}

	var u *model.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("parsing session: %w", err)
	}
	return u, nil
}

// Save writes the user with owner-only permissions.
func (s *FileStorage) Save(u *model.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	return platform.WriteFileSecure(s.path, data)
}

// Clear removes the stored user.
func (s *FileStorage) Clear() error {
	return platform.RemoveIfExists(s.path)
}

// MemoryStorage keeps the user in memory. It serves tests and one-shot runs.
type MemoryStorage struct {
	user *model.User
}

func (m *MemoryStorage) Load() (*model.User, error) {
	if m.user == nil {
		return nil, nil
	}
	u := *m.user
	return &u, nil
}

func (m *MemoryStorage) Save(u *model.User) error {
	if u == nil {
		m.user = nil
		return nil
	}
	c := *u
	m.user = &c
	return nil
}

func (m *MemoryStorage) Clear() error {
	m.user = nil
	return nil
}
