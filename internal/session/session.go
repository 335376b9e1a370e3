package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	ScriptName   = "scene.py"
	ManifestName = "session.yaml"
)

// Session is a per-render scratch directory holding the script and the
// renderer's output tree. Sessions are never reused or removed.
type Session struct {
	ID        string
	Dir       string
	CreatedAt time.Time
}

func (s *Session) ScriptPath() string {
	return filepath.Join(s.Dir, ScriptName)
}

func (s *Session) ManifestPath() string {
	return filepath.Join(s.Dir, ManifestName)
}

// Store creates sessions below a root directory.
type Store struct {
	root string
	now  func() time.Time
}

func NewStore(root string) *Store {
	return &Store{root: root, now: time.Now}
}

func (s *Store) Root() string {
	return s.root
}

// Create makes a fresh, uniquely named session directory.
func (s *Store) Create() (*Session, error) {
	id := uuid.New().String()
	dir := filepath.Join(s.root, id)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	return &Session{
		ID:        id,
		Dir:       dir,
		CreatedAt: s.now(),
	}, nil
}

type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Manifest records how a session's render went.
type Manifest struct {
	ID         string        `yaml:"id"`
	CreatedAt  time.Time     `yaml:"created_at"`
	Script     string        `yaml:"script"`
	Scene      string        `yaml:"scene,omitempty"`
	Command    []string      `yaml:"command,omitempty"`
	Status     Status        `yaml:"status"`
	Video      string        `yaml:"video,omitempty"`
	Error      string        `yaml:"error,omitempty"`
	Duration   time.Duration `yaml:"duration"`
	FinishedAt time.Time     `yaml:"finished_at"`
}

func (s *Session) WriteManifest(m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(s.ManifestPath(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

func (s *Session) ReadManifest() (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(s.ManifestPath())
	if err != nil {
		return m, fmt.Errorf("failed to read manifest: %w", err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return m, nil
}
