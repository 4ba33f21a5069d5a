// Package jsonstore provides a JSON file-based implementation of TaskRepository.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/runoshun/task-cli/internal/domain"
	"github.com/runoshun/task-cli/internal/infra/atomicfile"
	"github.com/runoshun/task-cli/internal/infra/schema"
)

// indent matches the layout written by earlier versions of the tool.
const indent = "    "

// Store implements domain.TaskRepository using a single JSON file holding a
// top-level array of tasks.
//
// There is no locking: concurrent invocations race and the last Save wins.
type Store struct {
	logger domain.Logger
	path   string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first Save.
// logger may be nil.
func New(path string, logger domain.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads all tasks.
// A missing file yields an empty collection. A file that cannot be read or
// parsed also yields an empty collection; the failure is logged, not returned.
func (s *Store) Load() (*domain.Collection, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewCollection(), nil
		}
		return s.recoverEmpty(domain.MalformedStore(s.path, err))
	}

	tasks, err := decode(content)
	if err != nil {
		return s.recoverEmpty(domain.MalformedStore(s.path, err))
	}

	return domain.NewCollection(tasks...), nil
}

// Save replaces the file with the full collection.
func (s *Store) Save(c *domain.Collection) error {
	tasks := c.Tasks
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	if err := atomicfile.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}

// recoverEmpty logs a malformed-store error and substitutes an empty collection.
func (s *Store) recoverEmpty(err error) (*domain.Collection, error) {
	if s.logger != nil {
		s.logger.Warn(0, "store", fmt.Sprintf("%v; starting with an empty task list", err))
	}
	return domain.NewCollection(), nil
}

func decode(content []byte) ([]*domain.Task, error) {
	if err := schema.ValidateJSON(content); err != nil {
		return nil, err
	}

	var tasks []*domain.Task
	if err := json.Unmarshal(content, &tasks); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	if err := domain.NewCollection(tasks...).Validate(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)
