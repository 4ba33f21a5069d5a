// Package yamlstore provides a YAML file-based implementation of TaskRepository.
package yamlstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/task-cli/internal/domain"
	"github.com/runoshun/task-cli/internal/infra/atomicfile"
	"github.com/runoshun/task-cli/internal/infra/schema"
)

// Store implements domain.TaskRepository using a single YAML file holding a
// top-level sequence of tasks. Content is checked against the same schema as
// the JSON store.
type Store struct {
	logger domain.Logger
	path   string
}

// New creates a new Store for the given file path. logger may be nil.
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

// Load reads all tasks. Missing files yield an empty collection; unreadable
// content is logged and also yields an empty collection.
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

	var doc yaml.Node
	if err := doc.Encode(tasks); err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}
	quoteTimestamps(&doc)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	if err := atomicfile.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}

func (s *Store) recoverEmpty(err error) (*domain.Collection, error) {
	if s.logger != nil {
		s.logger.Warn(0, "store", fmt.Sprintf("%v; starting with an empty task list", err))
	}
	return domain.NewCollection(), nil
}

func decode(content []byte) ([]*domain.Task, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, errors.New("parse store file: empty document")
	}

	// The schema validator works on JSON values.
	doc, err := jsonValue(&root)
	if err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	if err := schema.ValidateJSON(raw); err != nil {
		return nil, err
	}

	var tasks []*domain.Task
	if err := root.Decode(&tasks); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	if err := domain.NewCollection(tasks...).Validate(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// jsonValue converts a YAML node into a generic JSON value.
// Scalars YAML resolves as timestamps keep their source text, which is what
// domain.Timestamp later parses.
func jsonValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return jsonValue(n.Content[0])

	case yaml.AliasNode:
		return jsonValue(n.Alias)

	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := jsonValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := jsonValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[n.Content[i].Value] = v
		}
		return out, nil

	case yaml.ScalarNode:
		if n.ShortTag() == "!!timestamp" {
			return n.Value, nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}

	return nil, fmt.Errorf("line %d: unsupported node", n.Line)
}

// quoteTimestamps double-quotes createdAt/updatedAt values so YAML 1.1
// readers do not turn them into native timestamps.
func quoteTimestamps(n *yaml.Node) {
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			switch n.Content[i].Value {
			case "createdAt", "updatedAt":
				n.Content[i+1].Style = yaml.DoubleQuotedStyle
			}
		}
	}
	for _, child := range n.Content {
		quoteTimestamps(child)
	}
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)
