// Package schema validates task file documents against an embedded JSON Schema.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tasks.schema.json
var tasksSchema string

const schemaURL = "tasks.schema.json"

var compileTasksSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString(schemaURL, tasksSchema)
})

// ValidationError represents a schema violation with context.
type ValidationError struct {
	Path string // Dotted path to the offending value, e.g. "[0].status"
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidateJSON decodes data and validates it against the task file schema.
// Syntax errors are returned as-is; schema violations are joined
// ValidationErrors, one per failing leaf.
func ValidateJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if dec.More() {
		return errors.New("decode: unexpected data after top-level value")
	}

	return Validate(doc)
}

// Validate checks an already decoded JSON document.
func Validate(doc any) error {
	schema, err := compileTasksSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		var errs []error
		collectSchemaErrors(&errs, ve)
		return errors.Join(errs...)
	}
	return nil
}

func collectSchemaErrors(errs *[]error, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		*errs = append(*errs, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(errs, cause)
	}
}

func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	path := ""
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}

	return path
}
