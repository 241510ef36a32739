// Package task holds the task model and its persisted representation.
package task

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Task is a single to-do item.
type Task struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Done bool   `json:"isDone"`
}

// New creates a task with a fresh unique ID and Done unset. The name is
// taken as given; rejecting blank names is the form's job, not the type's.
func New(name string) Task {
	return Task{
		ID:   uuid.NewString(),
		Name: name,
	}
}

// IsZero returns true if the task is empty (has no ID).
func (t *Task) IsZero() bool {
	return t.ID == ""
}

// tasksSchema is the embedded schema for the persisted task list.
const tasksSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Taskpad task list",
  "type": "array",
  "items": {
    "type": "object",
    "additionalProperties": false,
    "required": ["id", "name", "isDone"],
    "properties": {
      "id": { "type": "string", "minLength": 1 },
      "name": { "type": "string" },
      "isDone": { "type": "boolean" }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("tasks.schema.json", tasksSchema)

// Encode serializes tasks for the preference store. A nil slice encodes
// as an empty list, not null.
func Encode(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return data, nil
}

// Decode parses a stored task list. The payload is validated against the
// bundled schema first, so corrupt data is reported with its JSON
// location instead of silently becoming an empty list.
func Decode(data []byte) ([]Task, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate tasks: %w", schemaError(err))
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}
	return tasks, nil
}

// schemaError reduces a jsonschema validation error to its most specific
// cause, formatted as path: message.
func schemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	path := jsonPointerToPath(leaf.InstanceLocation)
	if path == "" {
		return fmt.Errorf("%s", leaf.Message)
	}
	return fmt.Errorf("%s: %s", path, leaf.Message)
}

// jsonPointerToPath converts a JSON pointer like /0/name to 0.name.
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	return strings.ReplaceAll(ptr, "/", ".")
}
