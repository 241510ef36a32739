// Package storage persists small named values to a single preference file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound reports that a key has no stored value. Callers treat
// absence as "use the default", never as a failure.
var ErrNotFound = errors.New("key not found")

// Prefs is a file-backed key-value store. Values are raw JSON and the
// whole file is rewritten on every Set.
type Prefs struct {
	path   string
	values map[string]json.RawMessage
}

// Open loads the preference file at path. A missing file yields an
// empty store; an unreadable or unparsable file is an error.
func Open(path string) (*Prefs, error) {
	p := &Prefs{
		path:   path,
		values: make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, fmt.Errorf("read preference file: %w", err)
	}
	if err := json.Unmarshal(data, &p.values); err != nil {
		return nil, fmt.Errorf("parse preference file %s: %w", path, err)
	}

	return p, nil
}

// Path returns the location of the preference file.
func (p *Prefs) Path() string {
	return p.path
}

// Get returns the raw JSON value stored under key.
func (p *Prefs) Get(key string) ([]byte, error) {
	raw, ok := p.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return raw, nil
}

// Set stores raw JSON under key, replacing any prior value, and
// rewrites the file.
func (p *Prefs) Set(key string, raw []byte) error {
	if !json.Valid(raw) {
		return fmt.Errorf("value for %q is not valid JSON", key)
	}
	p.values[key] = json.RawMessage(raw)
	return p.flush()
}

// GetBool returns the boolean stored under key.
func (p *Prefs) GetBool(key string) (bool, error) {
	raw, err := p.Get(key)
	if err != nil {
		return false, err
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, fmt.Errorf("value for %q is not a boolean: %w", key, err)
	}
	return v, nil
}

// SetBool stores a boolean under key.
func (p *Prefs) SetBool(key string, v bool) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal value for %q: %w", key, err)
	}
	return p.Set(key, raw)
}

// flush rewrites the whole file. Writes go through a temp file in the
// same directory so a crash cannot leave a half-written store behind.
func (p *Prefs) flush() error {
	data, err := json.MarshalIndent(p.values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	// Add trailing newline
	data = append(data, '\n')

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create preference dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*")
	if err != nil {
		return fmt.Errorf("create temp preference file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close preference file: %w", err)
	}
	if err := os.Rename(tmpPath, p.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace preference file: %w", err)
	}

	return nil
}
