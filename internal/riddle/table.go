// Package riddle holds the static riddle table and the answer matcher.
package riddle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"riddle-bridge/assets"

	"gopkg.in/yaml.v3"
)

// ErrInvalidContent is returned when a riddle table fails load-time validation.
var ErrInvalidContent = errors.New("invalid riddle content")

// Entry is one riddle and the answers that solve it.
type Entry struct {
	Prompt  string   `yaml:"prompt"`
	Answers []string `yaml:"answers"`
}

// Table is the ordered, immutable list of riddles. Its length is the number
// of levels on the bridge.
type Table struct {
	entries []Entry
}

type document struct {
	Riddles []Entry `yaml:"riddles"`
}

// Parse decodes a YAML riddle document and validates it.
func Parse(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode riddles: %w", err)
	}
	t, err := New(doc.Riddles)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Load reads and validates a riddle table from a YAML file.
func Load(path string) (*Table, error) {
	b, err := os.ReadFile(filepath.Clean(path)) //nolint:gosec // operator-supplied content path
	if err != nil {
		return nil, err
	}
	t, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Default returns the embedded ten-riddle table.
func Default() (*Table, error) {
	return Parse(assets.Riddles)
}

// New builds a table from entries, copying them so later edits to the
// caller's slice do not leak in.
func New(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no riddles", ErrInvalidContent)
	}
	cp := make([]Entry, len(entries))
	for i, e := range entries {
		if err := validate(e); err != nil {
			return nil, fmt.Errorf("%w: riddle %d: %s", ErrInvalidContent, i+1, err)
		}
		cp[i] = Entry{Prompt: e.Prompt, Answers: append([]string(nil), e.Answers...)}
	}
	return &Table{entries: cp}, nil
}

func validate(e Entry) error {
	if strings.TrimSpace(e.Prompt) == "" {
		return errors.New("empty prompt")
	}
	if len(e.Answers) == 0 {
		return errors.New("no accepted answers")
	}
	for j, a := range e.Answers {
		if Normalize(a) == "" {
			return fmt.Errorf("answer %d normalizes to empty", j+1)
		}
	}
	return nil
}

// Len reports the number of riddles.
func (t *Table) Len() int { return len(t.entries) }

// At returns the riddle at index i. ok is false when i is out of range.
func (t *Table) At(i int) (Entry, bool) {
	if i < 0 || i >= len(t.entries) {
		return Entry{}, false
	}
	return t.entries[i], true
}
