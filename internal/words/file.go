package words

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/words.json
var defaultWords []byte

// FileSource reads words from a JSON or YAML file. An empty path reads the
// embedded list.
type FileSource struct {
	Path string
}

// NewFileSource creates a file source for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Name implements Source.
func (f *FileSource) Name() string {
	if f.Path == "" {
		return "embedded"
	}
	return "file " + f.Path
}

// Load reads and parses the file.
func (f *FileSource) Load(ctx context.Context) ([]Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if f.Path == "" {
		return parseJSON(defaultWords)
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return parseJSON(data)
	}
}

// wordList is the object form {"words": [...]}; a bare array is also accepted.
type wordList struct {
	Words []Word `json:"words" yaml:"words"`
}

func parseJSON(data []byte) ([]Word, error) {
	var list []Word
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var wl wordList
	if err := json.Unmarshal(data, &wl); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return wl.Words, nil
}

func parseYAML(data []byte) ([]Word, error) {
	var list []Word
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var wl wordList
	if err := yaml.Unmarshal(data, &wl); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return wl.Words, nil
}
