// Package config loads conversion settings from CUE, YAML or JSON files.
//
// Every format is checked against the same embedded CUE schema, which also
// supplies defaults for omitted fields.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/roach88/crkortho/internal/transcode"
)

//go:embed schema.cue
var schemaSource string

// Config holds the settings shared by both conversion directions.
type Config struct {
	Hyphens string `json:"hyphens"`
	Sandhi  bool   `json:"sandhi"`
	Macrons bool   `json:"macrons"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Hyphens: transcode.DefaultHyphens,
		Sandhi:  true,
		Macrons: false,
	}
}

// EncodeOptions adapts c for SRO to syllabics conversion.
func (c Config) EncodeOptions() transcode.EncodeOptions {
	return transcode.EncodeOptions{Hyphens: c.Hyphens, Sandhi: c.Sandhi}
}

// DecodeOptions adapts c for syllabics to SRO conversion.
func (c Config) DecodeOptions() transcode.DecodeOptions {
	return transcode.DecodeOptions{Macrons: c.Macrons}
}

// fileConfig is the shape accepted from YAML and JSON. Pointers distinguish
// an omitted field from a zero value, so that omitted fields get the schema
// default.
type fileConfig struct {
	Hyphens *string `yaml:"hyphens" json:"hyphens"`
	Sandhi  *bool   `yaml:"sandhi" json:"sandhi"`
	Macrons *bool   `yaml:"macrons" json:"macrons"`
}

func (f fileConfig) fields() map[string]any {
	m := make(map[string]any)
	if f.Hyphens != nil {
		m["hyphens"] = *f.Hyphens
	}
	if f.Sandhi != nil {
		m["sandhi"] = *f.Sandhi
	}
	if f.Macrons != nil {
		m["macrons"] = *f.Macrons
	}
	return m
}

// LoadError describes a configuration file that could not be used.
type LoadError struct {
	Path    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Load reads a configuration file. The format is chosen by extension:
// .cue, .yaml, .yml or .json. Unknown fields and values of the wrong type
// are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(path, data)
}

// Parse is Load for data already in memory. path selects the format and is
// used in error messages.
func Parse(path string, data []byte) (Config, error) {
	ctx := cuecontext.New()

	var value cue.Value
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".cue":
		value = ctx.CompileBytes(data, cue.Filename(path))
	case ".yaml", ".yml":
		fc, err := decodeYAML(data)
		if err != nil {
			return Config{}, &LoadError{Path: path, Message: err.Error()}
		}
		value = ctx.Encode(fc.fields())
	case ".json":
		fc, err := decodeJSON(data)
		if err != nil {
			return Config{}, &LoadError{Path: path, Message: err.Error()}
		}
		value = ctx.Encode(fc.fields())
	default:
		return Config{}, &LoadError{Path: path, Message: fmt.Sprintf("unsupported config format %q (want .cue, .yaml, .yml or .json)", ext)}
	}
	if err := value.Err(); err != nil {
		return Config{}, formatCUEError(path, err)
	}

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue")).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return Config{}, fmt.Errorf("compile config schema: %w", err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return Config{}, formatCUEError(path, err)
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return Config{}, formatCUEError(path, err)
	}
	return cfg, nil
}

func decodeYAML(data []byte) (fileConfig, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fileConfig{}, fmt.Errorf("parse YAML: %w", err)
	}
	return fc, nil
}

func decodeJSON(data []byte) (fileConfig, error) {
	var fc fileConfig
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fileConfig{}, fmt.Errorf("parse JSON: %w", err)
	}
	return fc, nil
}

// formatCUEError keeps the first CUE error, positioned in the config file
// when CUE reports a position there.
func formatCUEError(path string, err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Path: path, Message: err.Error()}
	}
	first := errs[0]
	le := &LoadError{Path: path, Message: first.Error()}
	for _, pos := range cueerrors.Positions(first) {
		if pos.Filename() == path {
			le.Pos = pos
			break
		}
	}
	return le
}
