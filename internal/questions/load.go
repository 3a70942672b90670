package questions

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the bank format major version this build reads.
const SupportedMajor = "v1"

//go:embed data/schema.json data/default_bank.json
var dataFS embed.FS

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

type bankFile struct {
	Version string               `json:"version"`
	Levels  map[Level][]Question `json:"levels"`
}

// Default returns the bank compiled into the binary.
func Default() (*Bank, error) {
	raw, err := dataFS.ReadFile("data/default_bank.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded bank: %w", err)
	}
	return Parse(raw)
}

// LoadFile reads a bank from path. Files ending in .yaml or .yml are
// parsed as YAML, anything else as JSON.
func LoadFile(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(raw)
	default:
		return Parse(raw)
	}
}

// ParseYAML converts a YAML bank to JSON and parses it.
func ParseYAML(raw []byte) (*Bank, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml bank: %w", err)
	}
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert yaml bank: %w", err)
	}
	return Parse(asJSON)
}

// Parse validates a JSON bank against the bank schema and builds a Bank.
func Parse(raw []byte) (*Bank, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}

	sch, err := bankSchema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("bank schema validation failed: %w", err)
	}

	var f bankFile
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	version, err := checkVersion(f.Version)
	if err != nil {
		return nil, err
	}

	b, err := NewBank(f.Levels)
	if err != nil {
		return nil, err
	}
	b.version = version
	return b, nil
}

// checkVersion defaults an empty version to v1.0.0 and rejects versions
// this build cannot read.
func checkVersion(v string) (string, error) {
	if v == "" {
		return SupportedMajor + ".0.0", nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("bank version %q is not a semantic version", v)
	}
	if semver.Major(v) != SupportedMajor {
		return "", fmt.Errorf("bank version %s is not supported (want %s.x)", v, SupportedMajor)
	}
	return semver.Canonical(v), nil
}

func bankSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := dataFS.ReadFile("data/schema.json")
		if err != nil {
			schemaErr = fmt.Errorf("read bank schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			schemaErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://question-bank.json"
		if err := c.AddResource(url, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}
