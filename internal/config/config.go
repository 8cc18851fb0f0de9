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

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

const VersionOne = "1"

type SourceType string

const (
	SourceText SourceType = "text"
	SourceFile SourceType = "file"
	SourceSQL  SourceType = "sql"
)

type Engine string

const (
	EngineSQLite     Engine = "sqlite"
	EnginePostgreSQL Engine = "postgresql"
	EngineMySQL      Engine = "mysql"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrMissingVersion = errors.New(`no version number
Add a version key to your configuration file, for example:

version: "1"
`)

var ErrUnknownVersion = errors.New("invalid version number")
var ErrNoConfig = errors.New("no config file found")

type Config struct {
	Version  string   `json:"version" yaml:"version"`
	Log      Log      `json:"log" yaml:"log"`
	Output   Output   `json:"output" yaml:"output"`
	Existing []Source `json:"existing" yaml:"existing"`
	Incoming []Source `json:"incoming" yaml:"incoming"`
}

type Log struct {
	Level     string `json:"level" yaml:"level"`
	File      string `json:"file" yaml:"file"`
	MaxSizeMB int    `json:"max_size_mb" yaml:"max_size_mb"`
}

type Output struct {
	Format  Format `json:"format" yaml:"format"`
	Explain bool   `json:"explain" yaml:"explain"`
}

// Source describes one place names are read from. Which fields apply
// depends on Type.
type Source struct {
	Name string     `json:"name" yaml:"name"`
	Type SourceType `json:"type" yaml:"type"`

	// text
	Names []string `json:"names" yaml:"names"`

	// file; "-" reads standard input
	Path string `json:"path" yaml:"path"`

	// sql
	Engine Engine `json:"engine" yaml:"engine"`
	Driver string `json:"driver" yaml:"driver"`
	URI    string `json:"uri" yaml:"uri"`
	Table  string `json:"table" yaml:"table"`
	Column string `json:"column" yaml:"column"`
	Query  string `json:"query" yaml:"query"`

	Options map[string]string `json:"options" yaml:"options"`
}

//go:embed schema.json
var schema []byte

// ParseConfig decodes a YAML configuration, checks it against the schema and
// fills in defaults. Semantic checks are left to Validate.
func ParseConfig(rd io.Reader) (Config, error) {
	var conf Config
	blob, err := io.ReadAll(rd)
	if err != nil {
		return conf, err
	}
	var doc interface{}
	if err := yaml.Unmarshal(blob, &doc); err != nil {
		return conf, err
	}
	if doc == nil {
		return conf, ErrMissingVersion
	}
	if err := validateSchema(doc); err != nil {
		return conf, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(blob))
	dec.KnownFields(true)
	if err := dec.Decode(&conf); err != nil {
		return conf, err
	}
	if conf.Version == "" {
		return conf, ErrMissingVersion
	}
	if conf.Version != VersionOne {
		return conf, ErrUnknownVersion
	}
	if conf.Output.Format == "" {
		conf.Output.Format = FormatText
	}
	return conf, nil
}

func validateSchema(doc interface{}) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var msgs []string
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// Find returns the configuration file to use. An explicit path must exist.
// Otherwise dir is searched for nameversion.yaml and nameversion.yml, and
// ErrNoConfig is returned when neither is present.
func Find(dir, explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", err
		}
		return explicit, nil
	}
	var found []string
	for _, name := range []string{"nameversion.yaml", "nameversion.yml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			found = append(found, p)
		}
	}
	switch len(found) {
	case 0:
		return "", ErrNoConfig
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("both nameversion.yaml and nameversion.yml files present in %s", dir)
	}
}

// Load finds, parses and validates the configuration.
func Load(dir, explicit string) (Config, string, error) {
	path, err := Find(dir, explicit)
	if err != nil {
		return Config{}, "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, path, err
	}
	defer f.Close()
	conf, err := ParseConfig(f)
	if err != nil {
		return conf, path, fmt.Errorf("%s: %w", path, err)
	}
	if err := Validate(&conf); err != nil {
		return conf, path, fmt.Errorf("%s: %w", path, err)
	}
	return conf, path, nil
}
