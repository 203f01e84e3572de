package unicorns

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"gopkg.in/yaml.v3"
)

// DecodeDatabase reads a JSON dataset.
func DecodeDatabase(r io.Reader) (*Database, error) {
	var db Database
	if err := json.NewDecoder(r).Decode(&db); err != nil {
		return nil, fmt.Errorf("could not decode database: %w", err)
	}
	return &db, nil
}

// DecodeDatabaseYAML reads a YAML dataset.
func DecodeDatabaseYAML(r io.Reader) (*Database, error) {
	var db Database
	if err := yaml.NewDecoder(r).Decode(&db); err != nil {
		return nil, fmt.Errorf("could not decode database: %w", err)
	}
	return &db, nil
}

// EncodeDatabase writes the dataset as indented JSON.
func EncodeDatabase(w io.Writer, db *Database) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(db); err != nil {
		return fmt.Errorf("could not encode database: %w", err)
	}
	return nil
}

// LoadDatabase opens and decodes the dataset at path.
// Files with a .yaml or .yml extension are read as YAML, anything else as JSON.
func LoadDatabase(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open database file %q: %w", path, err)
	}
	defer f.Close()

	decode := DecodeDatabase
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decode = DecodeDatabaseYAML
	}

	db, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not load database file %q: %w", path, err)
	}
	return db, nil
}

// Query evaluates a JSONPath expression, like "$.companies[0].company", over
// the JSON representation of the database.
func (db *Database) Query(expr string) (any, error) {
	raw, err := json.Marshal(db)
	if err != nil {
		return nil, fmt.Errorf("could not marshal database: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("could not unmarshal database: %w", err)
	}
	jval, err := jsonpath.Get(expr, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", expr, err)
	}
	return jval, nil
}
