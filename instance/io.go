package instance

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// Load decodes one YAML instance document from r. Unknown fields are
// rejected; the coefficients themselves are validated by knapsack.Solve.
func Load(r io.Reader) (Instance, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var in Instance
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return Instance{}, fmt.Errorf("%w: empty document", ErrDecode)
		}
		return Instance{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return in, nil
}

// LoadFile reads an instance from path.
func LoadFile(path string) (Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return Instance{}, fmt.Errorf("open instance: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Save encodes the instance as YAML.
func (in Instance) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(in); err != nil {
		return fmt.Errorf("encode instance: %w", err)
	}

	return enc.Close()
}

// SaveFile writes the instance to path, truncating an existing file.
func (in Instance) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create instance file: %w", err)
	}
	if err = in.Save(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
