// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package strips

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Decode reads a problem file in YAML format. Unknown fields are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	f := &File{}
	if err := dec.Decode(f); err != nil {
		return nil, errors.Wrap(err, "cannot decode problem")
	}
	return f, nil
}

// Load reads and compiles a problem in YAML format.
func Load(r io.Reader) (*Problem, error) {
	f, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return Compile(f)
}

// LoadFile reads and compiles the problem in file path.
func LoadFile(path string) (*Problem, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open problem")
	}
	defer file.Close()
	p, err := Load(file)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}
	return p, nil
}

// Encode writes a problem file in YAML format.
func Encode(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return errors.Wrap(err, "cannot encode problem")
	}
	return enc.Close()
}
