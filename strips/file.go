// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package strips

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// File is the YAML representation of a grounded STRIPS problem.
type File struct {
	Domain  string       `yaml:"domain,omitempty"`
	Name    string       `yaml:"name" validate:"required"`
	Fluents []string     `yaml:"fluents,omitempty" validate:"omitempty,unique,dive,atom"`
	Init    []string     `yaml:"init" validate:"dive,atom"`
	Goal    []string     `yaml:"goal" validate:"required,min=1,dive,atom"`
	Actions []ActionSpec `yaml:"actions" validate:"dive"`
}

// ActionSpec is the YAML representation of a ground action.
type ActionSpec struct {
	Name string   `yaml:"name" validate:"required"`
	Pre  []string `yaml:"pre,omitempty" validate:"dive,atom"`
	Add  []string `yaml:"add,omitempty" validate:"dive,atom"`
	Del  []string `yaml:"del,omitempty" validate:"dive,atom"`
	Cost *float64 `yaml:"cost,omitempty" validate:"omitempty,gte=0"`
}

// validate is the validator instance for problem files, with a custom "atom"
// tag for fluent names.
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("atom", validateAtom)
}

// validateAtom accepts non-empty names without spaces or control characters.
func validateAtom(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) < 0
}

// Validate checks the structure of the file. It does not check that the
// names used in the actions are declared; this is done by Compile.
func (f *File) Validate() error {
	return validate.Struct(f)
}
