// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package keyspec builds discriminators for composite record keys
// described by a textual schema.
//
// A schema is a comma-separated list of fields, each written
// name:kind[:desc]. Kinds:
//
//	uint8, uint16     fixed-width unsigned integers
//	bool              false before true
//	int=N             integers in [0, N)
//	enum=a|b|c        one of the listed words, in listed order
//	any               no ordering; every value is equal
//	opt-<kind>        <kind> or null; nulls first
//
// The desc modifier reverses a field's order. Fields compare
// lexicographically, first field first.
package keyspec

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrEmptySchema is returned for a schema with no fields.
	ErrEmptySchema = errors.New("keyspec: empty schema")
	// ErrUnknownKind is returned for an unrecognised field kind.
	ErrUnknownKind = errors.New("keyspec: unknown kind")
	// ErrBadField is returned for a malformed field declaration.
	ErrBadField = errors.New("keyspec: bad field")
	// ErrBadValue is returned when raw text does not fit a field.
	ErrBadValue = errors.New("keyspec: bad value")
)

// Kind is the shape of one key field.
type Kind uint8

const (
	KindAny Kind = iota
	KindUint8
	KindUint16
	KindBool
	KindInt
	KindEnum
)

var kindNames = [...]string{
	KindAny:    "any",
	KindUint8:  "uint8",
	KindUint16: "uint16",
	KindBool:   "bool",
	KindInt:    "int",
	KindEnum:   "enum",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Field is one declared key component.
type Field struct {
	Name     string
	Kind     Kind
	Limit    int      // bucket count for KindInt and KindEnum
	Words    []string // KindEnum vocabulary, in order
	Optional bool
	Desc     bool
}

// Value is one parsed key component.
// N is the bucket index for every kind except KindAny.
type Value struct {
	Null bool
	N    int
	Raw  string
}

// Key is a parsed composite key, one Value per schema field.
type Key []Value

// Schema is a parsed key schema.
type Schema struct {
	Fields []Field
}

// ParseSchema parses a schema string such as
// "region:enum=eu|us|ap,tier:uint8,vip:bool:desc".
func ParseSchema(s string) (*Schema, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptySchema
	}
	var fields []Field
	seen := make(map[string]bool)
	for _, decl := range strings.Split(s, ",") {
		f, err := parseField(strings.TrimSpace(decl))
		if err != nil {
			return nil, err
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrBadField, f.Name)
		}
		seen[f.Name] = true
		fields = append(fields, f)
	}
	return &Schema{Fields: fields}, nil
}

func parseField(decl string) (Field, error) {
	parts := strings.Split(decl, ":")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
		return Field{}, fmt.Errorf("%w: %q: want name:kind[:desc]", ErrBadField, decl)
	}
	f := Field{Name: parts[0]}
	if len(parts) == 3 {
		if parts[2] != "desc" {
			return Field{}, fmt.Errorf("%w: %q: unknown modifier %q", ErrBadField, decl, parts[2])
		}
		f.Desc = true
	}

	kind := parts[1]
	if rest, ok := strings.CutPrefix(kind, "opt-"); ok {
		f.Optional = true
		kind = rest
	}
	kind, arg, hasArg := strings.Cut(kind, "=")
	switch kind {
	case "any":
		f.Kind = KindAny
	case "uint8":
		f.Kind = KindUint8
	case "uint16":
		f.Kind = KindUint16
	case "bool":
		f.Kind = KindBool
	case "int":
		f.Kind = KindInt
		n, err := strconv.Atoi(arg)
		if !hasArg || err != nil || n < 2 {
			return Field{}, fmt.Errorf("%w: %q: int needs a bound of at least 2", ErrBadField, decl)
		}
		f.Limit = n
	case "enum":
		f.Kind = KindEnum
		if !hasArg {
			return Field{}, fmt.Errorf("%w: %q: enum needs words", ErrBadField, decl)
		}
		f.Words = strings.Split(arg, "|")
		if len(f.Words) < 2 {
			return Field{}, fmt.Errorf("%w: %q: enum needs at least 2 words", ErrBadField, decl)
		}
		f.Limit = len(f.Words)
	default:
		return Field{}, fmt.Errorf("%w: %q in field %q", ErrUnknownKind, parts[1], f.Name)
	}
	if hasArg && f.Kind != KindInt && f.Kind != KindEnum {
		return Field{}, fmt.Errorf("%w: %q: %s takes no argument", ErrBadField, decl, f.Kind)
	}
	return f, nil
}

// Names returns the field names in schema order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Parse converts one raw text per field into a Key.
// For optional fields, isNull[i] marks a null value; isNull may be nil.
func (s *Schema) Parse(raw []string, isNull []bool) (Key, error) {
	if len(raw) != len(s.Fields) {
		return nil, fmt.Errorf("%w: got %d values for %d fields", ErrBadValue, len(raw), len(s.Fields))
	}
	key := make(Key, len(raw))
	for i, f := range s.Fields {
		null := isNull != nil && isNull[i]
		v, err := f.Parse(raw[i], null)
		if err != nil {
			return nil, err
		}
		key[i] = v
	}
	return key, nil
}

// Parse converts raw text into a Value of f's kind.
func (f Field) Parse(raw string, null bool) (Value, error) {
	if null {
		if !f.Optional {
			return Value{}, fmt.Errorf("%w: %s: null in a required field", ErrBadValue, f.Name)
		}
		return Value{Null: true}, nil
	}
	v := Value{Raw: raw}
	switch f.Kind {
	case KindAny:
	case KindUint8, KindUint16:
		bits := 8
		if f.Kind == KindUint16 {
			bits = 16
		}
		n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, bits)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s: %q is not a %s", ErrBadValue, f.Name, raw, f.Kind)
		}
		v.N = int(n)
	case KindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s: %q is not a bool", ErrBadValue, f.Name, raw)
		}
		if b {
			v.N = 1
		}
	case KindInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 0 || n >= f.Limit {
			return Value{}, fmt.Errorf("%w: %s: %q is not in [0, %d)", ErrBadValue, f.Name, raw, f.Limit)
		}
		v.N = n
	case KindEnum:
		i := slices.Index(f.Words, strings.TrimSpace(raw))
		if i < 0 {
			return Value{}, fmt.Errorf("%w: %s: %q is not one of %v", ErrBadValue, f.Name, raw, f.Words)
		}
		v.N = i
	}
	return v, nil
}

