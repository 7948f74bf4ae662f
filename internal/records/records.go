// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package records decodes input records and extracts their keys.
package records

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"code.hybscloud.com/discrim"
	"code.hybscloud.com/discrim/internal/keyspec"
)

// Format names an input encoding.
type Format string

const (
	FormatJSONLines Format = "jsonl"
	FormatCSV       Format = "csv"
)

var (
	// ErrUnknownFormat is returned for an unsupported input format.
	ErrUnknownFormat = errors.New("records: unknown format")
	// ErrMalformed is returned for a record that cannot be decoded.
	ErrMalformed = errors.New("records: malformed record")
	// ErrMissingColumn is returned when a CSV header lacks a key field.
	ErrMissingColumn = errors.New("records: missing column")
)

// Record is one input record, carried through discrimination untouched.
type Record struct {
	Line int
	Key  keyspec.Key
	Raw  json.RawMessage
}

// Read decodes every record of r and pairs it with its key.
func Read(r io.Reader, format Format, s *keyspec.Schema) ([]discrim.Pair[keyspec.Key, Record], error) {
	switch format {
	case FormatJSONLines:
		return ReadJSONLines(r, s)
	case FormatCSV:
		return ReadCSV(r, s)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ReadJSONLines decodes one JSON object per line. Key fields are looked
// up by gjson path; a missing or null field is a null key value. Blank
// lines are skipped.
func ReadJSONLines(r io.Reader, s *keyspec.Schema) ([]discrim.Pair[keyspec.Key, Record], error) {
	var out []discrim.Pair[keyspec.Key, Record]
	names := s.Names()
	raw := make([]string, len(names))
	null := make([]bool, len(names))

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if !gjson.Valid(text) {
			return nil, fmt.Errorf("%w: line %d: invalid JSON", ErrMalformed, line)
		}
		for i, res := range gjson.GetMany(text, names...) {
			null[i] = !res.Exists() || res.Type == gjson.Null
			raw[i] = res.String()
		}
		key, err := s.Parse(raw, null)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, discrim.MakePair(key, Record{Line: line, Key: key, Raw: json.RawMessage(text)}))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("records: read: %w", err)
	}
	return out, nil
}

// rowObject encodes row as a JSON object in header order.
func rowObject(header, row []string) (json.RawMessage, error) {
	enc := []byte("{}")
	var err error
	for j, h := range header {
		if enc, err = sjson.SetBytes(enc, gjson.Escape(h), row[j]); err != nil {
			return nil, fmt.Errorf("%w: column %q: %v", ErrMalformed, h, err)
		}
	}
	return enc, nil
}

// ReadCSV decodes a CSV document with a header row. Key fields are
// looked up by column name; an empty cell of an optional field is a
// null key value. Each record is re-encoded as a JSON object keyed by
// the header, columns in header order.
func ReadCSV(r io.Reader, s *keyspec.Schema) ([]discrim.Pair[keyspec.Key, Record], error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformed, err)
	}
	header = append([]string(nil), header...)

	names := s.Names()
	cols := make([]int, len(names))
	for i, name := range names {
		cols[i] = -1
		for j, h := range header {
			if strings.TrimSpace(h) == name {
				cols[i] = j
				break
			}
		}
		if cols[i] < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	var out []discrim.Pair[keyspec.Key, Record]
	raw := make([]string, len(names))
	null := make([]bool, len(names))
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		line, _ := cr.FieldPos(0)
		for i, c := range cols {
			raw[i] = row[c]
			null[i] = row[c] == "" && s.Fields[i].Optional
		}
		key, err := s.Parse(raw, null)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		enc, err := rowObject(header, row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, discrim.MakePair(key, Record{Line: line, Key: key, Raw: enc}))
	}
}
