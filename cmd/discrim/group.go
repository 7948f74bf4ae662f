// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"code.hybscloud.com/discrim"
	"code.hybscloud.com/discrim/internal/config"
	"code.hybscloud.com/discrim/internal/keyspec"
	"code.hybscloud.com/discrim/internal/logging"
	"code.hybscloud.com/discrim/internal/records"
)

type stats struct {
	records int
	groups  int
}

// groupLine is one line of JSON output.
type groupLine struct {
	Group   int               `json:"group"`
	Key     []*string         `json:"key"`
	Size    int               `json:"size"`
	Records []json.RawMessage `json:"records"`
}

func group(cfg *config.Config, in io.Reader, out io.Writer, log zerolog.Logger) (stats, error) {
	var st stats
	schema, err := keyspec.ParseSchema(cfg.Keys)
	if err != nil {
		return st, err
	}
	sharing, err := cfg.SharingMode()
	if err != nil {
		return st, err
	}

	pairs, err := records.Read(in, records.Format(cfg.Format), schema)
	if err != nil {
		return st, err
	}
	st.records = len(pairs)
	rlog := logging.WithComponent(log, "records")
	rlog.Debug().
		Int("records", len(pairs)).
		Strs("fields", schema.Names()).
		Msg("decoded")

	d := keyspec.Build[records.Record](schema, sharing)
	if cfg.Reverse {
		d = discrim.Invert(d)
	}

	w := bufio.NewWriter(out)
	enc := json.NewEncoder(w)
	for i, g := range discrim.Each(d.Discriminate(discrim.FromSlice(pairs))) {
		recs := discrim.CollectGroup(g)
		st.groups++
		log.Trace().Int("group", i).Int("size", len(recs)).Msg("group")
		if cfg.Output == "text" {
			err = writeText(w, i, recs)
		} else {
			err = enc.Encode(toLine(i, recs))
		}
		if err != nil {
			return st, fmt.Errorf("write group %d: %w", i, err)
		}
	}
	if err := w.Flush(); err != nil {
		return st, fmt.Errorf("flush output: %w", err)
	}
	return st, nil
}

func toLine(i int, recs []records.Record) groupLine {
	line := groupLine{Group: i, Key: keyOf(recs[0].Key), Size: len(recs)}
	line.Records = make([]json.RawMessage, len(recs))
	for j, r := range recs {
		line.Records[j] = r.Raw
	}
	return line
}

// keyOf renders a key as raw field texts, nil for nulls.
func keyOf(k keyspec.Key) []*string {
	out := make([]*string, len(k))
	for i, v := range k {
		if !v.Null {
			out[i] = &v.Raw
		}
	}
	return out
}

func writeText(w io.Writer, i int, recs []records.Record) error {
	parts := make([]string, len(recs[0].Key))
	for j, v := range recs[0].Key {
		if v.Null {
			parts[j] = "null"
		} else {
			parts[j] = v.Raw
		}
	}
	if _, err := fmt.Fprintf(w, "group %d (%s) size=%d\n", i, strings.Join(parts, ", "), len(recs)); err != nil {
		return err
	}
	for _, r := range recs {
		if _, err := fmt.Fprintf(w, "  line %d: %s\n", r.Line, r.Raw); err != nil {
			return err
		}
	}
	return nil
}
