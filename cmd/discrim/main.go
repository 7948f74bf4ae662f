// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command discrim groups records by a composite key in linear time.
//
// Usage:
//
//	discrim -k 'region:enum=eu|us|ap,tier:uint8:desc' [flags] [input]
//
// Records are read from input (or stdin) as JSON lines or CSV and written
// to stdout one group per line, in key order.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"code.hybscloud.com/discrim/internal/config"
	"code.hybscloud.com/discrim/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load("discrim", args)
	if errors.Is(err, config.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	log, _ := logging.WithRunID(logging.New(cfg.Log, stderr))

	in := stdin
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			log.Error().Err(err).Msg("open input")
			return 1
		}
		defer f.Close()
		in = f
	}

	start := time.Now()
	st, err := group(cfg, in, stdout, log)
	if err != nil {
		log.Error().Err(err).Str("input", cfg.Input).Msg("grouping failed")
		return 1
	}
	log.Info().
		Int("records", st.records).
		Int("groups", st.groups).
		Bool("reverse", cfg.Reverse).
		Dur("elapsed", time.Since(start)).
		Msg("done")
	return 0
}
