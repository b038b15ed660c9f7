/*
 * Copyright (c) 2025-2026, The wadtools authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package check

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wadtools/mapq/pkg/mapinfo"
)

var Command = &cobra.Command{
	Use:   "check file ...",
	Short: "Parse MAPINFO files and report the first error found",
	Args:  cobra.MinimumNArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		totalBlocks, totalTokens, totalBytes := 0, 0, 0
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				log.Fatal().Err(errors.Wrapf(err, "reading %s", path)).Msg("cannot load MAPINFO")
			}

			doc, err := mapinfo.Parse(string(data))
			if err != nil {
				// The first violation aborts the whole run.
				var perr *mapinfo.Error
				if errors.As(err, &perr) {
					fmt.Fprintf(os.Stderr, "%s: %s", path, perr.FormatError(string(data)))
				} else {
					fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				}
				os.Exit(1)
			}

			log.Info().
				Str("file", path).
				Str("size", humanize.Bytes(uint64(len(data)))).
				Int("blocks", len(doc.Blocks)).
				Int("tokens", len(doc.Tokens)).
				Msg("parsed")

			totalBlocks += len(doc.Blocks)
			totalTokens += len(doc.Tokens)
			totalBytes += len(data)
		}

		log.Info().
			Int("files", len(args)).
			Str("size", humanize.Bytes(uint64(totalBytes))).
			Str("blocks", humanize.Comma(int64(totalBlocks))).
			Str("tokens", humanize.Comma(int64(totalTokens))).
			Msg("all files parsed")
	},
}
