/*
 * Copyright (c) 2025-2026, The wadtools authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package dump

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wadtools/mapq/pkg/mapinfo"
	"github.com/wadtools/mapq/pkg/render"
)

var Command = &cobra.Command{
	Use:   "dump [flags] file",
	Short: "Print the parsed structure of a MAPINFO file",
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		output := viper.GetString("dump.output")
		switch output {
		case "csv", "json", "text":
		default:
			log.Fatal().Str("output", output).Msg("unsupported output format")
		}

		doc := load(log, args[0])
		writer := render.NewOutputWriter(os.Stdout, output)

		switch table := viper.GetString("dump.table"); table {
		case "blocks":
			writer.Write(render.BlockTable(doc))
		case "values":
			writer.Write(render.ValueTable(doc))
		case "tokens":
			writer.Write(render.TokenTable(doc))
		default:
			log.Fatal().Str("table", table).Msg("unsupported table")
		}
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("output", "o", "text", "Output format [csv, json, text]")
	Command.Flags().StringP("table", "t", "blocks", "Table to print [blocks, values, tokens]")

	// Bind flags to viper
	viper.BindPFlag("dump.output", Command.Flags().Lookup("output"))
	viper.BindPFlag("dump.table", Command.Flags().Lookup("table"))
}

// load reads and parses one MAPINFO file, aborting the run on the first
// violation.
func load(log zerolog.Logger, path string) *mapinfo.Document {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(errors.Wrapf(err, "reading %s", path)).Msg("cannot load MAPINFO")
	}

	doc, err := mapinfo.Parse(string(data))
	if err != nil {
		var perr *mapinfo.Error
		if errors.As(err, &perr) {
			fmt.Fprintf(os.Stderr, "%s: %s", path, perr.FormatError(string(data)))
		} else {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		}
		os.Exit(1)
	}
	return doc
}
