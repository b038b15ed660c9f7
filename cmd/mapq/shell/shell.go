/*
 * Copyright (c) 2025-2026, The wadtools authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package shell

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wadtools/mapq/pkg/mapinfo"
	"github.com/wadtools/mapq/pkg/render"
)

var Command = &cobra.Command{
	Use:   "shell [flags] file",
	Short: "Interactive terminal for querying a MAPINFO file",
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		output := viper.GetString("shell.output")
		if len(filterStringSlice([]string{"csv", "text", "json"}, output)) != 1 {
			log.Fatal().Msg("unsupported output format")
		}

		path := args[0]
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

		readlinePrompt(doc, output)
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("output", "o", "text", "Output format of results [csv, json, text]")

	// Bind flags to viper
	viper.BindPFlag("shell.output", Command.Flags().Lookup("output"))
}

// listBlockTypes completes the block type argument from the types that
// actually occur in the document.
func listBlockTypes(doc *mapinfo.Document) func(string) []string {
	var types []string
	seen := map[string]bool{}
	for i := range doc.Blocks {
		name := strings.ToLower(doc.Blocks[i].Type.Token.Text())
		if !seen[name] {
			seen[name] = true
			types = append(types, name)
		}
	}

	return func(line string) []string {
		rest := line
		if fields := strings.Fields(line); len(fields) > 0 {
			rest = strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
		}
		return filterStringSlice(types, strings.ToLower(rest))
	}
}

func filterStringSlice(s []string, prefix string) []string {
	retList := []string{}
	for i := range s {
		if strings.HasPrefix(s[i], prefix) {
			retList = append(retList, s[i])
		}
	}
	return retList
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// blockOfType returns the nth block of the named type, or nil when that
// block does not exist.
func blockOfType(doc *mapinfo.Document, name string, n int) *mapinfo.Block {
	blocks := doc.BlocksOfType(name)
	if n < 0 || n >= len(blocks) {
		return nil
	}
	return blocks[n]
}

// guarded runs fn, printing the fatal error of a failed Must or Require
// accessor instead of letting it end the shell.
func guarded(fn func()) {
	defer func() {
		if e := recover(); e != nil {
			perr, ok := e.(*mapinfo.Error)
			if !ok {
				panic(e)
			}
			fmt.Println("error:", perr)
		}
	}()
	fn()
}

func readlinePrompt(doc *mapinfo.Document, output string) {
	// Configure the completer
	typeItem := readline.PcItemDynamic(listBlockTypes(doc))

	completer := readline.NewPrefixCompleter(
		readline.PcItem("blocks"),
		readline.PcItem("values"),
		readline.PcItem("tokens"),
		readline.PcItem("block", typeItem),
		readline.PcItem("header", typeItem),
		readline.PcItem("value", typeItem),
		readline.PcItem("int", typeItem),
		readline.PcItem("num", typeItem),
		readline.PcItem("str", typeItem),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	// Configure output writer
	writer := render.NewOutputWriter(os.Stdout, output)

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)
		if line == "" {
			continue
		}

		if strings.ToUpper(line) == "HELP" {
			fmt.Println("usage:")
			fmt.Println(completer.Tree("    "))
			continue
		}
		if strings.ToUpper(line) == "EXIT" {
			os.Exit(0)
		}

		dispatch(doc, writer, strings.Fields(line))
	}
	rl.Clean()
}

func dispatch(doc *mapinfo.Document, writer render.OutputWriter, fields []string) {
	switch fields[0] {
	case "blocks":
		writer.Write(render.BlockTable(doc))
	case "values":
		writer.Write(render.ValueTable(doc))
	case "tokens":
		writer.Write(render.TokenTable(doc))
	case "block":
		if len(fields) < 2 {
			fmt.Println("usage: block <type> [n]")
			return
		}
		b, ok := pickBlock(doc, fields)
		if !ok {
			return
		}
		writer.Write(render.BlockDetail(b))
	case "header":
		if len(fields) != 3 {
			fmt.Println("usage: header <type> <index>")
			return
		}
		b := blockOfType(doc, fields[1], 0)
		if b == nil {
			fmt.Printf("no '%s' blocks\n", fields[1])
			return
		}
		index, err := strconv.Atoi(fields[2])
		if err != nil {
			fmt.Printf("bad header index '%s'\n", fields[2])
			return
		}
		guarded(func() {
			fmt.Println(b.MustHeaderString(index))
		})
	case "value":
		if len(fields) != 3 {
			fmt.Println("usage: value <type> <name>")
			return
		}
		b, ok := pickBlock(doc, fields[:2])
		if !ok {
			return
		}
		v := b.Value(fields[2])
		switch {
		case v == nil:
			fmt.Println("(not set)")
		case v.NextData == nil:
			fmt.Println("(flag)")
		default:
			var data []string
			for _, e := range v.Data() {
				data = append(data, e.Token.Text())
			}
			fmt.Println(strings.Join(data, ", "))
		}
	case "int":
		withValueArgs(doc, fields, func(b *mapinfo.Block, name, def string) {
			d, err := strconv.Atoi(defaulted(def, "-1"))
			if err != nil {
				fmt.Printf("bad default '%s'\n", def)
				return
			}
			fmt.Println(b.IntValue(name, d))
		})
	case "num":
		withValueArgs(doc, fields, func(b *mapinfo.Block, name, def string) {
			d, err := strconv.ParseFloat(defaulted(def, "-1"), 64)
			if err != nil {
				fmt.Printf("bad default '%s'\n", def)
				return
			}
			fmt.Println(b.NumberValue(name, d))
		})
	case "str":
		withValueArgs(doc, fields, func(b *mapinfo.Block, name, def string) {
			fmt.Println(b.StringValue(name, def))
		})
	default:
		fmt.Printf("unknown command '%s', try 'help'\n", fields[0])
	}
}

// pickBlock resolves "<cmd> <type> [n]" argument lists to a block, printing
// the problem when it cannot.
func pickBlock(doc *mapinfo.Document, fields []string) (*mapinfo.Block, bool) {
	n := 0
	if len(fields) > 2 {
		var err error
		if n, err = strconv.Atoi(fields[2]); err != nil {
			fmt.Printf("bad block index '%s'\n", fields[2])
			return nil, false
		}
	}

	b := blockOfType(doc, fields[1], n)
	if b == nil {
		fmt.Printf("no '%s' block with index %d\n", fields[1], n)
		return nil, false
	}
	return b, true
}

// withValueArgs resolves "<cmd> <type> <name> [default]" argument lists.
func withValueArgs(doc *mapinfo.Document, fields []string, fn func(b *mapinfo.Block, name, def string)) {
	if len(fields) != 3 && len(fields) != 4 {
		fmt.Printf("usage: %s <type> <name> [default]\n", fields[0])
		return
	}

	b := blockOfType(doc, fields[1], 0)
	if b == nil {
		fmt.Printf("no '%s' blocks\n", fields[1])
		return
	}

	def := ""
	if len(fields) == 4 {
		def = fields[3]
	}
	fn(b, fields[2], def)
}

func defaulted(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
