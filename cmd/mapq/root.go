/*
 * Copyright (c) 2025-2026, The wadtools authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package mapq

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wadtools/mapq/cmd/mapq/check"
	"github.com/wadtools/mapq/cmd/mapq/dump"
	"github.com/wadtools/mapq/cmd/mapq/shell"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "mapq",
		Short: "Mapq parses and queries MAPINFO lumps",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		Version: Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the mapq config file (default ./config.toml)")

	// Bind viper config to the root flags
	viper.BindPFlag("mapq.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("mapq.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("mapq version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	// Bind viper flags to ENV variables
	viper.AutomaticEnv()

	// Register commands on the root binary command
	check.Command.Version = rootCmd.Version
	dump.Command.Version = rootCmd.Version
	shell.Command.Version = rootCmd.Version
	rootCmd.AddCommand(check.Command)
	rootCmd.AddCommand(dump.Command)
	rootCmd.AddCommand(shell.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
