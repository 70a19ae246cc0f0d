// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	InitializeColors()

	asciiLogo := `
 █████╗ ██╗   ██╗██╗  ████████╗██████╗ ███████╗███████╗
██╔══██╗██║   ██║██║  ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
███████║██║   ██║██║     ██║   ██████╔╝█████╗  █████╗
██╔══██║╚██╗ ██╔╝██║     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██║ ╚████╔╝ ███████╗██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
AVL trees with rebalancing costs, split and join [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdRun = &cobra.Command{
		Use:   "run SCRIPT",
		Short: "Execute a tree script (use - for stdin)",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run executes every line of a tree script and prints each command's output`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			continueOnError, _ := cmd.Flags().GetBool("continue")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			res, err := runScriptFile(ctx, args[0], continueOnError, os.Stdout)
			if err != nil {
				log.Fatalf("Error running script: %v", err)
			}
			if res.Failures > 0 {
				log.Printf("%d of %d commands failed", res.Failures, res.Lines)
				os.Exit(1)
			}
		},
	}
	cmdRun.Flags().Bool("continue", false, "keep going after a failing command")

	var cmdRepl = &cobra.Command{
		Use:   "repl",
		Short: "Launches the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Repl opens a terminal UI that runs commands against live trees`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			startRepl()
		},
	}

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Run random operations against a reference map",
		Long: fmt.Sprintf("%s\n%s", asciiLogo,
			`Stress applies random inserts, deletes, searches and split/join round trips,
checking every tree invariant against a shadow map. Flags override ~/.avltree.yaml`),
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config, err := LoadConfig()
			if err != nil {
				log.Printf("Failed to load configuration: %v. Using default settings.", err)
			}
			stressCfg := config.Stress
			flags := cmd.Flags()
			if flags.Changed("ops") {
				stressCfg.Ops, _ = flags.GetInt("ops")
			}
			if flags.Changed("keys") {
				stressCfg.KeySpace, _ = flags.GetInt("keys")
			}
			if flags.Changed("seed") {
				stressCfg.Seed, _ = flags.GetUint64("seed")
			}
			if flags.Changed("verify-every") {
				stressCfg.VerifyEvery, _ = flags.GetInt("verify-every")
			}
			if flags.Changed("quiet") {
				quiet, _ := flags.GetBool("quiet")
				stressCfg.Progress = !quiet
			}
			if stressCfg.Ops < 0 || stressCfg.KeySpace <= 0 || stressCfg.VerifyEvery <= 0 {
				log.Fatalf("Invalid stress settings: ops %d, keys %d, verify-every %d",
					stressCfg.Ops, stressCfg.KeySpace, stressCfg.VerifyEvery)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			report, err := runStress(ctx, stressCfg, os.Stderr)
			if err != nil {
				log.Fatalf("Stress run failed after %d operations (seed %d): %v", report.Ops, stressCfg.Seed, err)
			}
			printStressReport(os.Stdout, report)
		},
	}
	cmdStress.Flags().Int("ops", 0, "number of random operations")
	cmdStress.Flags().Int("keys", 0, "keys are drawn from [0, keys)")
	cmdStress.Flags().Uint64("seed", 0, "random seed")
	cmdStress.Flags().Int("verify-every", 0, "full invariant check after this many operations")
	cmdStress.Flags().Bool("quiet", false, "hide the progress bar")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Display current avltree configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings shows ~/.avltree.yaml, creating it with defaults when missing`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avltree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avltree",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to repl command when no subcommand is provided
			startRepl()
		},
	}
	rootCmd.AddCommand(cmdRun, cmdRepl, cmdStress, cmdSettings, cmdUsage, cmdVersion)
	rootCmd.Execute()
}

func startRepl() {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	if err := runRepl(config); err != nil {
		log.Fatalf("Error running repl: %v", err)
	}
}
