// Package commands provides the nextvfs CLI commands.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nextdev-go/nextvfs/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "nextvfs",
	Short: "An in-process Next.js-compatible dev server over a virtual filesystem",
	Long: `nextvfs resolves App Router and Pages Router routes, Next config values,
and Tailwind config without shelling out to Node.js.

Quick Start:
  nextvfs dev             Start the dev server against the current directory
  nextvfs routes          List resolved routes for a project
  nextvfs config <key>    Read a static value out of next.config.{js,ts,mjs}
  nextvfs tailwind        Extract and print the project's Tailwind config snippet`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for automation and LLM agents)")
	rootCmd.PersistentFlags().StringVar(&projectDir, "dir", ".", "Project root directory")

	rootCmd.AddCommand(devCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(tailwindCmd)
}

// projectDir is the global --dir flag shared by every subcommand that
// needs to locate a project on disk.
var projectDir string
