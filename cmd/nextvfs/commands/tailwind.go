package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nextdev-go/nextvfs/pkg/tailwindcfg"
	"github.com/nextdev-go/nextvfs/pkg/vfs"
)

var tailwindCmd = &cobra.Command{
	Use:   "tailwind",
	Short: "Extract the project's Tailwind config as an injectable snippet",
	Long: `Probe tailwind.config.{ts,js,mjs} under --dir and print the verbatim
object it exports, wrapped for injection into an HTML shell.

Examples:
  nextvfs tailwind
  nextvfs tailwind --dir ./my-next-app
  nextvfs tailwind --json`,
	Run: runTailwind,
}

func runTailwind(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fs := vfs.NewOsFS()
	result := tailwindcfg.Load(fs, projectDir)

	if jsonOutput {
		printSuccess(TailwindOutput{Success: result.Success, Script: result.ConfigScript, Error: result.Error})
		return
	}

	fmt.Printf("\n  %s Tailwind Config\n\n", cyan("nextvfs"))

	if !result.Success {
		fmt.Printf("  %s %s\n\n", red("Error:"), result.Error)
		os.Exit(1)
	}

	if result.ConfigScript == "" {
		fmt.Printf("  %s No tailwind.config file found under %s\n\n", yellow("→"), projectDir)
		return
	}

	fmt.Printf("  %s Extracted config snippet\n\n", green("✓"))
	fmt.Println(result.ConfigScript)
	fmt.Println()
}
