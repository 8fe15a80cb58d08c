package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nextdev-go/nextvfs/pkg/nextconfig"
)

var nextConfigCandidates = []string{"next.config.ts", "next.config.js", "next.config.mjs"}

var configCmd = &cobra.Command{
	Use:   "config <key>",
	Short: "Read a statically-resolvable value out of next.config",
	Long: `Parse the project's next.config.{ts,js,mjs} well enough to read one
top-level string value, without executing any JavaScript.

Examples:
  nextvfs config basePath
  nextvfs config assetPrefix --dir ./my-next-app
  nextvfs config output --json`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	key := args[0]
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	var configPath string
	for _, name := range nextConfigCandidates {
		p := filepath.Join(projectDir, name)
		if _, err := os.Stat(p); err == nil {
			configPath = p
			break
		}
	}

	if configPath == "" {
		if jsonOutput {
			printSuccess(ConfigOutput{Key: key, Found: false})
		} else {
			fmt.Printf("  %s No next.config file found under %s\n", yellow("→"), projectDir)
		}
		return
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		if jsonOutput {
			printJSONError(err)
		} else {
			fmt.Printf("  %s Failed to read %s: %v\n", red("Error:"), configPath, err)
		}
		os.Exit(1)
	}

	isTyped := strings.HasSuffix(configPath, ".ts")
	value, found := nextconfig.ParseNextConfigValue(string(content), key, isTyped)

	if jsonOutput {
		printSuccess(ConfigOutput{Key: key, Value: value, Found: found, ConfigPath: configPath})
		return
	}

	fmt.Printf("\n  %s %s\n\n", cyan("nextvfs config"), configPath)
	if !found {
		fmt.Printf("  %s %q is not statically resolvable in this config\n\n", yellow("→"), key)
		return
	}
	fmt.Printf("  %s = %s\n\n", key, green(value))
}
