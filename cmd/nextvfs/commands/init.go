package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter nextvfs.yaml into --dir",
	Long: `Scaffold a nextvfs.yaml with the default appDir/pagesDir/port values so
they can be edited in place instead of passed as flags every run.

Example:
  nextvfs init
  nextvfs init --dir ./my-next-app`,
	Run: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// yamlProjectConfig mirrors projectConfig's field names in the on-disk
// nextvfs.yaml shape.
type yamlProjectConfig struct {
	AppDir   string `yaml:"appDir"`
	PagesDir string `yaml:"pagesDir"`
	Port     string `yaml:"port"`
}

func runInit(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	path := filepath.Join(projectDir, "nextvfs.yaml")
	if _, err := os.Stat(path); err == nil {
		if jsonOutput {
			printJSONError(fmt.Errorf("%s already exists", path))
		} else {
			fmt.Printf("  %s %s already exists\n", yellow("→"), path)
		}
		os.Exit(1)
	}

	content, err := yaml.Marshal(yamlProjectConfig{AppDir: "app", PagesDir: "pages", Port: "3000"})
	if err != nil {
		if jsonOutput {
			printJSONError(err)
		} else {
			fmt.Printf("  %s %v\n", red("Error:"), err)
		}
		os.Exit(1)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		if jsonOutput {
			printJSONError(err)
		} else {
			fmt.Printf("  %s Failed to write %s: %v\n", red("Error:"), path, err)
		}
		os.Exit(1)
	}

	if jsonOutput {
		printSuccess(map[string]any{"path": path})
		return
	}
	fmt.Printf("  %s Wrote %s\n", green("✓"), path)
}
