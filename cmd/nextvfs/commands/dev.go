package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nextdev-go/nextvfs/internal/watch"
	"github.com/nextdev-go/nextvfs/pkg/devserver"
)

// projectConfig holds the optional nextvfs.yaml overrides read via
// viper, the same config-file convention cmd/fuego/commands/deploy.go
// uses for fuego.yaml.
type projectConfig struct {
	AppDir   string
	PagesDir string
	Port     string
}

func loadProjectConfig(dir, defaultPort string) projectConfig {
	cfg := projectConfig{AppDir: "app", PagesDir: "pages", Port: defaultPort}

	v := viper.New()
	v.SetConfigName("nextvfs")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		return cfg
	}
	if s := v.GetString("appDir"); s != "" {
		cfg.AppDir = s
	}
	if s := v.GetString("pagesDir"); s != "" {
		cfg.PagesDir = s
	}
	if s := v.GetString("port"); s != "" {
		cfg.Port = s
	}
	return cfg
}

func devTimestamp() string {
	return time.Now().Format("15:04:05")
}

var (
	devPort string
	devOpen bool
)

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Start the in-process dev server over --dir",
	Long: `Mirror the project at --dir into an in-memory VFS, watch it for
changes, and serve resolved App Router / Pages Router routes as a
diagnostic HTML shell.

Example:
  nextvfs dev
  nextvfs dev --dir ./my-next-app --port 3001 --open`,
	Run: runDev,
}

func init() {
	devCmd.Flags().StringVarP(&devPort, "port", "p", "3000", "Port to run the server on")
	devCmd.Flags().BoolVar(&devOpen, "open", false, "Open the dev server in a browser once it starts")
}

func runDev(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Printf("\n  %s Dev Server\n\n", cyan("nextvfs"))

	absDir, err := filepath.Abs(projectDir)
	if err != nil {
		fmt.Printf("  %s %v\n", red("Error:"), err)
		os.Exit(1)
	}

	cfg := loadProjectConfig(absDir, devPort)
	if !cmd.Flags().Changed("port") {
		devPort = cfg.Port
	}

	fmt.Printf("  %s Loading project from %s...\n", yellow("→"), absDir)
	w, err := watch.New(absDir)
	if err != nil {
		fmt.Printf("  %s Failed to load project: %v\n", red("Error:"), err)
		os.Exit(1)
	}
	defer func() { _ = w.Close() }()

	appDir, pagesDir := "", ""
	if w.FS.IsDirectory("/" + cfg.AppDir) {
		appDir = "/" + cfg.AppDir
	}
	if w.FS.IsDirectory("/" + cfg.PagesDir) {
		pagesDir = "/" + cfg.PagesDir
	}
	if appDir == "" && pagesDir == "" {
		fmt.Printf("  %s No %s/ or %s/ directory found under %s\n", red("Error:"), cfg.AppDir, cfg.PagesDir, absDir)
		os.Exit(1)
	}
	fmt.Printf("  %s Project loaded\n", green("✓"))

	w.OnChange = func(changed []string) {
		timestamp := devTimestamp()
		fmt.Printf("  [%s] %s %d file(s) changed\n", timestamp, yellow("→"), len(changed))
	}
	go func() {
		if err := w.Run(); err != nil {
			fmt.Printf("  %s Watcher stopped: %v\n", yellow("Warning:"), err)
		}
	}()

	server := devserver.New(w.FS, devserver.Config{
		AppDir:      appDir,
		PagesDir:    pagesDir,
		ProjectRoot: "/",
		Addr:        ":" + devPort,
	})

	if devOpen {
		go func() {
			_ = browser.OpenURL(fmt.Sprintf("http://localhost:%s", devPort))
		}()
	}

	if err := server.Listen(); err != nil {
		fmt.Printf("  %s %v\n", red("Error:"), err)
		os.Exit(1)
	}
}
