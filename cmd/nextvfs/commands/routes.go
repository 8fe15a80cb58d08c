package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nextdev-go/nextvfs/pkg/router"
	"github.com/nextdev-go/nextvfs/pkg/vfs"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List resolved App Router / Pages Router routes",
	Long: `List every page and App Router route handler nextvfs can resolve for
the project at --dir, preferring the App Router when an app/ directory is
present. Under the Pages Router, routes in pages/api are not listed.

Examples:
  nextvfs routes
  nextvfs routes --dir ./my-next-app
  nextvfs routes --json`,
	Run: runRoutes,
}

func runRoutes(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fs := vfs.NewOsFS()
	appDir := filepath.Join(projectDir, "app")
	pagesDir := filepath.Join(projectDir, "pages")

	var entries []router.RouteEntry
	var handlers []router.RouteEntry
	routerName := ""

	switch {
	case fs.Exists(appDir) && router.HasAppRouter(fs, appDir):
		routerName = "app"
		entries = router.ListAppRoutes(fs, appDir)
		handlers = router.ListAppHandlers(fs, appDir)
	case fs.Exists(pagesDir):
		routerName = "pages"
		entries = router.ListPagesRoutes(fs, pagesDir)
	default:
		if jsonOutput {
			printJSONError(fmt.Errorf("no app/ or pages/ directory found under %s", projectDir))
		} else {
			fmt.Printf("  %s No app/ or pages/ directory found under %s\n", red("Error:"), projectDir)
		}
		os.Exit(1)
	}

	if jsonOutput {
		out := RoutesOutput{Router: routerName}
		for _, e := range entries {
			out.Routes = append(out.Routes, RouteOutput{Pattern: e.Pattern, File: e.File, Kind: "page"})
		}
		for _, e := range handlers {
			out.Routes = append(out.Routes, RouteOutput{Pattern: e.Pattern, File: e.File, Kind: "handler"})
		}
		out.Total = len(out.Routes)
		printSuccess(out)
		return
	}

	fmt.Printf("\n  %s Routes (%s router)\n\n", cyan("nextvfs"), routerName)
	for _, e := range entries {
		fmt.Printf("  %-30s %s\n", green(e.Pattern), e.File)
	}
	for _, e := range handlers {
		fmt.Printf("  %-30s %s %s\n", green(e.Pattern), e.File, cyan("(handler)"))
	}
	fmt.Printf("\n  %d route(s)\n\n", len(entries)+len(handlers))
}
