package router

import (
	"strings"

	"github.com/nextdev-go/nextvfs/pkg/vfs"
)

// RouteEntry is one discovered page or handler, with the URL pattern it
// resolves under. Patterns use the {name} and * conventions
// pkg/scanner's BuildURLPattern uses for dynamic and catch-all segments,
// so CLI output reads the same across both router families.
type RouteEntry struct {
	Pattern string
	File    string
}

// ListAppRoutes walks appDir and reports every page file's URL pattern,
// sorted. It derives each pattern directly from the directory walk
// rather than resolving every hypothetical path, which would require
// guessing concrete dynamic values.
func ListAppRoutes(fs vfs.FS, appDir string) []RouteEntry {
	var out []RouteEntry
	walkAppRoutes(fs, appDir, nil, &out)
	sortEntries(out)
	return out
}

func walkAppRoutes(fs vfs.FS, dir string, parts []string, out *[]RouteEntry) {
	if p := findFile(fs, dir, pageExtensions, "page"); p != "" {
		*out = append(*out, RouteEntry{Pattern: patternFromParts(parts), File: p})
	}

	for _, child := range sortedReaddir(fs, dir) {
		cdir := joinPath(dir, child)
		if !fs.IsDirectory(cdir) || IsPrivateFolder(child) {
			continue
		}
		walkAppRoutes(fs, cdir, nextParts(parts, child), out)
	}
}

// ListAppHandlers walks appDir and reports every route.<ext> handler's
// URL pattern, sorted.
func ListAppHandlers(fs vfs.FS, appDir string) []RouteEntry {
	var out []RouteEntry
	walkAppHandlers(fs, appDir, nil, &out)
	sortEntries(out)
	return out
}

func walkAppHandlers(fs vfs.FS, dir string, parts []string, out *[]RouteEntry) {
	if p := findFile(fs, dir, apiExtensions, "route"); p != "" {
		*out = append(*out, RouteEntry{Pattern: patternFromParts(parts), File: p})
	}

	for _, child := range sortedReaddir(fs, dir) {
		cdir := joinPath(dir, child)
		if !fs.IsDirectory(cdir) || IsPrivateFolder(child) {
			continue
		}
		walkAppHandlers(fs, cdir, nextParts(parts, child), out)
	}
}

// ListPagesRoutes walks pagesDir (Pages Router) and reports every page
// file's URL pattern, skipping the api/ subtree and private folders.
func ListPagesRoutes(fs vfs.FS, pagesDir string) []RouteEntry {
	var out []RouteEntry
	walkPagesRoutes(fs, pagesDir, nil, &out)
	sortEntries(out)
	return out
}

func walkPagesRoutes(fs vfs.FS, dir string, parts []string, out *[]RouteEntry) {
	for _, ext := range pageExtensions {
		p := joinPath(dir, "index"+ext)
		if fs.Exists(p) && !fs.IsDirectory(p) {
			*out = append(*out, RouteEntry{Pattern: patternFromParts(parts), File: p})
			break
		}
	}

	for _, child := range sortedReaddir(fs, dir) {
		if len(parts) == 0 && (child == "api" || IsPrivateFolder(child)) {
			continue
		}
		cpath := joinPath(dir, child)

		if fs.IsDirectory(cpath) {
			if IsPrivateFolder(child) {
				continue
			}
			walkPagesRoutes(fs, cpath, nextParts(parts, child), out)
			continue
		}

		for _, ext := range pageExtensions {
			if !strings.HasSuffix(child, ext) {
				continue
			}
			base := strings.TrimSuffix(child, ext)
			if base == "index" {
				continue
			}
			*out = append(*out, RouteEntry{Pattern: patternFromParts(nextParts(parts, base)), File: cpath})
			break
		}
	}
}

func nextParts(parts []string, child string) []string {
	seg := ParseSegment(child)
	next := append(append([]string{}, parts...))
	switch seg.Type {
	case SegmentGroup:
		return next
	case SegmentDynamic:
		return append(next, "{"+seg.Name+"}")
	case SegmentCatchAll, SegmentOptionalCatchAll:
		return append(next, "*")
	default:
		return append(next, child)
	}
}

func patternFromParts(parts []string) string {
	if len(parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(parts, "/")
}

func sortEntries(entries []RouteEntry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j-1].Pattern > entries[j].Pattern; j-- {
			entries[j-1], entries[j] = entries[j], entries[j-1]
		}
	}
}
