// Package router implements App Router and Pages Router resolution over a
// vfs.FS handle: mapping a request pathname to the page, layout chain,
// convention files, or API handler that should serve it.
package router

import (
	"path"
	"sort"
	"strings"

	"github.com/nextdev-go/nextvfs/pkg/vfs"
)

// HasAppRouter reports whether appDir looks like an App Router root: a
// root page or layout, or a page reachable through a transparent route
// group directly under appDir.
func HasAppRouter(fs vfs.FS, appDir string) bool {
	if !fs.Exists(appDir) {
		return false
	}
	if findFile(fs, appDir, pageExtensions, "page") != "" {
		return true
	}
	if findFile(fs, appDir, pageExtensions, "layout") != "" {
		return true
	}
	for _, child := range sortedReaddir(fs, appDir) {
		if ParseSegment(child).Type != SegmentGroup {
			continue
		}
		if findFile(fs, joinPath(appDir, child), pageExtensions, "page") != "" {
			return true
		}
	}
	return false
}

// walkState accumulates the (immutable, copy-on-write) layout list and
// bound params as the App Router walk descends. Each branch gets its own
// copy so an unsuccessful branch never leaks state into a sibling.
type walkState struct {
	layouts []string
	params  map[string]any
}

func (s walkState) withLayout(p string) walkState {
	for _, l := range s.layouts {
		if l == p {
			return s
		}
	}
	next := make([]string, len(s.layouts), len(s.layouts)+1)
	copy(next, s.layouts)
	next = append(next, p)
	return walkState{layouts: next, params: s.params}
}

func (s walkState) withParam(name string, value any) walkState {
	next := make(map[string]any, len(s.params)+1)
	for k, v := range s.params {
		next[k] = v
	}
	next[name] = value
	return walkState{layouts: s.layouts, params: next}
}

// ResolveAppRoute implements §4.1 resolve_app_route.
func ResolveAppRoute(fs vfs.FS, appDir, pathname string) *Route {
	if !fs.Exists(appDir) {
		return nil
	}
	segs := splitSegments(pathname)
	rec := appWalk(fs, appDir, segs, walkState{params: map[string]any{}})
	if rec == nil {
		return nil
	}
	dir := path.Dir(rec.Page)
	rec.Loading = nearestConvention(fs, dir, appDir, conventionLoading)
	rec.Error = nearestConvention(fs, dir, appDir, conventionError)
	rec.NotFound = nearestConvention(fs, dir, appDir, conventionNotFound)
	return rec
}

func appWalk(fs vfs.FS, dir string, remaining []string, state walkState) *Route {
	if lp := findFile(fs, dir, pageExtensions, "layout"); lp != "" {
		state = state.withLayout(lp)
	}

	if len(remaining) == 0 {
		if pg := findFile(fs, dir, pageExtensions, "page"); pg != "" {
			return &Route{Page: pg, Layouts: state.layouts, Params: state.params}
		}
		for _, child := range sortedReaddir(fs, dir) {
			if ParseSegment(child).Type != SegmentGroup {
				continue
			}
			gdir := joinPath(dir, child)
			gs := state
			if lp := findFile(fs, gdir, pageExtensions, "layout"); lp != "" {
				gs = gs.withLayout(lp)
			}
			if pg := findFile(fs, gdir, pageExtensions, "page"); pg != "" {
				return &Route{Page: pg, Layouts: gs.layouts, Params: gs.params}
			}
			if rec := tryOptionalCatchAllAtZero(fs, gdir, gs); rec != nil {
				return rec
			}
		}
		if rec := tryOptionalCatchAllAtZero(fs, dir, state); rec != nil {
			return rec
		}
		return nil
	}

	head, tail := remaining[0], remaining[1:]

	if exactDir := joinPath(dir, head); fs.IsDirectory(exactDir) {
		if rec := appWalk(fs, exactDir, tail, state); rec != nil {
			return rec
		}
	}

	for _, child := range sortedReaddir(fs, dir) {
		if ParseSegment(child).Type != SegmentGroup {
			continue
		}
		gdir := joinPath(dir, child)
		gs := state
		if lp := findFile(fs, gdir, pageExtensions, "layout"); lp != "" {
			gs = gs.withLayout(lp)
		}
		if gExact := joinPath(gdir, head); fs.IsDirectory(gExact) {
			if rec := appWalk(fs, gExact, tail, gs); rec != nil {
				return rec
			}
		}
		if rec := tryDynamicChildren(fs, gdir, head, tail, gs); rec != nil {
			return rec
		}
	}

	return tryDynamicChildren(fs, dir, head, tail, state)
}

// tryDynamicChildren applies the documented tie-break order: single
// dynamic segment before catch-all before optional-catch-all.
func tryDynamicChildren(fs vfs.FS, dir, head string, tail []string, state walkState) *Route {
	children := sortedReaddir(fs, dir)

	for _, child := range children {
		seg := ParseSegment(child)
		if seg.Type != SegmentDynamic {
			continue
		}
		cdir := joinPath(dir, child)
		if !fs.IsDirectory(cdir) {
			continue
		}
		if rec := appWalk(fs, cdir, tail, state.withParam(seg.Name, head)); rec != nil {
			return rec
		}
	}

	values := append([]string{head}, tail...)

	for _, child := range children {
		seg := ParseSegment(child)
		if seg.Type != SegmentCatchAll {
			continue
		}
		cdir := joinPath(dir, child)
		if !fs.IsDirectory(cdir) {
			continue
		}
		if rec := appWalk(fs, cdir, nil, state.withParam(seg.Name, values)); rec != nil {
			return rec
		}
	}

	for _, child := range children {
		seg := ParseSegment(child)
		if seg.Type != SegmentOptionalCatchAll {
			continue
		}
		cdir := joinPath(dir, child)
		if !fs.IsDirectory(cdir) {
			continue
		}
		if rec := appWalk(fs, cdir, nil, state.withParam(seg.Name, values)); rec != nil {
			return rec
		}
	}

	return nil
}

// tryOptionalCatchAllAtZero scans dir's direct children for an optional
// catch-all segment that can satisfy a zero-remaining-segment terminal
// match — per spec.md §4.1 step 3's note that `[[...name]]` "also
// (conceptually) satisfies zero-segment case at the parent" — binding its
// param to an empty list.
func tryOptionalCatchAllAtZero(fs vfs.FS, dir string, state walkState) *Route {
	for _, child := range sortedReaddir(fs, dir) {
		seg := ParseSegment(child)
		if seg.Type != SegmentOptionalCatchAll {
			continue
		}
		cdir := joinPath(dir, child)
		if !fs.IsDirectory(cdir) {
			continue
		}
		if rec := appWalk(fs, cdir, nil, state.withParam(seg.Name, []string{})); rec != nil {
			return rec
		}
	}
	return nil
}

// ResolveAppRouteHandler implements §4.1 resolve_app_route_handler.
func ResolveAppRouteHandler(fs vfs.FS, appDir, pathname string) (string, bool) {
	if !fs.Exists(appDir) {
		return "", false
	}
	segs := splitSegments(pathname)
	p := handlerWalk(fs, appDir, segs)
	return p, p != ""
}

func handlerWalk(fs vfs.FS, dir string, remaining []string) string {
	if len(remaining) == 0 {
		if h := findFile(fs, dir, apiExtensions, "route"); h != "" {
			return h
		}
		for _, child := range sortedReaddir(fs, dir) {
			if ParseSegment(child).Type != SegmentGroup {
				continue
			}
			gdir := joinPath(dir, child)
			if h := findFile(fs, gdir, apiExtensions, "route"); h != "" {
				return h
			}
			if h := tryOptionalCatchAllHandlerAtZero(fs, gdir); h != "" {
				return h
			}
		}
		if h := tryOptionalCatchAllHandlerAtZero(fs, dir); h != "" {
			return h
		}
		return ""
	}

	head, tail := remaining[0], remaining[1:]

	if exactDir := joinPath(dir, head); fs.IsDirectory(exactDir) {
		if h := handlerWalk(fs, exactDir, tail); h != "" {
			return h
		}
	}

	for _, child := range sortedReaddir(fs, dir) {
		if ParseSegment(child).Type != SegmentGroup {
			continue
		}
		gdir := joinPath(dir, child)
		if gExact := joinPath(gdir, head); fs.IsDirectory(gExact) {
			if h := handlerWalk(fs, gExact, tail); h != "" {
				return h
			}
		}
		if h := tryDynamicChildrenHandler(fs, gdir, head, tail); h != "" {
			return h
		}
	}

	return tryDynamicChildrenHandler(fs, dir, head, tail)
}

// tryOptionalCatchAllHandlerAtZero mirrors tryOptionalCatchAllAtZero for
// route-handler resolution: an optional catch-all directory can serve a
// handler request with zero remaining segments.
func tryOptionalCatchAllHandlerAtZero(fs vfs.FS, dir string) string {
	for _, child := range sortedReaddir(fs, dir) {
		if ParseSegment(child).Type != SegmentOptionalCatchAll {
			continue
		}
		cdir := joinPath(dir, child)
		if !fs.IsDirectory(cdir) {
			continue
		}
		if h := handlerWalk(fs, cdir, nil); h != "" {
			return h
		}
	}
	return ""
}

func tryDynamicChildrenHandler(fs vfs.FS, dir, head string, tail []string) string {
	children := sortedReaddir(fs, dir)

	for _, child := range children {
		if ParseSegment(child).Type != SegmentDynamic {
			continue
		}
		cdir := joinPath(dir, child)
		if !fs.IsDirectory(cdir) {
			continue
		}
		if h := handlerWalk(fs, cdir, tail); h != "" {
			return h
		}
	}
	for _, child := range children {
		if ParseSegment(child).Type != SegmentCatchAll {
			continue
		}
		cdir := joinPath(dir, child)
		if !fs.IsDirectory(cdir) {
			continue
		}
		if h := handlerWalk(fs, cdir, nil); h != "" {
			return h
		}
	}
	for _, child := range children {
		if ParseSegment(child).Type != SegmentOptionalCatchAll {
			continue
		}
		cdir := joinPath(dir, child)
		if !fs.IsDirectory(cdir) {
			continue
		}
		if h := handlerWalk(fs, cdir, nil); h != "" {
			return h
		}
	}
	return ""
}

// nearestConvention walks up from dir toward (and including) appDir,
// returning the first <ancestor>/<name>.<ext> that exists.
func nearestConvention(fs vfs.FS, dir, appDir, name string) string {
	for {
		if p := findFile(fs, dir, pageExtensions, name); p != "" {
			return p
		}
		if dir == appDir {
			return ""
		}
		parent := path.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// ResolvePageFile implements §4.1 resolve_page_file (Pages Router).
func ResolvePageFile(fs vfs.FS, pagesDir, pathname string) (string, bool) {
	if pathname == "/" {
		pathname = "/index"
	}

	for _, ext := range pageExtensions {
		p := pagesDir + pathname + ext
		if fs.Exists(p) && !fs.IsDirectory(p) {
			return p, true
		}
	}
	for _, ext := range pageExtensions {
		p := pagesDir + pathname + "/index" + ext
		if fs.Exists(p) {
			return p, true
		}
	}

	segs := splitSegments(pathname)
	if p, ok := pagesWalk(fs, pagesDir, segs); ok {
		return p, true
	}
	return "", false
}

func pagesWalk(fs vfs.FS, dir string, remaining []string) (string, bool) {
	if len(remaining) == 0 {
		for _, ext := range pageExtensions {
			p := joinPath(dir, "index"+ext)
			if fs.Exists(p) && !fs.IsDirectory(p) {
				return p, true
			}
		}
		return "", false
	}

	head, tail := remaining[0], remaining[1:]

	if len(tail) == 0 {
		for _, ext := range pageExtensions {
			p := joinPath(dir, head+ext)
			if fs.Exists(p) && !fs.IsDirectory(p) {
				return p, true
			}
		}
	}

	if exactDir := joinPath(dir, head); fs.IsDirectory(exactDir) {
		if p, ok := pagesWalk(fs, exactDir, tail); ok {
			return p, true
		}
	}

	children := sortedReaddir(fs, dir)

	if len(tail) == 0 {
		for _, ext := range pageExtensions {
			for _, child := range children {
				if !strings.HasSuffix(child, ext) {
					continue
				}
				base := strings.TrimSuffix(child, ext)
				if ParseSegment(base).Type == SegmentDynamic {
					return joinPath(dir, child), true
				}
			}
		}
	}

	for _, child := range children {
		if !fs.IsDirectory(joinPath(dir, child)) {
			continue
		}
		if ParseSegment(child).Type == SegmentDynamic {
			if p, ok := pagesWalk(fs, joinPath(dir, child), tail); ok {
				return p, true
			}
		}
	}

	for _, ext := range pageExtensions {
		for _, child := range children {
			if !strings.HasSuffix(child, ext) {
				continue
			}
			base := strings.TrimSuffix(child, ext)
			if ParseSegment(base).Type == SegmentCatchAll {
				return joinPath(dir, child), true
			}
		}
	}

	return "", false
}

// ResolveApiFile implements §4.1 resolve_api_file. pathname is expected to
// already begin with "/api".
func ResolveApiFile(fs vfs.FS, pagesDir, pathname string) (string, bool) {
	base := pagesDir + pathname
	for _, ext := range apiExtensions {
		p := base + ext
		if fs.Exists(p) && !fs.IsDirectory(p) {
			return p, true
		}
	}
	for _, ext := range apiExtensions {
		p := base + "/index" + ext
		if fs.Exists(p) {
			return p, true
		}
	}
	return "", false
}

// ResolveFileWithExtension implements §4.1 resolve_file_with_extension.
func ResolveFileWithExtension(fs vfs.FS, p string) (string, bool) {
	if path.Ext(p) != "" && fs.Exists(p) && !fs.IsDirectory(p) {
		return p, true
	}
	for _, ext := range fallbackExtensions {
		cand := p + ext
		if fs.Exists(cand) && !fs.IsDirectory(cand) {
			return cand, true
		}
	}
	for _, ext := range fallbackExtensions {
		cand := p + "/index" + ext
		if fs.Exists(cand) {
			return cand, true
		}
	}
	return "", false
}

// NeedsTransform implements §4.1 needs_transform.
func NeedsTransform(p string) bool {
	switch path.Ext(p) {
	case ".jsx", ".tsx", ".ts":
		return true
	default:
		return false
	}
}

func findFile(fs vfs.FS, dir string, exts []string, base string) string {
	for _, ext := range exts {
		p := joinPath(dir, base+ext)
		if fs.Exists(p) && !fs.IsDirectory(p) {
			return p
		}
	}
	return ""
}

func joinPath(dir, name string) string {
	if dir == "/" {
		return "/" + name
	}
	return dir + "/" + name
}

func splitSegments(pathname string) []string {
	parts := strings.Split(pathname, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func sortedReaddir(fs vfs.FS, dir string) []string {
	children := fs.ReadDir(dir)
	out := make([]string, len(children))
	copy(out, children)
	sort.Strings(out)
	return out
}
