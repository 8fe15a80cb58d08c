package router

import (
	"reflect"
	"testing"

	"github.com/nextdev-go/nextvfs/pkg/vfs"
)

func TestHasAppRouter(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		dir   string
		want  bool
	}{
		{
			name:  "root page",
			files: map[string]string{"/app/page.tsx": "x"},
			dir:   "/app",
			want:  true,
		},
		{
			name:  "root layout only",
			files: map[string]string{"/app/layout.tsx": "x"},
			dir:   "/app",
			want:  true,
		},
		{
			name:  "page behind route group",
			files: map[string]string{"/app/(marketing)/page.tsx": "x"},
			dir:   "/app",
			want:  true,
		},
		{
			name:  "no app dir",
			files: map[string]string{},
			dir:   "/app",
			want:  false,
		},
		{
			name:  "unrelated files only",
			files: map[string]string{"/app/readme.md": "x"},
			dir:   "/app",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := vfs.NewMemFS(tt.files)
			if got := HasAppRouter(fs, tt.dir); got != tt.want {
				t.Errorf("HasAppRouter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveAppRoute_StaticPage(t *testing.T) {
	fs := vfs.NewMemFS(map[string]string{
		"/app/layout.tsx": "x",
		"/app/page.tsx":   "x",
	})

	rec := ResolveAppRoute(fs, "/app", "/")
	if rec == nil {
		t.Fatal("expected a route record")
	}
	if rec.Page != "/app/page.tsx" {
		t.Errorf("Page = %q", rec.Page)
	}
	if !reflect.DeepEqual(rec.Layouts, []string{"/app/layout.tsx"}) {
		t.Errorf("Layouts = %v", rec.Layouts)
	}
}

func TestResolveAppRoute_DynamicSegment(t *testing.T) {
	fs := vfs.NewMemFS(map[string]string{
		"/app/layout.tsx":             "x",
		"/app/users/[id]/page.tsx":    "x",
	})

	rec := ResolveAppRoute(fs, "/app", "/users/123")
	if rec == nil {
		t.Fatal("expected a route record")
	}
	if rec.Page != "/app/users/[id]/page.tsx" {
		t.Errorf("Page = %q", rec.Page)
	}
	if rec.Params["id"] != "123" {
		t.Errorf("Params[id] = %v", rec.Params["id"])
	}
	if !reflect.DeepEqual(rec.Layouts, []string{"/app/layout.tsx"}) {
		t.Errorf("Layouts = %v", rec.Layouts)
	}
}

func TestResolveAppRoute_RouteGroupTransparency(t *testing.T) {
	fs := vfs.NewMemFS(map[string]string{
		"/app/layout.tsx":                     "x",
		"/app/(marketing)/about/page.tsx":      "x",
	})

	rec := ResolveAppRoute(fs, "/app", "/about")
	if rec == nil {
		t.Fatal("expected a route record")
	}
	if rec.Page != "/app/(marketing)/about/page.tsx" {
		t.Errorf("Page = %q", rec.Page)
	}
}

func TestResolveAppRoute_CatchAllWithConvention(t *testing.T) {
	fs := vfs.NewMemFS(map[string]string{
		"/app/layout.tsx":                  "x",
		"/app/loading.tsx":                 "x",
		"/app/docs/[...slug]/page.tsx":      "x",
	})

	rec := ResolveAppRoute(fs, "/app", "/docs/a/b/c")
	if rec == nil {
		t.Fatal("expected a route record")
	}
	if rec.Page != "/app/docs/[...slug]/page.tsx" {
		t.Errorf("Page = %q", rec.Page)
	}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(rec.Params["slug"], want) {
		t.Errorf("Params[slug] = %v, want %v", rec.Params["slug"], want)
	}
	if rec.Loading != "/app/loading.tsx" {
		t.Errorf("Loading = %q", rec.Loading)
	}
}

func TestResolveAppRoute_OptionalCatchAllMatchesZeroSegments(t *testing.T) {
	// Per spec.md §4.1 step 3: "[[...name]]: ... also (conceptually)
	// satisfies zero-segment case at the parent" — app/docs/[[...slug]]
	// must serve /docs itself, not just /docs/*.
	fs := vfs.NewMemFS(map[string]string{
		"/app/layout.tsx":                "x",
		"/app/docs/[[...slug]]/page.tsx": "x",
	})

	rec := ResolveAppRoute(fs, "/app", "/docs")
	if rec == nil {
		t.Fatal("expected a route record for the zero-segment case")
	}
	if rec.Page != "/app/docs/[[...slug]]/page.tsx" {
		t.Errorf("Page = %q", rec.Page)
	}
	if !reflect.DeepEqual(rec.Params["slug"], []string{}) {
		t.Errorf("Params[slug] = %v, want empty slice", rec.Params["slug"])
	}

	rec = ResolveAppRoute(fs, "/app", "/docs/a/b")
	if rec == nil {
		t.Fatal("expected a route record for the multi-segment case")
	}
	want := []string{"a", "b"}
	if !reflect.DeepEqual(rec.Params["slug"], want) {
		t.Errorf("Params[slug] = %v, want %v", rec.Params["slug"], want)
	}
}

func TestResolveAppRouteHandler_OptionalCatchAllMatchesZeroSegments(t *testing.T) {
	fs := vfs.NewMemFS(map[string]string{
		"/app/api/[[...slug]]/route.ts": "x",
	})

	p, ok := ResolveAppRouteHandler(fs, "/app", "/api")
	if !ok || p != "/app/api/[[...slug]]/route.ts" {
		t.Errorf("got (%q, %v)", p, ok)
	}

	p, ok = ResolveAppRouteHandler(fs, "/app", "/api/a/b")
	if !ok || p != "/app/api/[[...slug]]/route.ts" {
		t.Errorf("got (%q, %v)", p, ok)
	}
}

func TestResolveAppRoute_ExactBeatsDynamic(t *testing.T) {
	fs := vfs.NewMemFS(map[string]string{
		"/app/users/settings/page.tsx": "x",
		"/app/users/[id]/page.tsx":     "x",
	})

	rec := ResolveAppRoute(fs, "/app", "/users/settings")
	if rec == nil {
		t.Fatal("expected a route record")
	}
	if rec.Page != "/app/users/settings/page.tsx" {
		t.Errorf("Page = %q, want the exact-match settings page", rec.Page)
	}
}

func TestResolveAppRoute_NoMatch(t *testing.T) {
	fs := vfs.NewMemFS(map[string]string{
		"/app/page.tsx": "x",
	})
	if rec := ResolveAppRoute(fs, "/app", "/missing"); rec != nil {
		t.Errorf("expected nil, got %v", rec)
	}
	if rec := ResolveAppRoute(fs, "/does-not-exist", "/"); rec != nil {
		t.Errorf("expected nil for missing app dir, got %v", rec)
	}
}

func TestResolveAppRouteHandler(t *testing.T) {
	fs := vfs.NewMemFS(map[string]string{
		"/app/api/users/[id]/route.ts": "x",
		"/app/(admin)/api/ping/route.ts": "x",
	})

	p, ok := ResolveAppRouteHandler(fs, "/app", "/api/users/42")
	if !ok || p != "/app/api/users/[id]/route.ts" {
		t.Errorf("got (%q, %v)", p, ok)
	}

	p, ok = ResolveAppRouteHandler(fs, "/app", "/api/ping")
	if !ok || p != "/app/(admin)/api/ping/route.ts" {
		t.Errorf("got (%q, %v)", p, ok)
	}
}

func TestResolvePageFile(t *testing.T) {
	fs := vfs.NewMemFS(map[string]string{
		"/pages/index.tsx":            "x",
		"/pages/about.tsx":            "x",
		"/pages/blog/[slug].tsx":      "x",
		"/pages/docs/[...path].tsx":   "x",
	})

	tests := []struct {
		pathname string
		want     string
	}{
		{"/", "/pages/index.tsx"},
		{"/about", "/pages/about.tsx"},
		{"/blog/hello-world", "/pages/blog/[slug].tsx"},
		{"/docs/a/b/c", "/pages/docs/[...path].tsx"},
		{"/missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.pathname, func(t *testing.T) {
			got, ok := ResolvePageFile(fs, "/pages", tt.pathname)
			if tt.want == "" {
				if ok {
					t.Errorf("expected no match, got %q", got)
				}
				return
			}
			if !ok || got != tt.want {
				t.Errorf("got (%q, %v), want %q", got, ok, tt.want)
			}
		})
	}
}

func TestResolveAppRoute_LegacyUnderscoreDynamicSegment(t *testing.T) {
	// SPEC_FULL.md §5's legacy underscore convention must actually resolve
	// a route, not just classify as a name — pins the feature end-to-end
	// against a future ParseSegment precedence change.
	fs := vfs.NewMemFS(map[string]string{
		"/app/layout.tsx":         "x",
		"/app/users/_id/page.tsx": "x",
	})

	rec := ResolveAppRoute(fs, "/app", "/users/123")
	if rec == nil {
		t.Fatal("expected a route record")
	}
	if rec.Page != "/app/users/_id/page.tsx" {
		t.Errorf("Page = %q", rec.Page)
	}
	if rec.Params["id"] != "123" {
		t.Errorf("Params[id] = %v", rec.Params["id"])
	}
}

func TestResolvePageFile_LegacyUnderscoreCatchAll(t *testing.T) {
	fs := vfs.NewMemFS(map[string]string{
		"/pages/docs/__path.tsx": "x",
	})
	got, ok := ResolvePageFile(fs, "/pages", "/docs/a/b/c")
	if !ok || got != "/pages/docs/__path.tsx" {
		t.Errorf("got (%q, %v)", got, ok)
	}
}

func TestResolvePageFile_CatchAllIsFileOnly(t *testing.T) {
	// Per the open question in spec.md §9: Pages-Router catch-all routes
	// are checked only as files, never as directories.
	fs := vfs.NewMemFS(map[string]string{
		"/pages/docs/[...path]/page.tsx": "x", // not a recognized shape
	})
	if _, ok := ResolvePageFile(fs, "/pages", "/docs/a/b"); ok {
		t.Error("expected no match: catch-all as a directory must not resolve")
	}
}

func TestResolveApiFile(t *testing.T) {
	fs := vfs.NewMemFS(map[string]string{
		"/pages/api/users.ts":  "x",
		"/pages/api/posts/index.ts": "x",
	})

	got, ok := ResolveApiFile(fs, "/pages", "/api/users")
	if !ok || got != "/pages/api/users.ts" {
		t.Errorf("got (%q, %v)", got, ok)
	}

	got, ok = ResolveApiFile(fs, "/pages", "/api/posts")
	if !ok || got != "/pages/api/posts/index.ts" {
		t.Errorf("got (%q, %v)", got, ok)
	}
}

func TestResolveFileWithExtension(t *testing.T) {
	fs := vfs.NewMemFS(map[string]string{
		"/lib/util.ts":        "x",
		"/components/Nav/index.tsx": "x",
	})

	got, ok := ResolveFileWithExtension(fs, "/lib/util")
	if !ok || got != "/lib/util.ts" {
		t.Errorf("got (%q, %v)", got, ok)
	}

	got, ok = ResolveFileWithExtension(fs, "/components/Nav")
	if !ok || got != "/components/Nav/index.tsx" {
		t.Errorf("got (%q, %v)", got, ok)
	}

	if _, ok := ResolveFileWithExtension(fs, "/nope"); ok {
		t.Error("expected no match")
	}
}

func TestNeedsTransform(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/app/page.jsx", true},
		{"/app/page.tsx", true},
		{"/app/util.ts", true},
		{"/app/page.js", false},
		{"/app/noext", false},
	}
	for _, tt := range tests {
		if got := NeedsTransform(tt.path); got != tt.want {
			t.Errorf("NeedsTransform(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
