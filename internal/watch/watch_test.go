package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew_LoadsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "app", "page.tsx"), "export default function Page() {}")
	mustWrite(t, filepath.Join(dir, "node_modules", "skip.js"), "should not load")

	w, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = w.Close() }()

	if !w.FS.Exists("/app/page.tsx") {
		t.Error("expected /app/page.tsx to be loaded into the VFS")
	}
	if w.FS.Exists("/node_modules/skip.js") {
		t.Error("expected node_modules to be skipped")
	}
}

func TestRun_AppliesWriteEvents(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "app", "page.tsx"), "v1")

	w, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = w.Close() }()

	changed := make(chan []string, 1)
	w.OnChange = func(c []string) { changed <- c }

	go func() { _ = w.Run() }()

	time.Sleep(20 * time.Millisecond)
	mustWrite(t, filepath.Join(dir, "app", "page.tsx"), "v2")

	select {
	case c := <-changed:
		if len(c) == 0 {
			t.Fatal("expected at least one changed path")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}

	content, err := w.FS.ReadFile("/app/page.tsx")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(content) != "v2" {
		t.Errorf("expected VFS to reflect the rewritten content, got %q", content)
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}
