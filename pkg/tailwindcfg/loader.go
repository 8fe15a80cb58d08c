// Package tailwindcfg locates a project's Tailwind config in the VFS and
// recovers its exported object literal verbatim, without parsing or
// executing it, for inlining into the host-owned HTML shell.
package tailwindcfg

import (
	"fmt"
	"strings"

	"github.com/nextdev-go/nextvfs/pkg/jslite"
	"github.com/nextdev-go/nextvfs/pkg/vfs"
)

// Result is the outcome of loading a project's Tailwind config, per
// §4.3. When no config file exists at any of the three probed paths,
// ConfigScript is empty and Success is true (absence is not failure).
// Success is false only when a config file was found but could not be
// read or its exported object could not be extracted; ConfigScript is
// then empty too, and Error carries a diagnostic message.
type Result struct {
	ConfigScript string
	Success      bool
	Error        string
}

var probePaths = []string{"tailwind.config.ts", "tailwind.config.js", "tailwind.config.mjs"}

// Load implements §4.3 load_tailwind_config.
func Load(fs vfs.FS, root string) Result {
	var source string
	found := false
	for _, name := range probePaths {
		path := joinPath(root, name)
		if !fs.Exists(path) {
			continue
		}
		content, err := fs.ReadFile(path)
		if err != nil {
			return Result{Success: false, Error: err.Error()}
		}
		source = string(content)
		found = true
		break
	}

	if !found {
		return Result{ConfigScript: "", Success: true}
	}

	// Stripping is applied unconditionally; the rules are idempotent on
	// already-untyped source, so a .js/.mjs config passes through
	// unchanged.
	preprocessed := jslite.StripTypeScript(source)

	object, err := extractExportedObject(preprocessed)
	if err != nil {
		return Result{ConfigScript: "", Success: false, Error: err.Error()}
	}

	return Result{ConfigScript: wrapSnippet(object), Success: true}
}

// extractExportedObject finds `export default` outside strings/comments,
// requires the next non-space character to be `{`, then scans forward
// with a brace counter to the matching close — a verbatim substring, not
// a re-serialization, so comments, computed strings and function
// references the user wrote are preserved exactly.
func extractExportedObject(source string) (string, error) {
	idx := jslite.FindOutsideStrings(source, "export default")
	if idx == -1 {
		return "", fmt.Errorf("tailwindcfg: no export default found")
	}

	rest := source[idx+len("export default"):]
	trimmedLen := len(rest) - len(strings.TrimLeft(rest, " \t\r\n"))
	openIdx := idx + len("export default") + trimmedLen

	if openIdx >= len(source) || source[openIdx] != '{' {
		return "", fmt.Errorf("tailwindcfg: export default is not an object literal")
	}

	closeIdx := jslite.MatchBalanced(source, openIdx, '{', '}')
	if closeIdx == -1 {
		return "", fmt.Errorf("tailwindcfg: unbalanced braces in exported object")
	}

	return source[openIdx : closeIdx+1], nil
}

// wrapSnippet wraps the verbatim object substring into the injectable
// snippet that assigns it to the host runtime's tailwind.config global.
// The snippet's shape is the contract with the downstream HTML
// generator; this loader never inspects it further.
func wrapSnippet(object string) string {
	var b strings.Builder
	b.WriteString("<script>\n  tailwind.config = ")
	b.WriteString(object)
	b.WriteString(";\n</script>")
	return b.String()
}

func joinPath(root, name string) string {
	if root == "" || root == "/" {
		return "/" + name
	}
	return strings.TrimSuffix(root, "/") + "/" + name
}
