// Package nextconfig recovers statically-resolvable string values from a
// Next.js config source file without ever executing it.
package nextconfig

import (
	"regexp"
	"strings"

	"github.com/nextdev-go/nextvfs/pkg/jslite"
)

var declRe = regexp.MustCompile(`(?m)(?:^|;)[ \t]*(?:export\s+)?(?:const|let|var)\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*=\s*`)

const maxIdentifierHops = 8

// ParseNextConfigValue implements §4.2 parse_next_config_value: recover
// the string value of key from the default-exported config object in
// source. isTyped gates the TypeScript-stripping preprocessing stage.
func ParseNextConfigValue(source, key string, isTyped bool) (string, bool) {
	src := source
	if isTyped {
		src = jslite.StripTypeScript(src)
	}

	if value, found, malformed := astWalk(src, key); !malformed {
		return value, found
	}

	return regexFallback(src, key)
}

// astWalk is Stage 2: build a map of top-level variable bindings, locate
// the exported object, and resolve key's value through it. malformed is
// true only when the exported expression itself could not be parsed
// (e.g. unbalanced brackets) — the one case that falls through to the
// regex fallback; a cleanly-parsed object missing the key, or whose value
// isn't a statically resolvable string, returns found=false without
// falling back, per §7's error taxonomy.
func astWalk(src, key string) (value string, found bool, malformed bool) {
	vars := collectTopLevelBindings(src)

	exprStart := -1
	if idx := jslite.FindOutsideStrings(src, "export default"); idx != -1 {
		exprStart = idx + len("export default")
	} else if idx := jslite.FindOutsideStrings(src, "module.exports"); idx != -1 {
		rest := src[idx+len("module.exports"):]
		trimmed := strings.TrimLeft(rest, " \t")
		if strings.HasPrefix(trimmed, "=") {
			exprStart = idx + len("module.exports") + (len(rest) - len(trimmed)) + 1
		}
	}

	if exprStart == -1 {
		return "", false, false
	}

	expr, _ := scanExpression(src, exprStart)

	props, ok, bad := resolveToObject(expr, vars, 0)
	if bad {
		return "", false, true
	}
	if !ok {
		return "", false, false
	}

	raw, present := props[key]
	if !present {
		return "", false, false
	}

	value, ok = resolveToString(raw, vars, 0)
	return value, ok, false
}

func collectTopLevelBindings(src string) map[string]string {
	vars := map[string]string{}
	matches := declRe.FindAllStringSubmatchIndex(src, -1)
	for _, m := range matches {
		name := src[m[2]:m[3]]
		exprStart := m[1]
		expr, _ := scanExpression(src, exprStart)
		vars[name] = expr
	}
	return vars
}

// scanExpression captures the right-hand side of a binding or export
// statement: either a bracketed literal (object/array/call), ending at
// its matching close, or a bare expression ending at a top-level ';',
// newline, or end of input.
func scanExpression(s string, start int) (expr string, end int) {
	depth := 0
	sawOpen := false
	var inString byte
	escaped := false

	i := start
	for ; i < len(s); i++ {
		c := s[i]
		if inString != 0 {
			if escaped {
				escaped = false
				continue
			}
			if c == '\\' {
				escaped = true
				continue
			}
			if c == inString {
				inString = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			inString = c
			continue
		case '(', '{', '[':
			depth++
			sawOpen = true
			continue
		case ')', '}', ']':
			depth--
			if depth == 0 && sawOpen {
				i++
				return strings.TrimSpace(s[start:i]), i
			}
			continue
		case ';':
			if depth == 0 {
				return strings.TrimSpace(s[start:i]), i + 1
			}
		case '\n':
			if depth == 0 && !sawOpen {
				return strings.TrimSpace(s[start:i]), i
			}
		}
	}
	return strings.TrimSpace(s[start:]), len(s)
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
var callHeadRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$.]*\s*\(`)

// resolveToObject implements resolve_to_object: object literal -> itself;
// identifier -> recurse on its initializer; call expression -> recurse on
// its first argument; anything else -> not an object (ok=false). bad is
// set only when the expression is itself unparseable (unbalanced
// brackets), the one condition that should trigger the regex fallback.
func resolveToObject(expr string, vars map[string]string, hops int) (props map[string]string, ok bool, bad bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, false, false
	}

	if expr[0] == '{' {
		close := jslite.MatchBalanced(expr, 0, '{', '}')
		if close == -1 {
			return nil, false, true
		}
		if close != len(expr)-1 {
			// Trailing content after the object literal: treat the
			// object as still resolvable, ignoring what follows.
			expr = expr[:close+1]
		}
		return parseObjectProperties(expr[1 : len(expr)-1]), true, false
	}

	if identifierRe.MatchString(expr) {
		if hops >= maxIdentifierHops {
			return nil, false, false
		}
		init, known := vars[expr]
		if !known {
			return nil, false, false
		}
		return resolveToObject(init, vars, hops+1)
	}

	if loc := callHeadRe.FindStringIndex(expr); loc != nil {
		openIdx := strings.IndexByte(expr, '(')
		closeIdx := jslite.MatchBalanced(expr, openIdx, '(', ')')
		if closeIdx == -1 {
			return nil, false, true
		}
		args := jslite.SplitTopLevel(expr[openIdx+1:closeIdx], ',')
		if len(args) == 0 {
			return nil, false, false
		}
		return resolveToObject(args[0], vars, hops+1)
	}

	return nil, false, false
}

func parseObjectProperties(inner string) map[string]string {
	props := map[string]string{}
	for _, raw := range jslite.SplitTopLevel(inner, ',') {
		key, value, ok := parseProperty(raw)
		if ok {
			props[key] = value
		}
	}
	return props
}

func parseProperty(raw string) (key, value string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", false
	}

	colon := -1
	depth := 0
	var inString byte
	escaped := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if inString != 0 {
			if escaped {
				escaped = false
				continue
			}
			if c == '\\' {
				escaped = true
				continue
			}
			if c == inString {
				inString = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			inString = c
		case '{', '(', '[':
			depth++
		case '}', ')', ']':
			depth--
		case ':':
			if depth == 0 {
				colon = i
			}
		}
		if colon != -1 {
			break
		}
	}

	if colon == -1 {
		// Shorthand property: { assetPrefix } means value is the
		// identifier assetPrefix itself.
		name := strings.TrimSpace(raw)
		if identifierRe.MatchString(name) {
			return name, name, true
		}
		return "", "", false
	}

	key = unquoteKey(strings.TrimSpace(raw[:colon]))
	value = strings.TrimSpace(raw[colon+1:])
	return key, value, true
}

func unquoteKey(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// resolveToString implements resolve_to_string: string literal -> its
// value; zero-interpolation template literal -> its content between the
// backticks; identifier -> recurse; anything else -> unresolvable. Only
// the \", \' and \\ escapes are decoded in string literals; other escape
// sequences, and every escape in a template literal, are kept as written.
func resolveToString(expr string, vars map[string]string, hops int) (string, bool) {
	v := strings.TrimSpace(expr)
	if v == "" {
		return "", false
	}

	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return unescapeString(v[1 : len(v)-1]), true
	}

	if len(v) >= 2 && v[0] == '`' && v[len(v)-1] == '`' {
		inner := v[1 : len(v)-1]
		if strings.Contains(inner, "${") {
			return "", false
		}
		return inner, true
	}

	if identifierRe.MatchString(v) {
		if hops >= maxIdentifierHops {
			return "", false
		}
		init, known := vars[v]
		if !known {
			return "", false
		}
		return resolveToString(init, vars, hops+1)
	}

	return "", false
}

func unescapeString(s string) string {
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\'`, `'`)
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}

// regexFallback is Stage 3: scan for `<key>\s*:\s*["'`]([^"'`]+)["'`]` and
// return the first capture, or none.
func regexFallback(src, key string) (string, bool) {
	re := regexp.MustCompile(regexp.QuoteMeta(key) + `\s*:\s*["'` + "`" + `]([^"'` + "`" + `]+)["'` + "`" + `]`)
	m := re.FindStringSubmatch(src)
	if m == nil {
		return "", false
	}
	return m[1], true
}
