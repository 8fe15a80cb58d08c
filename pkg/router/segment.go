package router

import "regexp"

// SegmentType classifies a single directory name under a routing root.
type SegmentType int

const (
	SegmentStatic SegmentType = iota
	SegmentGroup
	SegmentDynamic
	SegmentCatchAll
	SegmentOptionalCatchAll
)

// Segment is a classified directory name: Raw is the literal folder name,
// Name is the bound identifier (empty for SegmentStatic), Type says how it
// participates in matching.
type Segment struct {
	Raw  string
	Name string
	Type SegmentType
}

// Next.js-style bracket/paren patterns, tried first.
var (
	optionalCatchAllRe = regexp.MustCompile(`^\[\[\.\.\.([a-zA-Z_][a-zA-Z0-9_]*)\]\]$`)
	catchAllRe         = regexp.MustCompile(`^\[\.\.\.([a-zA-Z_][a-zA-Z0-9_]*)\]$`)
	dynamicRe          = regexp.MustCompile(`^\[([a-zA-Z_][a-zA-Z0-9_]*)\]$`)
	groupRe            = regexp.MustCompile(`^\(([a-zA-Z_][a-zA-Z0-9_.-]*)\)$`)
)

// Legacy underscore convention, tried only when no bracket-style pattern
// matches. See SPEC_FULL.md §5 for why this secondary pass exists.
var (
	legacyOptionalCatchAllRe = regexp.MustCompile(`^___([a-zA-Z][a-zA-Z0-9]*)$`)
	legacyCatchAllRe         = regexp.MustCompile(`^__([a-zA-Z][a-zA-Z0-9]*)$`)
	legacyDynamicRe          = regexp.MustCompile(`^_([a-zA-Z][a-zA-Z0-9]*)$`)
	legacyGroupRe            = regexp.MustCompile(`^_group_([a-zA-Z][a-zA-Z0-9_]*)$`)
	legacyTrailingGroupRe    = regexp.MustCompile(`^_([a-zA-Z][a-zA-Z0-9]*)_$`)
)

var knownPrivateFolders = map[string]bool{
	"_components":  true,
	"_lib":         true,
	"_utils":       true,
	"_helpers":     true,
	"_private":     true,
	"_shared":      true,
	"node_modules": true,
	".git":         true,
}

// ParseSegment classifies a directory name, per spec.md §3's segment
// taxonomy. Bracket/paren syntax is authoritative; the legacy underscore
// convention is consulted only when the bracket patterns find nothing, so
// it never competes with bracket syntax for the same directory.
func ParseSegment(name string) Segment {
	switch {
	case optionalCatchAllRe.MatchString(name):
		return Segment{Raw: name, Name: optionalCatchAllRe.FindStringSubmatch(name)[1], Type: SegmentOptionalCatchAll}
	case catchAllRe.MatchString(name):
		return Segment{Raw: name, Name: catchAllRe.FindStringSubmatch(name)[1], Type: SegmentCatchAll}
	case dynamicRe.MatchString(name):
		return Segment{Raw: name, Name: dynamicRe.FindStringSubmatch(name)[1], Type: SegmentDynamic}
	case groupRe.MatchString(name):
		return Segment{Raw: name, Name: groupRe.FindStringSubmatch(name)[1], Type: SegmentGroup}
	}

	if knownPrivateFolders[name] {
		return Segment{Raw: name, Name: name, Type: SegmentStatic}
	}

	switch {
	case legacyOptionalCatchAllRe.MatchString(name):
		return Segment{Raw: name, Name: legacyOptionalCatchAllRe.FindStringSubmatch(name)[1], Type: SegmentOptionalCatchAll}
	case legacyCatchAllRe.MatchString(name):
		return Segment{Raw: name, Name: legacyCatchAllRe.FindStringSubmatch(name)[1], Type: SegmentCatchAll}
	case legacyGroupRe.MatchString(name):
		return Segment{Raw: name, Name: legacyGroupRe.FindStringSubmatch(name)[1], Type: SegmentGroup}
	case legacyTrailingGroupRe.MatchString(name):
		return Segment{Raw: name, Name: legacyTrailingGroupRe.FindStringSubmatch(name)[1], Type: SegmentGroup}
	case legacyDynamicRe.MatchString(name):
		return Segment{Raw: name, Name: legacyDynamicRe.FindStringSubmatch(name)[1], Type: SegmentDynamic}
	}

	return Segment{Raw: name, Name: name, Type: SegmentStatic}
}

// IsRouteGroup reports whether name is a route-group folder, bracket-style
// or legacy.
func IsRouteGroup(name string) bool {
	return ParseSegment(name).Type == SegmentGroup
}

// IsPrivateFolder reports whether a directory should never be descended
// into while searching for route groups or dynamic children (hidden
// directories and known tooling/private folders).
func IsPrivateFolder(name string) bool {
	if len(name) > 0 && name[0] == '.' {
		return true
	}
	return knownPrivateFolders[name]
}
