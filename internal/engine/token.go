package engine

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Node is one node of a token document tree: either a Group of named
// children or a Leaf carrying a value.
type Node interface {
	isNode()
}

// Group maps segment names to child nodes.
type Group map[string]Node

// Leaf is a single design token. A raw object becomes a Leaf when it
// carries a "$value" key; "$type" is optional and informational.
type Leaf struct {
	Value any
	Type  string
}

func (Group) isNode() {}
func (Leaf) isNode()  {}

// Document is one parsed token file. Name is the path used in error
// messages and the run summary, typically relative to the archive root.
type Document struct {
	Name string
	Root Group
}

// ParseDocument decodes raw JSON into a typed Group/Leaf tree.
// Shape detection happens once here; callers never re-inspect raw maps.
func ParseDocument(name string, data []byte) (*Document, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	return &Document{Name: name, Root: buildGroup(raw)}, nil
}

// buildGroup converts one raw object level. An object with "$value" is a
// token and is not descended into; other objects become nested groups.
// Arrays and bare primitives are not token nodes and are dropped.
func buildGroup(raw map[string]any) Group {
	group := make(Group, len(raw))

	for name, child := range raw {
		obj, ok := child.(map[string]any)
		if !ok {
			continue
		}

		if value, isToken := obj["$value"]; isToken {
			leaf := Leaf{Value: value}
			if typ, ok := obj["$type"].(string); ok {
				leaf.Type = typ
			}
			group[name] = leaf
			continue
		}

		group[name] = buildGroup(obj)
	}

	return group
}

// Count returns the number of token leaves in the tree.
func (g Group) Count() int {
	count := 0
	for _, node := range g {
		switch n := node.(type) {
		case Leaf:
			count++
		case Group:
			count += n.Count()
		}
	}
	return count
}

// Paths returns the set of dot-joined paths of every token in the tree,
// e.g. "color.primary". Paths are unique within one document.
func (g Group) Paths() map[string]struct{} {
	paths := make(map[string]struct{})
	g.walk(nil, func(segments []string, _ Leaf) {
		paths[strings.Join(segments, ".")] = struct{}{}
	})
	return paths
}

// walk visits every token leaf depth-first, passing the path segments
// from the root. Segment order is sorted for deterministic traversal.
func (g Group) walk(prefix []string, visit func(segments []string, leaf Leaf)) {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		segments := append(append([]string(nil), prefix...), name)
		switch n := g[name].(type) {
		case Leaf:
			visit(segments, n)
		case Group:
			n.walk(segments, visit)
		}
	}
}

// ValidateFormat rejects documents using the legacy "value" key instead of
// "$value". The resolver would accept the legacy shape but emit garbage for
// it, so the mismatch is surfaced here with the file name attached.
// Validation runs on the raw JSON because the typed tree has already
// dropped non-token objects.
func ValidateFormat(name string, data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}

	if path := findLegacyToken(raw, nil); path != "" {
		return fmt.Errorf("%s: token %q uses the legacy \"value\" key; use \"$value\" and \"$type\" (design tokens community group format)", name, path)
	}

	return nil
}

// findLegacyToken returns the dot-joined path of the first object that has
// a "value" key without "$value", or "" when the document is clean.
func findLegacyToken(raw map[string]any, prefix []string) string {
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		obj, ok := raw[name].(map[string]any)
		if !ok {
			continue
		}

		segments := append(append([]string(nil), prefix...), name)

		_, hasLegacy := obj["value"]
		_, hasDollar := obj["$value"]
		if hasLegacy && !hasDollar {
			return strings.Join(segments, ".")
		}
		if hasDollar {
			continue
		}

		if path := findLegacyToken(obj, segments); path != "" {
			return path
		}
	}

	return ""
}
