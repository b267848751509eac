package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// referencePattern matches {dot.separated.path} token references inside
// string values.
var referencePattern = regexp.MustCompile(`\{([^{}]+)\}`)

// entry is one token in the merged corpus, keyed by its dot-joined path.
type entry struct {
	segments []string
	leaf     Leaf
	source   string // document name, for error messages
}

// corpus is the merged token universe of a run. Documents are merged in
// list order; a later document shadows an earlier one on path collision.
type corpus struct {
	tokens map[string]entry
	order  []string // sorted paths, fixed at build time
}

func newCorpus(docs []*Document) *corpus {
	c := &corpus{tokens: make(map[string]entry)}

	for _, doc := range docs {
		doc.Root.walk(nil, func(segments []string, leaf Leaf) {
			path := strings.Join(segments, ".")
			c.tokens[path] = entry{segments: segments, leaf: leaf, source: doc.Name}
		})
	}

	for path := range c.tokens {
		c.order = append(c.order, path)
	}
	sort.Strings(c.order)

	return c
}

// resolve fully resolves one token's value to its literal form, following
// reference chains. Unknown paths and reference cycles are errors. The
// resolved value is only used to validate the graph; emission stays
// reference-preserving.
func (c *corpus) resolve(path string, visiting map[string]bool) (string, error) {
	if visiting[path] {
		return "", fmt.Errorf("reference cycle involving token %q", path)
	}

	tok, ok := c.tokens[path]
	if !ok {
		return "", fmt.Errorf("reference to undefined token %q", path)
	}

	s, ok := tok.leaf.Value.(string)
	if !ok {
		return fmt.Sprint(tok.leaf.Value), nil
	}

	visiting[path] = true
	defer delete(visiting, path)

	var resolveErr error
	resolved := referencePattern.ReplaceAllStringFunc(s, func(match string) string {
		target := strings.TrimSpace(match[1 : len(match)-1])
		value, err := c.resolve(target, visiting)
		if err != nil && resolveErr == nil {
			resolveErr = fmt.Errorf("%s: %w", tok.source, err)
		}
		return value
	})
	if resolveErr != nil {
		return "", resolveErr
	}

	return resolved, nil
}
