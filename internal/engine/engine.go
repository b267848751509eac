// Package engine resolves design-token references across a set of token
// documents and formats tokens as CSS custom properties.
//
// The engine sees the whole document corpus at once so that {dot.path}
// references anywhere can resolve against definitions anywhere, while each
// Build call emits only the tokens admitted by its target's path filter.
// Output is reference-preserving: a token whose value references another
// token renders as var(--target-name), never as the resolved literal.
package engine

import (
	"fmt"
	"strings"
)

// Target configures one Build invocation: the CSS rule selector, the
// per-token path filter deciding which corpus tokens are emitted, and the
// transform turning path segments into a CSS property name. Transform is
// passed explicitly per call; the engine keeps no registry.
type Target struct {
	Selector  string
	Filter    func(path string) bool
	Transform func(segments []string) string
}

// Build merges docs into one corpus (later documents shadow earlier ones on
// path collision), validates the reference graph reachable from the
// filtered tokens, and returns one CSS rule block for the target.
func Build(docs []*Document, target Target) (string, error) {
	c := newCorpus(docs)

	var b strings.Builder
	b.WriteString(target.Selector)
	b.WriteString(" {\n")

	for _, path := range c.order {
		if !target.Filter(path) {
			continue
		}

		tok := c.tokens[path]

		// Resolving validates the full chain: undefined targets and
		// cycles fail the build even though output keeps references.
		if _, err := c.resolve(path, make(map[string]bool)); err != nil {
			return "", err
		}

		fmt.Fprintf(&b, "  --%s: %s;\n", target.Transform(tok.segments), c.render(tok.leaf.Value, target.Transform))
	}

	b.WriteString("}\n")

	text := b.String()
	if err := verifyCSS(text); err != nil {
		return "", err
	}

	return text, nil
}

// render formats a token value for emission. References become var()
// calls against the referenced token's transformed name; everything else
// is emitted literally.
func (c *corpus) render(value any, transform func([]string) string) string {
	s, ok := value.(string)
	if !ok {
		return fmt.Sprint(value)
	}

	return referencePattern.ReplaceAllStringFunc(s, func(match string) string {
		path := strings.TrimSpace(match[1 : len(match)-1])
		target, ok := c.tokens[path]
		if !ok {
			// resolve has already rejected this path; keep the raw
			// reference so the failure is visible if it ever slips through.
			return match
		}
		return "var(--" + transform(target.segments) + ")"
	})
}
