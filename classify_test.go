package tokenvars

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"core.inp.json", "core.vars.gen.css"},
		{"dark.theme.inp.json", "dark.vars.gen.css"},
		{"light.theme.inp.json", "light.vars.gen.css"},
		{"spacing.scale.inp.json", "spacing.scale.vars.gen.css"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputFileName(tt.base))
		})
	}
}

func TestThemeName(t *testing.T) {
	assert.Equal(t, "dark", ThemeName("dark.theme.inp.json"))
	assert.Equal(t, "high-contrast", ThemeName("high-contrast.theme.inp.json"))
}

func TestIsThemeFile(t *testing.T) {
	assert.True(t, IsThemeFile("dark.theme.inp.json"))
	assert.False(t, IsThemeFile("core.inp.json"))
	assert.False(t, IsThemeFile("primitive.ref.inp.json"))
}

func TestSelector(t *testing.T) {
	assert.Equal(t, ":root", Selector("core.inp.json"))
	assert.Equal(t, "[data-mantine-color-scheme='dark']", Selector("dark.theme.inp.json"))
}

func TestNormalizeSegment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Deep Sage", "deep-sage"},
		{"text-size", "text-size"},
		{"Multi  Space   Run", "multi-space-run"},
		{"0", "0"},
		{"UPPER", "upper"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeSegment(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeSegment(got), "normalization must be idempotent")
		})
	}
}

func TestPropertyName(t *testing.T) {
	assert.Equal(t, "deep-sage-0", PropertyName([]string{"Deep Sage", "0"}))
	assert.Equal(t, "text-size", PropertyName([]string{"text-size"}))
	assert.Equal(t, "a-b-c-d", PropertyName([]string{"A B", "c-D"}))
}

// writeFiles creates the given relative paths (with trivial content) under
// a fresh temp dir and returns it.
func writeFiles(t *testing.T, paths ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, rel := range paths {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("{}"), 0o644))
	}
	return root
}

func TestClassifyBuckets(t *testing.T) {
	root := writeFiles(t,
		"primitive.ref.inp.json",
		"nested/brand.ref.inp.json",
		"dark.theme.inp.json",
		"core.inp.json",
		"deep/spacing.inp.json",
		"notes.txt",
		"tokens.json",
	)

	set, err := Classify(root)
	require.NoError(t, err)

	assert.Len(t, set.Reference, 2)
	assert.Len(t, set.Theme, 1)
	assert.Len(t, set.Output, 2)

	// ref suffix wins over the generic input suffix
	for _, ref := range set.Reference {
		assert.Contains(t, filepath.Base(ref), ".ref.inp.json")
	}

	all := set.All()
	require.Len(t, all, 5)
	assert.Equal(t, set.Reference, all[:2], "reference files lead the source list")
	assert.Equal(t, set.Output, all[3:], "output files trail the source list")
}

func TestClassifyNoTokenFiles(t *testing.T) {
	root := writeFiles(t, "readme.md", "tokens.json")

	_, err := Classify(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoTokenFiles)
}

func TestClassifySkipsArchiveJunk(t *testing.T) {
	root := writeFiles(t,
		"core.inp.json",
		"__MACOSX/core.inp.json",
		"._resource.inp.json",
		".hidden/dark.theme.inp.json",
	)

	set, err := Classify(root)
	require.NoError(t, err)

	assert.Len(t, set.Output, 1)
	assert.Empty(t, set.Theme)
	assert.Equal(t, "core.inp.json", filepath.Base(set.Output[0]))
}

func TestClassifyHonorsTokenIgnore(t *testing.T) {
	root := writeFiles(t,
		"core.inp.json",
		"drafts/wip.inp.json",
	)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".tokenignore"), []byte("drafts/\n"), 0o644))

	set, err := Classify(root)
	require.NoError(t, err)

	require.Len(t, set.Output, 1)
	assert.Equal(t, "core.inp.json", filepath.Base(set.Output[0]))
}

func TestGeneratesOutput(t *testing.T) {
	assert.False(t, (&FileSet{Reference: []string{"a.ref.inp.json"}}).GeneratesOutput())
	assert.True(t, (&FileSet{Theme: []string{"dark.theme.inp.json"}}).GeneratesOutput())
	assert.True(t, (&FileSet{Output: []string{"core.inp.json"}}).GeneratesOutput())
}
