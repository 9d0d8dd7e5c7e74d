package testutils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"swmterm/internal/content"
	"swmterm/internal/vfs"

	"github.com/stretchr/testify/require"
)

// IndexDate is the generation date stamped on indexes written by WriteIndex.
var IndexDate = time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC)

// SampleTree is a small tree with one top-level file and one project.
func SampleTree() *vfs.Tree {
	return vfs.NewTree(
		vfs.NewFile("about.md", "About me"),
		vfs.NewDir("projects",
			vfs.NewFile("jotter.md", "Bookmark manager"),
		),
	)
}

// SampleCorpus holds a single searchable entry about rails.
func SampleCorpus() []content.Entry {
	return []content.Entry{{
		Title:    "Rails at scale",
		Category: "writing",
		Body:     "rails all day",
		Tags:     []string{"rails"},
	}}
}

// WriteIndex builds a content index from tree and corpus and writes it to a
// temporary terminal-index.json, returning its path.
func WriteIndex(t *testing.T, tree *vfs.Tree, corpus []content.Entry) string {
	t.Helper()
	data, err := content.BuildIndex(tree, corpus, IndexDate)
	require.NoError(t, err)
	return WriteFile(t, t.TempDir(), "terminal-index.json", string(data))
}

// WriteFile writes body to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
