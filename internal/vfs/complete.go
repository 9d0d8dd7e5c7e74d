package vfs

import (
	"strings"
	"unicode/utf8"

	"github.com/gobwas/glob"
)

// Complete returns the completions of partial, a path argument being typed
// while the session sits in current. Each completion is partial's directory
// part followed by a matching child name; directories end in "/".
func (t *Tree) Complete(current, partial string) []string {
	dirPart, base := "", partial
	if i := strings.LastIndex(partial, "/"); i >= 0 {
		dirPart, base = partial[:i+1], partial[i+1:]
	}

	dirPath := current
	switch {
	case strings.HasPrefix(dirPart, "/"):
		dirPath = dirPart
	case dirPart != "":
		dirPath = ResolvePath(current, strings.TrimSuffix(dirPart, "/"))
	}

	dir, ok := t.Lookup(dirPath)
	if !ok || !dir.IsDir() {
		return nil
	}

	pattern, err := glob.Compile(glob.QuoteMeta(base) + "*")
	if err != nil {
		return nil
	}

	var matches []string
	for _, child := range dir.Children() {
		if pattern.Match(child.Name) {
			matches = append(matches, dirPart+child.DisplayName())
		}
	}
	return matches
}

// CommonPrefix returns the longest prefix shared by every candidate.
func CommonPrefix(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	prefix := candidates[0]
	for _, c := range candidates[1:] {
		for !strings.HasPrefix(c, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	for !utf8.ValidString(prefix) {
		prefix = prefix[:len(prefix)-1]
	}
	return prefix
}
