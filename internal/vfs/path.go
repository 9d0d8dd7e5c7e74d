package vfs

import "strings"

// ResolvePath turns target into an absolute path relative to current.
//
// An absolute target is returned unchanged, "." yields current, ".." drops
// the last segment of current (root stays root), and anything else is
// appended as one final segment. Embedded "." and ".." segments and "~" are
// not interpreted.
func ResolvePath(current, target string) string {
	if strings.HasPrefix(target, "/") {
		return target
	}
	if target == "." {
		return current
	}

	parts := segments(current)
	if target == ".." {
		if len(parts) > 0 {
			parts = parts[:len(parts)-1]
		}
		return "/" + strings.Join(parts, "/")
	}

	parts = append(parts, target)
	return "/" + strings.Join(parts, "/")
}

// Normalize drops empty segments, so "/projects/" and "//projects" both
// become "/projects". The root is "/".
func Normalize(path string) string {
	return "/" + strings.Join(segments(path), "/")
}

// JoinPath appends name to a directory path.
func JoinPath(dir, name string) string {
	if dir == "/" || dir == "" {
		return "/" + name
	}
	return dir + "/" + name
}

// Base returns the last segment of path, or "/" for the root.
func Base(path string) string {
	parts := segments(path)
	if len(parts) == 0 {
		return "/"
	}
	return parts[len(parts)-1]
}

func segments(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
