package vfs

import "strings"

const (
	branch     = "├── "
	lastBranch = "└── "
	pipeIndent = "│   "
	gapIndent  = "    "
)

// RenderTree draws node as a tree headed by label. Directories are suffixed
// with "/" and descended into; files are leaves.
func RenderTree(node *Node, label string) string {
	lines := []string{label}
	lines = appendTree(lines, node, "")
	return strings.Join(lines, "\n")
}

func appendTree(lines []string, node *Node, prefix string) []string {
	if !node.IsDir() {
		return lines
	}

	children := node.Children()
	for i, child := range children {
		last := i == len(children)-1
		marker, indent := branch, pipeIndent
		if last {
			marker, indent = lastBranch, gapIndent
		}

		lines = append(lines, prefix+marker+child.DisplayName())
		if child.IsDir() {
			lines = appendTree(lines, child, prefix+indent)
		}
	}
	return lines
}
