package session

import (
	"strings"

	"swmterm/internal/vfs"
)

// Complete expands the last token of input. The first token completes
// against command names, later tokens against paths. It returns the new
// input and, when the completion is ambiguous, the candidates.
func (s *Session) Complete(input string) (string, []string) {
	s.mu.Lock()
	cwd := s.state.CurrentPath
	s.mu.Unlock()

	head, partial := splitLast(input)

	var candidates []string
	if strings.TrimSpace(head) == "" {
		for _, name := range s.exec.Commands() {
			if strings.HasPrefix(name, strings.ToLower(partial)) {
				candidates = append(candidates, name)
			}
		}
		if len(candidates) == 1 {
			return head + candidates[0] + " ", nil
		}
	} else {
		candidates = s.exec.Snapshot().FS.Complete(cwd, partial)
		if len(candidates) == 1 {
			return head + candidates[0], nil
		}
	}

	if len(candidates) == 0 {
		return input, nil
	}
	if prefix := vfs.CommonPrefix(candidates); len(prefix) > len(partial) {
		return head + prefix, candidates
	}
	return input, candidates
}

// splitLast separates the token under the cursor from what precedes it.
func splitLast(input string) (string, string) {
	i := strings.LastIndexAny(input, " \t")
	if i < 0 {
		return "", input
	}
	return input[:i+1], input[i+1:]
}
