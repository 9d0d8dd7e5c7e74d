// Package terminal parses and executes the commands a visitor types into
// the terminal.
package terminal

import "strings"

// Command is one parsed input line.
type Command struct {
	// Name is the first token with its case preserved; dispatch ignores case.
	Name string
	// Args are the remaining tokens verbatim.
	Args []string
}

// Line reassembles the command as a single space-separated line.
func (c Command) Line() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Parse splits line on runs of whitespace. There is no quoting, so an
// argument cannot contain spaces.
func Parse(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Args: []string{}}
	}
	return Command{Name: fields[0], Args: fields[1:]}
}
