package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/assert"
)

func TestDrawBox(t *testing.T) {
	box := DrawBox("ab\nlonger", "")
	lines := strings.Split(box, "\n")
	assert.Equal(t, 4, len(lines))
	assert.Equal(t, "┌────────┐", lines[0])
	assert.Equal(t, "│ ab     │", lines[1])
	assert.Equal(t, "│ longer │", lines[2])
	assert.Equal(t, "└────────┘", lines[3])
}

func TestPrintHelpersRespectTheme(t *testing.T) {
	defer func() { CurrentTheme = DefaultTheme }()

	var buf bytes.Buffer
	CurrentTheme = PlainTheme
	PrintSuccess(&buf, "loaded")
	PrintHeader(&buf, "Stats")
	assert.Equal(t, "✓ loaded\n\nStats\n─────\n", buf.String())

	buf.Reset()
	CurrentTheme = DefaultTheme
	PrintError(&buf, "failed")
	assert.True(t, strings.HasPrefix(buf.String(), colorRed))
}

func TestDrawLogo(t *testing.T) {
	CurrentTheme = PlainTheme
	defer func() { CurrentTheme = DefaultTheme }()
	assert.True(t, strings.Contains(DrawLogo(), "███████╗██╗"))
}
