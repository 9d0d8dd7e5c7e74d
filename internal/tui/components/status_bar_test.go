package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusBar(t *testing.T) {
	sb := NewStatusBar(lipgloss.NewStyle())
	assert.Empty(t, sb.View())

	sb.SetText("loading content")
	sb.SetLoading(true)
	assert.True(t, sb.Loading())
	assert.Contains(t, sb.View(), "loading content")
	assert.NotNil(t, sb.Tick())

	sb.SetLoading(false)
	sb.SetText("12 files")
	assert.Equal(t, "12 files", sb.View())
	assert.Nil(t, sb.Update(nil), "a stopped spinner ignores ticks")
}
