package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/model"
	"salesdesk/internal/tui/themes"
)

func TestConfirmDeleteDefaultsToNo(t *testing.T) {
	prompt := NewConfirmDelete(model.Transaction{ID: "x1", CustomerName: "Asha Patel"}, themes.Default)

	_, cmd := prompt.Update(keyPress("enter"))
	require.NotNil(t, cmd)

	_, ok := cmd().(DeleteCancelledMsg)
	assert.True(t, ok, "enter on the default selection must cancel")
}

func TestConfirmDeleteYes(t *testing.T) {
	prompt := NewConfirmDelete(model.Transaction{ID: "x1"}, themes.Default)

	prompt, _ = prompt.Update(keyPress("tab"))
	_, cmd := prompt.Update(keyPress("enter"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(DeleteConfirmedMsg)
	require.True(t, ok)
	assert.Equal(t, "x1", msg.ID)
}

func TestConfirmDeleteShortcuts(t *testing.T) {
	prompt := NewConfirmDelete(model.Transaction{ID: "x1"}, themes.Default)

	_, cmd := prompt.Update(keyPress("y"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(DeleteConfirmedMsg)
	require.True(t, ok)
	assert.Equal(t, "x1", msg.ID)

	_, cmd = prompt.Update(keyPress("n"))
	require.NotNil(t, cmd)
	_, ok = cmd().(DeleteCancelledMsg)
	assert.True(t, ok)
}
