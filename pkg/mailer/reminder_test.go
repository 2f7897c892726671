package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderSubject(t *testing.T) {
	assert.Equal(t, "Todo Reminder: Buy milk", ReminderSubject("Buy milk"))
}

func TestRenderReminderHTML(t *testing.T) {
	t.Run("high priority", func(t *testing.T) {
		html, err := RenderReminderHTML("Buy milk", "high", "2026-09-02")
		require.NoError(t, err)
		assert.Contains(t, html, "Buy milk")
		assert.Contains(t, html, "HIGH")
		assert.Contains(t, html, "#dc2626")
		assert.Contains(t, html, "9/2/2026")
	})

	t.Run("medium and low colors", func(t *testing.T) {
		html, err := RenderReminderHTML("t", "medium", "")
		require.NoError(t, err)
		assert.Contains(t, html, "#f59e0b")

		html, err = RenderReminderHTML("t", "low", "")
		require.NoError(t, err)
		assert.Contains(t, html, "#10b981")
	})

	t.Run("omits due date block when empty", func(t *testing.T) {
		html, err := RenderReminderHTML("t", "low", "")
		require.NoError(t, err)
		assert.NotContains(t, html, "<strong>Due:</strong>")
	})

	t.Run("unparseable due date passes through", func(t *testing.T) {
		html, err := RenderReminderHTML("t", "low", "next week")
		require.NoError(t, err)
		assert.Contains(t, html, "next week")
	})
}
