package mailer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailgunSendAgainstStub(t *testing.T) {
	var gotTo, gotSubject, gotHTML string

	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotTo = r.FormValue("to")
		gotSubject = r.FormValue("subject")
		gotHTML = r.FormValue("html")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Queued. Thank you.","id":"<123@mg.example.com>"}`))
	}))
	defer stub.Close()

	mg := NewMailgun("mg.example.com", "key-test", "Todo Assistant <todo@example.com>")
	mg.APIBase = stub.URL + "/v3"

	html, err := RenderReminderHTML("Buy milk", "high", "")
	require.NoError(t, err)

	err = mg.Send(context.Background(), "a@b.com", ReminderSubject("Buy milk"), "", html)
	require.NoError(t, err)

	assert.Equal(t, "a@b.com", gotTo)
	assert.Equal(t, "Todo Reminder: Buy milk", gotSubject)
	assert.Contains(t, gotHTML, "Buy milk")
	assert.Contains(t, gotHTML, "HIGH")
}
