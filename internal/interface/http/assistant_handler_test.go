package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yudhapratama/portfolio-api/internal/application"
)

type fakeGenerator struct {
	system string
	prompt string
	out    string
	err    error
}

func (f *fakeGenerator) Generate(_ context.Context, system, prompt string) (string, error) {
	f.system = system
	f.prompt = prompt
	return f.out, f.err
}

type fakeSender struct {
	to      string
	subject string
	html    string
	err     error
}

func (f *fakeSender) Send(_ context.Context, to, subject, _, html string) error {
	f.to = to
	f.subject = subject
	f.html = html
	return f.err
}

func newAssistantRouter(gen *fakeGenerator, snd *fakeSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAssistantHandler(&application.AssistantService{Generator: gen, Mailer: snd}, nil)
	r := gin.New()
	r.OPTIONS("/ai-todo", h.Preflight)
	r.POST("/ai-todo", h.Handle)
	return r
}

func postAITodo(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ai-todo", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAssistantInvalidAction(t *testing.T) {
	r := newAssistantRouter(&fakeGenerator{}, &fakeSender{})

	w := postAITodo(t, r, `{"action":"bogus"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid action"}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAssistantGenerate(t *testing.T) {
	t.Run("returns raw completion text", func(t *testing.T) {
		gen := &fakeGenerator{out: "1. Buy milk\n2. Walk the dog"}
		r := newAssistantRouter(gen, &fakeSender{})

		w := postAITodo(t, r, `{"action":"generate","todoDescription":"plan my morning"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, gen.out, resp["suggestions"])
		assert.Equal(t, "plan my morning", gen.prompt)
		assert.Contains(t, gen.system, "actionable todo items")
	})

	t.Run("upstream failure maps to 500", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("gateway timeout")}
		r := newAssistantRouter(gen, &fakeSender{})

		w := postAITodo(t, r, `{"action":"generate","todoDescription":"x"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"gateway timeout"}`, w.Body.String())
	})
}

func TestAssistantNotify(t *testing.T) {
	t.Run("sends reminder email", func(t *testing.T) {
		snd := &fakeSender{}
		r := newAssistantRouter(&fakeGenerator{}, snd)

		w := postAITodo(t, r, `{"action":"notify","userEmail":"a@b.com","title":"Buy milk","priority":"high"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
		assert.Equal(t, "a@b.com", snd.to)
		assert.Equal(t, "Todo Reminder: Buy milk", snd.subject)
		assert.Contains(t, snd.html, "Buy milk")
		assert.Contains(t, snd.html, "HIGH")
	})

	t.Run("send failure maps to 500", func(t *testing.T) {
		snd := &fakeSender{err: errors.New("mailgun down")}
		r := newAssistantRouter(&fakeGenerator{}, snd)

		w := postAITodo(t, r, `{"action":"notify","userEmail":"a@b.com","title":"Buy milk","priority":"high"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"mailgun down"}`, w.Body.String())
	})
}

func TestAssistantMalformedBody(t *testing.T) {
	r := newAssistantRouter(&fakeGenerator{}, &fakeSender{})

	w := postAITodo(t, r, `{not json`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestAssistantPreflight(t *testing.T) {
	r := newAssistantRouter(&fakeGenerator{}, &fakeSender{})

	req := httptest.NewRequest(http.MethodOptions, "/ai-todo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "content-type")
}
