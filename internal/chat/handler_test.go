package chat

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestChatHandlerMintsSessionID(t *testing.T) {
	a, _ := newTestAssistant(&fakeCompleter{reply: "hola ejecutivo"})
	h := Handler(a)

	rec := postJSON(t, h, `{"message":"quiero info de CETES"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}

	var resp ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta inválida: %v", err)
	}
	if resp.SessionID == "" {
		t.Error("el handler debe acuñar session_id cuando falta")
	}
	if resp.Response != "hola ejecutivo" {
		t.Errorf("respuesta inesperada: %q", resp.Response)
	}
}

func TestChatHandlerReusesSessionID(t *testing.T) {
	a, store := newTestAssistant(&fakeCompleter{reply: "ok"})
	h := Handler(a)

	postJSON(t, h, `{"session_id":"abc","message":"hola"}`)
	postJSON(t, h, `{"session_id":"abc","message":"otra"}`)

	history, _ := store.History(t.Context(), "abc")
	if len(history) != 4 {
		t.Fatalf("esperaba 2 pares en la sesión abc, hay %d mensajes", len(history))
	}
}

func TestChatHandlerCompletionFailure(t *testing.T) {
	completer := &fakeCompleter{err: &CompletionError{Err: errors.New("red caída"), Message: GenericUserMessage}}
	a, store := newTestAssistant(completer)
	h := Handler(a)

	rec := postJSON(t, h, `{"session_id":"abc","message":"hola"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status %d", rec.Code)
	}

	var resp ErrorResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error != GenericUserMessage {
		t.Errorf("el error al usuario debe ser el mensaje seguro, fue %q", resp.Error)
	}
	if strings.Contains(rec.Body.String(), "red caída") {
		t.Error("el detalle interno no debe llegar al usuario")
	}

	history, _ := store.History(t.Context(), "abc")
	if len(history) != 0 {
		t.Fatalf("una petición fallida no debe dejar historial, hay %d mensajes", len(history))
	}
}

func TestChatHandlerRejectsEmptyMessage(t *testing.T) {
	a, _ := newTestAssistant(&fakeCompleter{reply: "ok"})

	rec := postJSON(t, Handler(a), `{"message":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestChatHandlerMethodNotAllowed(t *testing.T) {
	a, _ := newTestAssistant(&fakeCompleter{reply: "ok"})

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	rec := httptest.NewRecorder()
	Handler(a)(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestClearHandler(t *testing.T) {
	a, store := newTestAssistant(&fakeCompleter{reply: "ok"})

	postJSON(t, Handler(a), `{"session_id":"abc","message":"hola"}`)
	rec := postJSON(t, ClearHandler(a), `{"session_id":"abc"}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status %d", rec.Code)
	}

	history, _ := store.History(t.Context(), "abc")
	if len(history) != 0 {
		t.Fatalf("el historial debía quedar vacío, hay %d mensajes", len(history))
	}
}

func TestClearHandlerRequiresSessionID(t *testing.T) {
	a, _ := newTestAssistant(&fakeCompleter{reply: "ok"})

	rec := postJSON(t, ClearHandler(a), `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestGreetingAndSuggestions(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/greeting", nil)
	rec := httptest.NewRecorder()
	GreetingHandler()(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Soy Paco") {
		t.Fatalf("greeting inesperado: %d %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/suggestions", nil)
	rec = httptest.NewRecorder()
	SuggestionsHandler()(rec, req)

	var resp map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta inválida: %v", err)
	}
	if len(resp["suggestions"]) != 4 {
		t.Fatalf("esperaba 4 preguntas sugeridas, hay %d", len(resp["suggestions"]))
	}
}
