package chat

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"paco/internal/observability"
	logx "paco/pkg/logger"
)

// Greeting es el mensaje de bienvenida que el front muestra al abrir el chat.
const Greeting = "¡Hola! Soy Paco, tu asistente para ejecutivos de OraBank. Te ayudo a conocer mejor a tus clientes y a identificar oportunidades de ventas cruzadas. ¿Sobre qué cliente o situación quieres consultar?"

// SuggestedQuestions son los accesos rápidos del front.
var SuggestedQuestions = []string{
	"¿El cliente es apto para un aumento de línea de crédito?",
	"¿Qué oportunidades de venta cruzada ves en este caso?",
	"¿Qué patrones de gasto identificas en este cliente?",
	"¿El cliente ha tenido cambios recientes en su uso de crédito o comportamiento financiero?",
}

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func Handler(assistant *Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "cuerpo inválido"})
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "falta el mensaje"})
			return
		}
		// El front no manda sesión en la primera petición: se acuña aquí y
		// el cliente la repite en las siguientes
		if req.SessionID == "" {
			req.SessionID = uuid.NewString()
		}

		observability.ChatRequests.Inc()

		reply, err := assistant.SendMessage(r.Context(), req.SessionID, req.Message)
		if err != nil {
			logx.Error().Err(err).Str("session", req.SessionID).Msg("falla en el turno de conversación")
			writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: UserMessage(err)})
			return
		}

		writeJSON(w, http.StatusOK, ChatResponse{
			SessionID: req.SessionID,
			Response:  reply,
		})
	}
}

func ClearHandler(assistant *Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "cuerpo inválido"})
			return
		}
		if req.SessionID == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "falta session_id"})
			return
		}

		if err := assistant.ClearHistory(r.Context(), req.SessionID); err != nil {
			logx.Error().Err(err).Str("session", req.SessionID).Msg("no se pudo limpiar el historial")
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: GenericUserMessage})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func GreetingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"greeting": Greeting})
	}
}

func SuggestionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]string{"suggestions": SuggestedQuestions})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
