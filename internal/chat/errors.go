package chat

import (
	"errors"
	"fmt"
)

// GenericUserMessage es la respuesta segura que ve el usuario cuando el
// servicio de completions falla; el detalle real se queda en los logs.
const GenericUserMessage = "Lo siento, hubo un error al procesar tu mensaje. Por favor, intenta de nuevo."

// CompletionError envuelve una falla de la llamada al servicio de
// completions (red, autenticación, respuesta malformada) con un mensaje
// presentable al usuario.
type CompletionError struct {
	Err     error
	Message string
}

func (e *CompletionError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

// UserMessage extrae el mensaje seguro de un error del pipeline.
func UserMessage(err error) string {
	var ce *CompletionError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return GenericUserMessage
}
