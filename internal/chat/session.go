package chat

import (
	"context"
	"sync"

	"paco/internal/model"
)

const defaultHistoryCap = 50

// SessionStore guarda el historial de conversación por sesión. El historial
// es una lista ordenada de mensajes user/assistant con tope: al excederlo se
// descartan primero los mensajes más viejos.
type SessionStore interface {
	History(ctx context.Context, sessionID string) ([]model.ChatMessage, error)
	// AppendPair agrega el par usuario+asistente de un turno confirmado.
	// Se agregan juntos para que nunca quede un turno a medias.
	AppendPair(ctx context.Context, sessionID string, user, assistant model.ChatMessage) error
	Clear(ctx context.Context, sessionID string) error
}

// MemoryStore es el almacén por defecto: historial en memoria por sesión,
// sin persistencia. Vive lo que vive el proceso.
type MemoryStore struct {
	mu       sync.RWMutex
	cap      int
	sessions map[string][]model.ChatMessage
}

func NewMemoryStore(historyCap int) *MemoryStore {
	if historyCap <= 0 {
		historyCap = defaultHistoryCap
	}
	return &MemoryStore{
		cap:      historyCap,
		sessions: make(map[string][]model.ChatMessage),
	}
}

func (s *MemoryStore) History(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.sessions[sessionID]
	out := make([]model.ChatMessage, len(history))
	copy(out, history)
	return out, nil
}

func (s *MemoryStore) AppendPair(ctx context.Context, sessionID string, user, assistant model.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.sessions[sessionID], user, assistant)
	if len(history) > s.cap {
		history = history[len(history)-s.cap:]
	}
	s.sessions[sessionID] = history
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

// lastN regresa los últimos n mensajes en orden cronológico.
func lastN(history []model.ChatMessage, n int) []model.ChatMessage {
	if n <= 0 || len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
