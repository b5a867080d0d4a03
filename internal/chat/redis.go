package chat

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"paco/internal/model"
)

const sessionTTL = 30 * time.Minute

// RedisStore guarda el historial como arreglo JSON por sesión, con TTL.
// Se activa cuando hay REDIS_URL configurado; permite repartir el servicio
// en varias instancias sin perder las conversaciones.
type RedisStore struct {
	Client *redis.Client
	Cap    int
}

func (s *RedisStore) key(sessionID string) string {
	return "paco:historial:" + sessionID
}

func (s *RedisStore) History(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	val, err := s.Client.Get(ctx, s.key(sessionID)).Result()
	if err != nil {
		// Sesión nueva o Redis caído: se arranca con historial vacío
		return nil, nil
	}

	var msgs []model.ChatMessage
	if err := json.Unmarshal([]byte(val), &msgs); err != nil {
		return nil, nil
	}
	return msgs, nil
}

func (s *RedisStore) AppendPair(ctx context.Context, sessionID string, user, assistant model.ChatMessage) error {
	history, _ := s.History(ctx, sessionID)
	history = append(history, user, assistant)

	cap := s.Cap
	if cap <= 0 {
		cap = defaultHistoryCap
	}
	if len(history) > cap {
		history = history[len(history)-cap:]
	}

	b, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.key(sessionID), b, sessionTTL).Err()
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, s.key(sessionID)).Err()
}
