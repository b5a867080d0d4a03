package chat

import (
	"context"
	"testing"

	"paco/internal/model"
)

func msg(role, content string) model.ChatMessage {
	return model.ChatMessage{Role: role, Content: content}
}

func TestMemoryStoreAppendAndHistory(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(50)

	if err := s.AppendPair(ctx, "s1", msg(model.RoleUser, "hola"), msg(model.RoleAssistant, "buenos días")); err != nil {
		t.Fatalf("AppendPair: %v", err)
	}

	got, err := s.History(ctx, "s1")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(got) != 2 || got[0].Content != "hola" || got[1].Content != "buenos días" {
		t.Fatalf("historial inesperado: %v", got)
	}
}

func TestMemoryStoreCapEvictsOldestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(2)

	s.AppendPair(ctx, "s1", msg(model.RoleUser, "a"), msg(model.RoleAssistant, "b"))
	s.AppendPair(ctx, "s1", msg(model.RoleUser, "c"), msg(model.RoleAssistant, "d"))

	got, _ := s.History(ctx, "s1")
	if len(got) != 2 {
		t.Fatalf("el historial excede el tope: %d", len(got))
	}
	if got[0].Content != "c" || got[1].Content != "d" {
		t.Fatalf("la expulsión debe ser FIFO, quedó %v", got)
	}
}

func TestMemoryStoreNeverExceedsCap(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(50)

	for i := 0; i < 100; i++ {
		s.AppendPair(ctx, "s1", msg(model.RoleUser, "u"), msg(model.RoleAssistant, "a"))
		got, _ := s.History(ctx, "s1")
		if len(got) > 50 {
			t.Fatalf("historial de %d mensajes tras %d turnos", len(got), i+1)
		}
	}
	got, _ := s.History(ctx, "s1")
	if len(got) != 50 {
		t.Fatalf("esperaba historial lleno a 50, hay %d", len(got))
	}
}

func TestMemoryStoreClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(50)

	s.AppendPair(ctx, "s1", msg(model.RoleUser, "a"), msg(model.RoleAssistant, "b"))
	if err := s.Clear(ctx, "s1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := s.Clear(ctx, "s1"); err != nil {
		t.Fatalf("Clear repetido: %v", err)
	}

	got, _ := s.History(ctx, "s1")
	if len(got) != 0 {
		t.Fatalf("el historial debía quedar vacío, hay %d", len(got))
	}
}

func TestMemoryStoreSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(50)

	s.AppendPair(ctx, "s1", msg(model.RoleUser, "a"), msg(model.RoleAssistant, "b"))
	s.AppendPair(ctx, "s2", msg(model.RoleUser, "x"), msg(model.RoleAssistant, "y"))
	s.Clear(ctx, "s2")

	got, _ := s.History(ctx, "s1")
	if len(got) != 2 {
		t.Fatalf("limpiar s2 no debe tocar s1, quedó %v", got)
	}
}

func TestMemoryStoreHistoryReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(50)

	s.AppendPair(ctx, "s1", msg(model.RoleUser, "a"), msg(model.RoleAssistant, "b"))
	got, _ := s.History(ctx, "s1")
	got[0].Content = "mutado"

	again, _ := s.History(ctx, "s1")
	if again[0].Content != "a" {
		t.Fatal("History debe regresar una copia, no el slice interno")
	}
}

func TestLastN(t *testing.T) {
	history := []model.ChatMessage{
		msg(model.RoleUser, "1"),
		msg(model.RoleAssistant, "2"),
		msg(model.RoleUser, "3"),
		msg(model.RoleAssistant, "4"),
	}

	got := lastN(history, 2)
	if len(got) != 2 || got[0].Content != "3" || got[1].Content != "4" {
		t.Fatalf("lastN(2) = %v", got)
	}
	if got := lastN(history, 10); len(got) != 4 {
		t.Fatalf("lastN mayor que el historial debe regresarlo completo, dio %d", len(got))
	}
	if got := lastN(nil, 10); len(got) != 0 {
		t.Fatalf("lastN de historial vacío debe ser vacío, dio %d", len(got))
	}
}
