package chat

import (
	"context"
	"sync"
	"time"

	"paco/internal/catalog"
	"paco/internal/model"
	"paco/internal/observability"
	logx "paco/pkg/logger"
)

// Assistant orquesta el turno completo de conversación:
// catálogo → filtro de relevancia → prompt de sistema → completion →
// historial. El historial se muta solo después de una completion confirmada,
// así una llamada cancelada o fallida no deja turnos a medias.
type Assistant struct {
	source    catalog.Source
	matcher   Matcher
	composer  *PromptComposer
	store     SessionStore
	completer Completer
	profile   model.ClientProfile
	window    int // mensajes de historial que van en cada petición

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewAssistant(
	source catalog.Source,
	matcher Matcher,
	composer *PromptComposer,
	store SessionStore,
	completer Completer,
	profile model.ClientProfile,
	window int,
) *Assistant {
	if window <= 0 {
		window = 10
	}
	return &Assistant{
		source:    source,
		matcher:   matcher,
		composer:  composer,
		store:     store,
		completer: completer,
		profile:   profile,
		window:    window,
		locks:     make(map[string]*sync.Mutex),
	}
}

// sessionLock regresa el candado de la sesión; las peticiones concurrentes
// de una misma sesión se serializan (a lo más una completion en vuelo por
// sesión) y las de sesiones distintas no se estorban.
func (a *Assistant) sessionLock(sessionID string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()

	lock, ok := a.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		a.locks[sessionID] = lock
	}
	return lock
}

func (a *Assistant) SendMessage(ctx context.Context, sessionID, userText string) (string, error) {
	lock := a.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	productos := a.source.Load(ctx)
	observability.CatalogProducts.Set(float64(len(productos)))

	relevantes := a.matcher.Filter(userText, productos)
	systemPrompt := a.composer.Compose(a.profile, relevantes)

	history, err := a.store.History(ctx, sessionID)
	if err != nil {
		logx.Warn().Err(err).Str("session", sessionID).Msg("no se pudo leer el historial, se continúa sin contexto")
		history = nil
	}

	logx.Debug().
		Str("session", sessionID).
		Int("catalogo", len(productos)).
		Int("relevantes", len(relevantes)).
		Int("historial", len(history)).
		Msg("turno armado")

	start := time.Now()
	reply, err := a.completer.Complete(ctx, systemPrompt, lastN(history, a.window), userText)
	observability.CompletionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		observability.CompletionErrors.Inc()
		return "", err
	}

	err = a.store.AppendPair(ctx, sessionID,
		model.ChatMessage{Role: model.RoleUser, Content: userText},
		model.ChatMessage{Role: model.RoleAssistant, Content: reply},
	)
	if err != nil {
		// La respuesta ya está confirmada; se entrega aunque no se haya
		// podido guardar el turno
		logx.Error().Err(err).Str("session", sessionID).Msg("no se pudo guardar el turno en el historial")
	}

	return reply, nil
}

func (a *Assistant) ClearHistory(ctx context.Context, sessionID string) error {
	lock := a.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	return a.store.Clear(ctx, sessionID)
}
