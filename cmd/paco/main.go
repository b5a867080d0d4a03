package main

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"

	"paco/internal/catalog"
	"paco/internal/chat"
	"paco/internal/config"
	"paco/internal/db"
	"paco/internal/observability"
	logx "paco/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("configuración inválida")
	}
	logx.Init(cfg.Environment)

	if cfg.OpenAIKey == "" {
		logx.Fatal().Msg("falta OPENAI_API_KEY")
	}

	observability.Start(cfg.MetricsPort)

	// Fuente del catálogo: Postgres si hay DATABASE_URL, si no el .xlsx
	var source catalog.Source = &catalog.FileSource{Path: cfg.CatalogPath}
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logx.Fatal().Err(err).Msg("error al conectar a Postgres")
		}
		defer pool.Close()
		source = &catalog.PostgresSource{DB: pool}
		logx.Info().Msg("catálogo servido desde Postgres")
	}

	// Historial: en memoria por defecto, Redis si hay REDIS_URL
	var store chat.SessionStore = chat.NewMemoryStore(cfg.HistoryCap)
	if cfg.RedisURL != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
		if err := client.Ping(context.Background()).Err(); err != nil {
			logx.Fatal().Err(err).Msg("error al conectar a Redis")
		}
		store = &chat.RedisStore{Client: client, Cap: cfg.HistoryCap}
		logx.Info().Msg("historial de sesiones en Redis")
	}

	completer := &chat.OpenAICompleter{
		Client:      openai.NewClient(cfg.OpenAIKey),
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
	}
	composer := chat.NewPromptComposer(chat.SystemInstructions, cfg.BrandSource, cfg.BrandTarget)

	assistant := chat.NewAssistant(
		source,
		chat.NewSubstringKeywordMatcher(),
		composer,
		store,
		completer,
		config.DefaultClientProfile(),
		cfg.PromptWindow,
	)

	http.Handle("/chat", chat.Handler(assistant))
	http.Handle("/clear-history", chat.ClearHandler(assistant))
	http.Handle("/greeting", chat.GreetingHandler())
	http.Handle("/suggestions", chat.SuggestionsHandler())
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	logx.Info().Str("port", cfg.Port).Str("model", cfg.Model).Msg("PACO escuchando")
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		logx.Fatal().Err(err).Msg("el servidor terminó con error")
	}
}
