package main

import (
	"paco/internal/catalog"
	"paco/internal/config"
	"paco/internal/db"
	"paco/internal/model"
	logx "paco/pkg/logger"
)

// Importa el catálogo .xlsx a la tabla product_catalog. Se corre cuando
// mercadotecnia entrega una nueva versión del archivo.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("configuración inválida")
	}
	logx.Init(cfg.Environment)

	if cfg.DatabaseURL == "" {
		logx.Fatal().Msg("falta DATABASE_URL")
	}

	products, err := catalog.ReadFile(cfg.CatalogPath)
	if err != nil {
		logx.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("no se pudo leer el catálogo")
	}
	if len(products) == 0 {
		logx.Fatal().Str("path", cfg.CatalogPath).Msg("el catálogo está vacío")
	}

	conn, err := db.New(cfg.DatabaseURL)
	if err != nil {
		logx.Fatal().Err(err).Msg("error al conectar a Postgres")
	}
	defer conn.Close()

	repo := &catalog.Repository{DB: conn}

	imported := 0
	for i, p := range products {
		if err := repo.Save(i, p); err != nil {
			logx.Error().Err(err).Str("producto", p.Get(model.ColNombreProducto)).Msg("error al guardar producto")
			continue
		}
		imported++
	}

	logx.Info().Int("total", len(products)).Int("importados", imported).Msg("importación terminada")
}
