package db

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
)

// New abre una conexión database/sql (driver pq), usada por el importador.
func New(url string) (*sql.DB, error) {
	return sql.Open("postgres", url)
}

// NewPool crea el pool pgx que usa la ruta de lectura del catálogo.
func NewPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
