package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"paco/internal/model"
	logx "paco/pkg/logger"
)

// PostgresSource lee el catálogo desde la tabla product_catalog, en el orden
// original del archivo importado (columna posicion). Igual que FileSource,
// es tolerante a fallas.
type PostgresSource struct {
	DB *pgxpool.Pool
}

func (s *PostgresSource) Load(ctx context.Context) []model.Product {
	cols := model.CatalogColumns
	query := fmt.Sprintf(
		`SELECT %s FROM product_catalog ORDER BY posicion ASC`,
		quoteJoin(cols),
	)

	rows, err := s.DB.Query(ctx, query)
	if err != nil {
		logx.Warn().Err(err).Msg("no se pudo consultar product_catalog, se continúa sin productos")
		return nil
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		vals := make([]*string, len(cols))
		dest := make([]any, len(cols))
		for i := range vals {
			dest[i] = &vals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			continue // salta filas con error de scan
		}
		p := model.Product{}
		for i, col := range cols {
			if vals[i] != nil {
				p[col] = *vals[i]
			} else {
				p[col] = ""
			}
		}
		products = append(products, p)
	}
	return products
}

// Repository es la ruta de escritura que usa cmd/importer para cargar el
// .xlsx en Postgres.
type Repository struct {
	DB *sql.DB
}

// Save hace upsert del producto por id_producto, conservando posicion para
// mantener el orden del catálogo.
func (r *Repository) Save(posicion int, p model.Product) error {
	cols := model.CatalogColumns

	vals := make([]any, 0, len(cols)+2)
	for _, col := range cols {
		vals = append(vals, p.Get(col))
	}

	var exists bool
	err := r.DB.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM product_catalog WHERE id_producto = $1)`,
		p.Get(model.ColIDProducto),
	).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		sets := make([]string, 0, len(cols)+1)
		for i, col := range cols {
			sets = append(sets, fmt.Sprintf("%q = $%d", col, i+1))
		}
		sets = append(sets, fmt.Sprintf("posicion = $%d", len(cols)+1))
		vals = append(vals, posicion, p.Get(model.ColIDProducto))
		query := fmt.Sprintf(
			`UPDATE product_catalog SET %s WHERE id_producto = $%d`,
			strings.Join(sets, ", "), len(cols)+2,
		)
		_, err = r.DB.Exec(query, vals...)
		return err
	}

	placeholders := make([]string, 0, len(cols)+2)
	for i := range cols {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
	}
	placeholders = append(placeholders,
		fmt.Sprintf("$%d", len(cols)+1),
		fmt.Sprintf("$%d", len(cols)+2),
	)
	vals = append(vals, posicion, uuid.New())
	query := fmt.Sprintf(
		`INSERT INTO product_catalog (%s, posicion, id) VALUES (%s)`,
		quoteJoin(cols), strings.Join(placeholders, ", "),
	)
	_, err = r.DB.Exec(query, vals...)
	return err
}

// quoteJoin entrecomilla cada columna: varias llevan acentos o mayúsculas
// (descripción_corta, Saldo, Respuesta_IA) y Postgres las normalizaría.
func quoteJoin(cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return strings.Join(quoted, ", ")
}
