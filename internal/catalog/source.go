package catalog

import (
	"context"
	"strings"

	"github.com/xuri/excelize/v2"

	"paco/internal/model"
	logx "paco/pkg/logger"
)

// Source entrega el catálogo completo de productos. Load es tolerante a
// fallas: ante cualquier error de lectura regresa un catálogo vacío, porque
// el pipeline debe poder armar un prompt aunque el catálogo no esté
// disponible.
type Source interface {
	Load(ctx context.Context) []model.Product
}

// FileSource lee el catálogo desde un archivo .xlsx en cada petición.
// No hay caché entre turnos: el archivo puede reemplazarse en caliente.
type FileSource struct {
	Path string
}

func (s *FileSource) Load(ctx context.Context) []model.Product {
	products, err := ReadFile(s.Path)
	if err != nil {
		logx.Warn().Err(err).Str("path", s.Path).Msg("no se pudo leer el catálogo, se continúa sin productos")
		return nil
	}
	return products
}

// ReadFile parsea la primera hoja del .xlsx. La primera fila es el
// encabezado; cada fila siguiente es un producto. Celdas faltantes quedan
// como cadena vacía y columnas desconocidas se conservan tal cual.
func ReadFile(path string) ([]model.Product, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := rows[0]
	var products []model.Product
	for _, row := range rows[1:] {
		p := model.Product{}
		empty := true
		for i, col := range header {
			col = strings.TrimSpace(col)
			if col == "" {
				continue
			}
			var val string
			if i < len(row) {
				val = strings.TrimSpace(row[i])
			}
			p[col] = val
			if val != "" {
				empty = false
			}
		}
		if !empty {
			products = append(products, p)
		}
	}
	return products, nil
}
