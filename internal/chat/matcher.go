package chat

import (
	"strings"

	"paco/internal/model"
)

// Matcher decide qué subconjunto del catálogo vale la pena inyectar al
// prompt para un mensaje dado. Está detrás de una interfaz para poder
// sustituir la heurística de substrings por un ranking real sin tocar a los
// consumidores.
type Matcher interface {
	Filter(userText string, catalog []model.Product) []model.Product
}

const (
	fallbackProducts = 3
	triggerProducts  = 5
)

// defaultTriggerTerms son los términos que fuerzan la inclusión de productos
// aunque no haya coincidencia directa con el catálogo.
var defaultTriggerTerms = []string{
	"recomienda",
	"recomiéndame",
	"recomendación",
	"venta cruzada",
	"ofrecer",
	"oferta",
	"sugerir",
	"sugiere",
	"sugerencia",
	"oportunidad",
	"producto",
}

// SubstringKeywordMatcher es la heurística observada en producción: un
// producto coincide si su nombre, su tipo, o alguna de sus palabras clave
// (separadas por coma) aparece como substring del mensaje en minúsculas.
// Sin coincidencias regresa las primeras entradas del catálogo, más si el
// mensaje trae un término disparador. No hay scoring: el orden del catálogo
// es el desempate.
type SubstringKeywordMatcher struct {
	TriggerTerms []string
}

func NewSubstringKeywordMatcher() *SubstringKeywordMatcher {
	return &SubstringKeywordMatcher{TriggerTerms: defaultTriggerTerms}
}

func (m *SubstringKeywordMatcher) Filter(userText string, catalog []model.Product) []model.Product {
	text := strings.ToLower(userText)

	var matches []model.Product
	for _, p := range catalog {
		if productMatches(text, p) {
			matches = append(matches, p)
		}
	}
	if len(matches) > 0 {
		return matches
	}

	// Sin coincidencias el prompt nunca va sin productos: las primeras N
	// entradas del catálogo sirven de respaldo.
	n := fallbackProducts
	if m.hasTrigger(text) {
		n = triggerProducts
	}
	if n > len(catalog) {
		n = len(catalog)
	}
	return catalog[:n]
}

func (m *SubstringKeywordMatcher) hasTrigger(text string) bool {
	for _, term := range m.TriggerTerms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func productMatches(text string, p model.Product) bool {
	name := strings.ToLower(strings.TrimSpace(p.Get(model.ColNombreProducto)))
	if name != "" && strings.Contains(text, name) {
		return true
	}

	tipo := strings.ToLower(strings.TrimSpace(p.Get(model.ColTipoProducto)))
	if tipo != "" && strings.Contains(text, tipo) {
		return true
	}

	for _, kw := range strings.Split(p.Get(model.ColPalabrasClave), ",") {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
