package chat

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"paco/internal/model"
)

// SystemInstructions es el bloque fijo de instrucciones del asistente.
// Texto literal: no se interpola nada y la sustitución de marca no lo toca.
const SystemInstructions = `Eres Paco, el asistente virtual para ejecutivos de Inbursa.
Tu objetivo es ayudar al ejecutivo a conocer mejor a su cliente y a identificar oportunidades de venta cruzada, recomendando productos financieros de manera personalizada y proactiva, siempre en español.

Contexto disponible:
- Perfil del cliente: datos financieros del cliente que el ejecutivo tiene en pantalla (score, historial de pagos, uso de crédito, saldos y gastos).
- Catálogo de productos: subconjunto de productos y servicios relevantes para la consulta, con sus características, beneficios y palabras clave asociadas.

EXPLICACIÓN DE LAS COLUMNAS DEL CATÁLOGO DE PRODUCTOS:
- id_producto: Identificador único del producto.
- tipo_producto: Categoría general del producto (inversión, seguro, crédito, etc.).
- subtipo_producto: Subcategoría específica del producto.
- nombre_producto: Nombre comercial del producto.
- descripción_corta: Descripción breve del producto.
- descripcion_comercial: Descripción comercial o de marketing del producto.
- beneficios_clave: Beneficios principales que ofrece el producto.
- coberturas: Coberturas incluidas (aplica para seguros).
- sumas_aseguradas: Montos asegurados o cubiertos (aplica para seguros).
- modalidades_pago: Formas de pago disponibles para el producto.
- plazo_contrato: Plazo mínimo o máximo del contrato del producto.
- precio_aproximado: Precio o costo estimado del producto.
- edad_minima / edad_maxima: Rango de edad para contratar el producto.
- ocupaciones: Ocupaciones recomendadas o permitidas para el producto.
- situaciones_relevantes: Situaciones de vida donde el producto es relevante.
- nivel_ingresos_sugerido: Nivel de ingresos recomendado para el producto.
- segmento_cliente_objetivo: Segmento de clientes al que va dirigido.
- trigger_venta: Situaciones que disparan la recomendación del producto.
- canales_disponibles: Canales donde se puede contratar o consultar.
- palabras_clave_asociadas: Palabras clave de necesidades relacionadas.
- intenciones_clientes: Motivos típicos de los clientes para contratarlo.
- Respuesta_IA: Respuesta sugerida al recomendar este producto.

INSTRUCCIONES:
1. Analiza el perfil del cliente y el mensaje del ejecutivo.
2. Utiliza las palabras clave del catálogo para identificar necesidades, intereses o eventos relevantes (por ejemplo: "ahorro", "viaje", "retiro", "inversión", "protección", "educación", "jubilación", "emergencia").
3. Si detectas una oportunidad, recomienda el producto más adecuado del catálogo.
4. Explica brevemente por qué ese producto es relevante para este cliente, usando datos concretos del perfil y del catálogo.
5. Si el ejecutivo pregunta por un producto específico, responde con detalles exactos (características, tasas, requisitos, beneficios).
6. Si el producto no existe, sugiere alternativas disponibles.
7. Responde siempre en español, de manera clara, profesional y amable.
8. Presenta la información en listas o párrafos cortos, fáciles de leer.
9. No saludes ni te despidas, ve directo a la respuesta.`

// PromptComposer arma el mensaje de sistema de cada turno: instrucciones
// fijas, perfil del cliente y productos relevantes, en ese orden. La
// sustitución de marca (insensible a mayúsculas) aplica únicamente al bloque
// de productos. Es ensamblado puro de strings: determinista para entradas
// idénticas.
type PromptComposer struct {
	instructions string
	brandTarget  string
	brandRe      *regexp.Regexp
}

func NewPromptComposer(instructions, brandSource, brandTarget string) *PromptComposer {
	c := &PromptComposer{
		instructions: instructions,
		brandTarget:  brandTarget,
	}
	if brandSource != "" && brandTarget != "" {
		c.brandRe = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(brandSource))
	}
	return c
}

func (c *PromptComposer) Compose(profile model.ClientProfile, products []model.Product) string {
	var b strings.Builder
	b.WriteString(c.instructions)
	b.WriteString("\n\nPERFIL DEL CLIENTE:\n")
	b.WriteString(renderProfile(profile))
	b.WriteString("\nPRODUCTOS RELEVANTES DEL CATÁLOGO:\n\n")
	b.WriteString(c.rewriteBrand(renderProducts(products)))
	return b.String()
}

func (c *PromptComposer) rewriteBrand(s string) string {
	if c.brandRe == nil {
		return s
	}
	return c.brandRe.ReplaceAllLiteralString(s, c.brandTarget)
}

func renderProfile(p model.ClientProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- Nombre: %s\n", p.Nombre)
	fmt.Fprintf(&b, "- Número de cliente: %s\n", p.NumeroCliente)
	fmt.Fprintf(&b, "- Identificación: %s\n", p.Identificacion)
	fmt.Fprintf(&b, "- Score crediticio: %d\n", p.ScoreCrediticio)
	fmt.Fprintf(&b, "- Pagos puntuales: %d\n", p.PagosPuntuales)
	fmt.Fprintf(&b, "- Pagos tardíos: %d\n", p.PagosTardios)
	fmt.Fprintf(&b, "- Uso de crédito: %.1f%%\n", p.UsoCredito)
	fmt.Fprintf(&b, "- Saldo en cheques: $%.2f\n", p.SaldoCheques)
	fmt.Fprintf(&b, "- Saldo en ahorro: $%.2f\n", p.SaldoAhorro)
	fmt.Fprintf(&b, "- Deuda de tarjeta: $%.2f\n", p.DeudaTarjeta)

	// Orden fijo de categorías para que el prompt sea determinista
	categorias := make([]string, 0, len(p.GastosMensuales))
	for c := range p.GastosMensuales {
		categorias = append(categorias, c)
	}
	sort.Strings(categorias)
	b.WriteString("- Gastos mensuales por categoría:\n")
	for _, c := range categorias {
		fmt.Fprintf(&b, "  - %s: $%.2f\n", c, p.GastosMensuales[c])
	}
	return b.String()
}

func renderProducts(products []model.Product) string {
	var b strings.Builder
	for i, p := range products {
		fmt.Fprintf(&b, "Producto %d: %s", i+1, p.Get(model.ColNombreProducto))
		if tipo := p.Get(model.ColTipoProducto); tipo != "" {
			fmt.Fprintf(&b, " (%s)", tipo)
		}
		b.WriteString("\n")

		writeField(&b, "Subtipo", p.Get(model.ColSubtipoProducto))
		writeField(&b, "Descripción", p.Get(model.ColDescripcionCorta))
		writeField(&b, "Descripción comercial", p.Get(model.ColDescComercial))
		writeField(&b, "Beneficios clave", p.Get(model.ColBeneficiosClave))
		writeField(&b, "Coberturas", p.Get(model.ColCoberturas))
		writeField(&b, "Sumas aseguradas", p.Get(model.ColSumasAseguradas))
		writeField(&b, "Modalidades de pago", p.Get(model.ColModalidadesPago))
		writeField(&b, "Plazo de contrato", p.Get(model.ColPlazoContrato))
		writeField(&b, "Precio aproximado", p.Get(model.ColPrecioAproximado))
		writeField(&b, "Situaciones relevantes", p.Get(model.ColSituaciones))
		writeField(&b, "Segmento objetivo", p.Get(model.ColSegmentoCliente))
		writeField(&b, "Palabras clave", p.Get(model.ColPalabrasClave))
		writeField(&b, "Respuesta sugerida", p.Get(model.ColRespuestaIA))
		b.WriteString("\n")
	}
	return b.String()
}

func writeField(b *strings.Builder, label, val string) {
	if val == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, val)
}
