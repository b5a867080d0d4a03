package model

// Product representa un renglón del catálogo: columna -> valor.
// El catálogo no tiene esquema rígido; las columnas listadas abajo son las
// reconocidas por el pipeline, pero cualquier columna extra se conserva.
type Product map[string]string

// Columnas reconocidas del catálogo de productos.
const (
	ColIDProducto         = "id_producto"
	ColTipoProducto       = "tipo_producto"
	ColSubtipoProducto    = "subtipo_producto"
	ColNombreProducto     = "nombre_producto"
	ColDescripcionCorta   = "descripción_corta"
	ColDescComercial      = "descripcion_comercial"
	ColBeneficiosClave    = "beneficios_clave"
	ColCoberturas         = "coberturas"
	ColSumasAseguradas    = "sumas_aseguradas"
	ColSaldo              = "Saldo"
	ColModalidadesPago    = "modalidades_pago"
	ColPlazoContrato      = "plazo_contrato"
	ColPrecioAproximado   = "precio_aproximado"
	ColEdadMinima         = "edad_minima"
	ColEdadMaxima         = "edad_maxima"
	ColOcupaciones        = "ocupaciones"
	ColSituaciones        = "situaciones_relevantes"
	ColNivelIngresos      = "nivel_ingresos_sugerido"
	ColSegmentoCliente    = "segmento_cliente_objetivo"
	ColTriggerVenta       = "trigger_venta"
	ColCanalesDisponibles = "canales_disponibles"
	ColPalabrasClave      = "palabras_clave_asociadas"
	ColIntencionesCliente = "intenciones_clientes"
	ColRespuestaIA        = "Respuesta_IA"
)

// CatalogColumns enumera las columnas reconocidas en el orden del catálogo
// original. Se usa para importar y leer la tabla product_catalog.
var CatalogColumns = []string{
	ColIDProducto,
	ColTipoProducto,
	ColSubtipoProducto,
	ColNombreProducto,
	ColDescripcionCorta,
	ColDescComercial,
	ColBeneficiosClave,
	ColCoberturas,
	ColSumasAseguradas,
	ColSaldo,
	ColModalidadesPago,
	ColPlazoContrato,
	ColPrecioAproximado,
	ColEdadMinima,
	ColEdadMaxima,
	ColOcupaciones,
	ColSituaciones,
	ColNivelIngresos,
	ColSegmentoCliente,
	ColTriggerVenta,
	ColCanalesDisponibles,
	ColPalabrasClave,
	ColIntencionesCliente,
	ColRespuestaIA,
}

// Get devuelve el valor de la columna o cadena vacía si no existe.
// Las columnas ausentes se tratan igual que las vacías en todo el pipeline.
func (p Product) Get(col string) string {
	return p[col]
}
