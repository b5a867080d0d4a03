package model

// ClientProfile es la ficha del cliente que el ejecutivo tiene en pantalla.
// Hoy el servicio usa un perfil por defecto (ver config.DefaultClientProfile);
// cuando exista la consulta al CRM, el perfil llegará por sesión sin cambiar
// la forma del pipeline.
type ClientProfile struct {
	Nombre          string
	NumeroCliente   string
	Identificacion  string
	ScoreCrediticio int
	PagosPuntuales  int
	PagosTardios    int
	UsoCredito      float64 // porcentaje de la línea utilizada
	SaldoCheques    float64
	SaldoAhorro     float64
	DeudaTarjeta    float64
	GastosMensuales map[string]float64 // gasto mensual por categoría
}
