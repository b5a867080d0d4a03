package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"paco/internal/model"
)

type Config struct {
	Environment  string  `envconfig:"ENVIRONMENT" default:"development"`
	Port         string  `envconfig:"PORT" default:"8082"`
	MetricsPort  string  `envconfig:"METRICS_PORT" default:"9090"`
	OpenAIKey    string  `envconfig:"OPENAI_API_KEY"`
	Model        string  `envconfig:"OPENAI_MODEL" default:"gpt-4-turbo-preview"`
	Temperature  float32 `envconfig:"OPENAI_TEMPERATURE" default:"0.7"`
	CatalogPath  string  `envconfig:"CATALOG_PATH" default:"data/catalogo_productos.xlsx"`
	DatabaseURL  string  `envconfig:"DATABASE_URL"`
	RedisURL     string  `envconfig:"REDIS_URL"`
	BrandSource  string  `envconfig:"BRAND_SOURCE" default:"Inbursa"`
	BrandTarget  string  `envconfig:"BRAND_TARGET" default:"OraBank"`
	HistoryCap   int     `envconfig:"HISTORY_CAP" default:"50"`
	PromptWindow int     `envconfig:"PROMPT_WINDOW" default:"10"`
}

func Load() (*Config, error) {
	// Carga .env de la raíz del proyecto; si no existe, solo variables de entorno
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultClientProfile es el perfil fijo que alimenta al asistente mientras
// no exista la consulta por sesión al CRM. Es dato de configuración, no
// lógica de negocio: sustituirlo por un perfil por sesión no toca el pipeline.
func DefaultClientProfile() model.ClientProfile {
	return model.ClientProfile{
		Nombre:          "Jessica Rivera Dominguez",
		NumeroCliente:   "276344890",
		Identificacion:  "IDMEX2984731635",
		ScoreCrediticio: 742,
		PagosPuntuales:  46,
		PagosTardios:    2,
		UsoCredito:      34.5,
		SaldoCheques:    48250.75,
		SaldoAhorro:     125400.00,
		DeudaTarjeta:    18320.40,
		GastosMensuales: map[string]float64{
			"Hogar":           9800.00,
			"Alimentación":    6450.00,
			"Transporte":      3200.00,
			"Entretenimiento": 2100.00,
			"Salud":           1750.00,
			"Otros":           1400.00,
		},
	}
}
