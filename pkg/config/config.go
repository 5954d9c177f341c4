package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente y del sandbox (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	Storage StorageConfig
	UI      UIConfig
	Sandbox SandboxConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig configuración del servicio remoto de préstamos.
type APIConfig struct {
	BaseURL   string
	TimeoutMS int // un único timeout aplicado a todas las llamadas
}

// Timeout devuelve el timeout de red como time.Duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// StorageConfig ubicación del archivo donde se persisten token y tema.
type StorageConfig struct {
	Path string
}

// UIConfig opciones de presentación del cliente.
type UIConfig struct {
	// NotifyAutoHideMS 0 = las notificaciones se vuelcan al terminar cada comando.
	NotifyAutoHideMS int
	// RegistrationSecret palabra que entrega el administrador para habilitar el autorregistro.
	RegistrationSecret string
}

// AutoHide devuelve la duración de cada notificación en pantalla.
func (c UIConfig) AutoHide() time.Duration {
	return time.Duration(c.NotifyAutoHideMS) * time.Millisecond
}

// SandboxConfig configuración del servicio de préstamos en memoria (desarrollo y pruebas).
type SandboxConfig struct {
	Host           string
	Port           int
	JWTSecret      string
	JWTIssuer      string
	JWTExpMinutes  int
	MaxActiveLoans int
	// DatabaseURL vacío = base en memoria; con valor, PostgreSQL persistente.
	DatabaseURL    string
}

// Addr devuelve la dirección de escucha (host:port).
func (c SandboxConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, API_TIMEOUT_MS, STORAGE_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "banco-cliente"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:   strings.TrimRight(getString(v, "API_BASE_URL", "http://localhost:3000"), "/"),
			TimeoutMS: getInt(v, "API_TIMEOUT_MS", 15000),
		},
		Storage: StorageConfig{
			Path: getString(v, "STORAGE_PATH", "banco-cliente.db"),
		},
		UI: UIConfig{
			NotifyAutoHideMS:   getInt(v, "NOTIFY_AUTOHIDE_MS", 5000),
			RegistrationSecret: getString(v, "REGISTRO_PALABRA_SECRETA", "BasesDeDatos2"),
		},
		Sandbox: SandboxConfig{
			Host:           getString(v, "SANDBOX_HOST", "0.0.0.0"),
			Port:           getInt(v, "SANDBOX_PORT", 3000),
			JWTSecret:      getString(v, "SANDBOX_JWT_SECRET", "sandbox-secret"),
			JWTIssuer:      getString(v, "SANDBOX_JWT_ISSUER", "banco-sandbox"),
			JWTExpMinutes:  getInt(v, "SANDBOX_JWT_EXPIRATION_MINUTES", 60),
			MaxActiveLoans: getInt(v, "SANDBOX_MAX_ACTIVE_LOANS", 2),
			DatabaseURL:    getString(v, "SANDBOX_DATABASE_URL", ""),
		},
	}

	if cfg.API.TimeoutMS <= 0 {
		return nil, fmt.Errorf("config: API_TIMEOUT_MS debe ser positivo (valor: %d)", cfg.API.TimeoutMS)
	}
	if cfg.UI.NotifyAutoHideMS < 0 {
		return nil, fmt.Errorf("config: NOTIFY_AUTOHIDE_MS no puede ser negativo (valor: %d)", cfg.UI.NotifyAutoHideMS)
	}
	if cfg.Sandbox.MaxActiveLoans <= 0 {
		return nil, fmt.Errorf("config: SANDBOX_MAX_ACTIVE_LOANS debe ser positivo (valor: %d)", cfg.Sandbox.MaxActiveLoans)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
