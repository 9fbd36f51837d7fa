package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"

	AuthPassword = "password"
	AuthHTTP     = "http"
)

type Config struct {
	Env      string         `yaml:"env"`      // Env is the current environment: local, development, production.
	Backend  string         `yaml:"backend"`  // Backend selects the data store: postgres or memory.
	Postgres PostgresConfig `yaml:"postgres"` // Postgres holds the database configuration
	Auth     AuthConfig     `yaml:"auth"`     // Auth selects and configures the sign-in provider
	HTTP     HTTPConfig     `yaml:"http"`     // HTTP holds listener ports
	Memory   MemoryConfig   `yaml:"memory"`   // Memory seeds the in-memory backend
	Roster   RosterConfig   `yaml:"roster"`   // Roster configures the periodic import of an HTML roster
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`     // Host is the database server address.
	Port     string `yaml:"port"`     // Port is the database server port.
	User     string `yaml:"user"`     // User is the database user.
	Password string `yaml:"password"` // Password is the database user's password.
	Dbname   string `yaml:"db_name"`  // Dbname is the name of the database.
}

// AuthConfig struct holds the configuration of the credential check used at login.
type AuthConfig struct {
	Provider string `yaml:"provider"`  // Provider is either `password` (bcrypt hashes in users table) or `http`.
	LoginURL string `yaml:"login_url"` // LoginURL is the form endpoint of the external identity provider.
	BaseURL  string `yaml:"base_url"`  // BaseURL is sent as Referer and probed by the health check.
}

type HTTPConfig struct {
	Port           int `yaml:"port"`
	MonitoringPort int `yaml:"monitoring_port"`
}

// MemoryConfig describes the single account and demo rows of the in-memory backend.
type MemoryConfig struct {
	Username      string `yaml:"username"`
	Email         string `yaml:"email"`
	Password      string `yaml:"password"`
	DemoEmployees int    `yaml:"demo_employees"`
}

// RosterConfig points at an HTML training roster that is imported periodically.
// An empty URL disables the import.
type RosterConfig struct {
	URL      string        `yaml:"url"`
	Interval time.Duration `yaml:"interval"`
}

// MustLoad loads the configuration from the YAML file referenced by CONFIG_PATH (optional)
// and from FOCUSLEARN_* environment variables, and returns a Config struct.
// Environment variables take precedence over the file, e.g. FOCUSLEARN_POSTGRES_HOST.
func MustLoad() *Config {
	vpr := viper.New()

	vpr.SetEnvPrefix("focuslearn")
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()

	vpr.SetDefault("env", "local")
	vpr.SetDefault("backend", BackendPostgres)
	vpr.SetDefault("postgres.port", "5432")
	vpr.SetDefault("auth.provider", AuthPassword)
	vpr.SetDefault("http.port", 8000)
	vpr.SetDefault("http.monitoring_port", 8080)
	vpr.SetDefault("memory.username", "test")
	vpr.SetDefault("memory.email", "test@example.com")
	vpr.SetDefault("memory.password", "password")
	vpr.SetDefault("memory.demo_employees", 0)
	vpr.SetDefault("roster.interval", time.Hour)

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}

		vpr.SetConfigFile(configPath)
		if err := vpr.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	cfg := &Config{
		Env:     vpr.GetString("env"),
		Backend: vpr.GetString("backend"),
		Postgres: PostgresConfig{
			Host:     vpr.GetString("postgres.host"),
			Port:     vpr.GetString("postgres.port"),
			User:     vpr.GetString("postgres.user"),
			Password: vpr.GetString("postgres.password"),
			Dbname:   vpr.GetString("postgres.db_name"),
		},
		Auth: AuthConfig{
			Provider: vpr.GetString("auth.provider"),
			LoginURL: vpr.GetString("auth.login_url"),
			BaseURL:  vpr.GetString("auth.base_url"),
		},
		HTTP: HTTPConfig{
			Port:           vpr.GetInt("http.port"),
			MonitoringPort: vpr.GetInt("http.monitoring_port"),
		},
		Memory: MemoryConfig{
			Username:      vpr.GetString("memory.username"),
			Email:         vpr.GetString("memory.email"),
			Password:      vpr.GetString("memory.password"),
			DemoEmployees: vpr.GetInt("memory.demo_employees"),
		},
		Roster: RosterConfig{
			URL:      vpr.GetString("roster.url"),
			Interval: vpr.GetDuration("roster.interval"),
		},
	}

	switch cfg.Backend {
	case BackendPostgres, BackendMemory:
	default:
		panic("unknown backend: " + cfg.Backend)
	}

	switch cfg.Auth.Provider {
	case AuthPassword:
	case AuthHTTP:
		if cfg.Auth.LoginURL == "" {
			panic("auth.login_url is required for the http provider")
		}
	default:
		panic("unknown auth provider: " + cfg.Auth.Provider)
	}

	if cfg.Roster.URL != "" && cfg.Roster.Interval <= 0 {
		panic("roster.interval must be positive")
	}

	return cfg
}
