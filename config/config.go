package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the application-wide configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Database DatabaseConfig `mapstructure:"db"`
	Data     DataConfig     `mapstructure:"data"`
	Alert    AlertConfig    `mapstructure:"alert"`
	Render   RenderConfig   `mapstructure:"render"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port         int        `mapstructure:"port"`
	BaseURL      string     `mapstructure:"base_url"`
	MaxBodyBytes int64      `mapstructure:"max_body_bytes"`
	CORS         CORSConfig `mapstructure:"cors"`
}

// CORSConfig lists origins allowed to call the API.
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// StoreConfig selects the NC register backend.
//
// Backends:
//   - "csv"      single human-readable register file, append via atomic rename
//   - "postgres" gorm-backed table with a unique index on nc_no
type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	CSVPath string `mapstructure:"csv_path"`
}

// DatabaseConfig holds PostgreSQL settings for the postgres store backend.
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Name         string `mapstructure:"name"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	SSLMode      string `mapstructure:"sslmode"`
	Timezone     string `mapstructure:"timezone"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// DSN builds the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// DataConfig locates the on-disk data directories.
type DataConfig struct {
	// Dir is the root under which the image buckets live
	// (defect_images/, ok_images/, alerts/).
	Dir string `mapstructure:"dir"`
	// MasterDir holds the six master-data CSV files.
	MasterDir string `mapstructure:"master_dir"`
}

// DefectDir returns the bucket for uploaded NOT OK photos.
func (c *DataConfig) DefectDir() string { return filepath.Join(c.Dir, "defect_images") }

// OKDir returns the bucket for uploaded OK reference photos.
func (c *DataConfig) OKDir() string { return filepath.Join(c.Dir, "ok_images") }

// AlertDir returns the bucket for rendered alert documents.
func (c *DataConfig) AlertDir() string { return filepath.Join(c.Dir, "alerts") }

// AlertConfig carries the document-control constants printed on every alert.
// Loaded once at startup and passed into the services; nothing reads these
// from ambient globals.
type AlertConfig struct {
	Company           string `mapstructure:"company"`
	DocumentNo        string `mapstructure:"document_no"`
	RevisionNo        string `mapstructure:"revision_no"`
	ApprovedBy        string `mapstructure:"approved_by"`
	AllocatorStrategy string `mapstructure:"allocator_strategy"` // last | max
}

// RenderConfig holds optional rendering assets. Both may be absent: the
// renderer falls back to the embedded Go fonts and skips the logo.
type RenderConfig struct {
	FontPath string `mapstructure:"font_path"`
	LogoPath string `mapstructure:"logo_path"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment.
// Precedence: environment variables > config file > defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── defaults ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.max_body_bytes", int64(20<<20)) // two photos per submission
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("store.backend", "csv")
	v.SetDefault("store.csv_path", "data/nc_database.csv")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "gipl_quality")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "Asia/Kolkata")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)

	v.SetDefault("data.dir", "data")
	v.SetDefault("data.master_dir", "data/masters")

	v.SetDefault("alert.company", "GABRIL INDUSTRIES PVT. LTD.")
	v.SetDefault("alert.document_no", "GIPL-QA-001")
	v.SetDefault("alert.revision_no", "00")
	v.SetDefault("alert.approved_by", "Varun K")
	v.SetDefault("alert.allocator_strategy", "last")

	v.SetDefault("render.font_path", "DejaVuSans.ttf")
	v.SetDefault("render.logo_path", "logo.png")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── config file ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── environment ──
	v.SetEnvPrefix("GIPL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// no config file: defaults plus environment only
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings the server cannot run without.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port must be within 1-65535")
	}
	switch c.Store.Backend {
	case "csv", "postgres":
	default:
		return fmt.Errorf("config: store.backend must be csv or postgres, got %q", c.Store.Backend)
	}
	switch c.Alert.AllocatorStrategy {
	case "last", "max":
	default:
		return fmt.Errorf("config: alert.allocator_strategy must be last or max, got %q", c.Alert.AllocatorStrategy)
	}
	if c.Alert.Company == "" {
		return fmt.Errorf("config: alert.company must not be empty")
	}
	if c.Store.Backend == "csv" && c.Store.CSVPath == "" {
		return fmt.Errorf("config: store.csv_path must not be empty for the csv backend")
	}
	return nil
}
