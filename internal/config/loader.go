package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"app.environment":          "APP_ENVIRONMENT",
	"app.port":                 "PORT",
	"model.path":               "MODEL_PATH",
	"remote.url":               "API_URL",
	"remote.timeout":           "API_TIMEOUT",
	"record.sinks":             "RECORD_SINKS",
	"record.timeout":           "RECORD_TIMEOUT",
	"workbook.path":            "WORKBOOK_PATH",
	"workbook.sheet":           "WORKBOOK_SHEET",
	"sheets.credentials_json":  "GOOGLE_CREDENTIALS_JSON",
	"sheets.spreadsheet_id":    "SHEETS_SPREADSHEET_ID",
	"sheets.spreadsheet_title": "SHEETS_SPREADSHEET_TITLE",
	"sheets.tab":               "SHEETS_TAB",
	"postgres.url":             "POSTGRES_URL",
	"logging.level":            "LOG_LEVEL",
	"logging.format":           "LOG_FORMAT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)
	v.SetDefault("model.path", "models/premium_model.json")
	v.SetDefault("remote.url", "http://localhost:8080/predict")
	v.SetDefault("remote.timeout", "10s")
	v.SetDefault("record.sinks", SinkWorkbook)
	v.SetDefault("record.timeout", "10s")
	v.SetDefault("workbook.path", "data/premium_records.xlsx")
	v.SetDefault("workbook.sheet", "Premiums")
	v.SetDefault("sheets.spreadsheet_title", "Health Insurance Premium Data")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Load reads .env, an optional configs/config.yaml and the environment, in
// increasing order of precedence.
func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile loads configuration from a specific yaml file.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadEnvFile() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
}

func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Model.Path) == "" {
		errs = append(errs, errors.New("model path is required"))
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.App.Port))
	}
	if c.Remote.Timeout <= 0 {
		errs = append(errs, errors.New("API_TIMEOUT must be positive"))
	}
	if c.Record.Timeout <= 0 {
		errs = append(errs, errors.New("RECORD_TIMEOUT must be positive"))
	}

	names := c.Record.SinkNames()
	if len(names) > 0 && strings.Contains(strings.ToLower(c.Record.Sinks), SinkNone) {
		errs = append(errs, errors.New("record sink \"none\" cannot be combined with other sinks"))
	}
	for _, name := range names {
		switch name {
		case SinkWorkbook:
			if c.Workbook.Path == "" {
				errs = append(errs, errors.New("workbook sink requires WORKBOOK_PATH"))
			}
		case SinkSheets:
			if c.Sheets.CredentialsJSON == "" {
				errs = append(errs, errors.New("sheets sink requires GOOGLE_CREDENTIALS_JSON"))
			}
			if c.Sheets.SpreadsheetID == "" && c.Sheets.SpreadsheetTitle == "" {
				errs = append(errs, errors.New("sheets sink requires SHEETS_SPREADSHEET_ID or SHEETS_SPREADSHEET_TITLE"))
			}
		case SinkPostgres:
			if c.Postgres.URL == "" {
				errs = append(errs, errors.New("postgres sink requires POSTGRES_URL"))
			}
		default:
			errs = append(errs, fmt.Errorf("unknown record sink %q", name))
		}
	}

	return errors.Join(errs...)
}
