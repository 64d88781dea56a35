package config

import (
	"strings"
	"time"
)

const (
	SinkWorkbook = "workbook"
	SinkSheets   = "sheets"
	SinkPostgres = "postgres"
	SinkNone     = "none"
)

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Model    ModelConfig    `mapstructure:"model"`
	Remote   RemoteConfig   `mapstructure:"remote"`
	Record   RecordConfig   `mapstructure:"record"`
	Workbook WorkbookConfig `mapstructure:"workbook"`
	Sheets   SheetsConfig   `mapstructure:"sheets"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Environment string `mapstructure:"environment"`
	Port        int    `mapstructure:"port"`
}

func (a AppConfig) IsProduction() bool { return a.Environment == "production" }

type ModelConfig struct {
	Path string `mapstructure:"path"`
}

// RemoteConfig points at a running POST /predict endpoint.
type RemoteConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type RecordConfig struct {
	Sinks   string        `mapstructure:"sinks"` // comma list
	Timeout time.Duration `mapstructure:"timeout"`
}

// SinkNames returns the configured sinks, lower-cased, without "none".
func (r RecordConfig) SinkNames() []string {
	var names []string
	for _, s := range strings.Split(r.Sinks, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || s == SinkNone {
			continue
		}
		names = append(names, s)
	}
	return names
}

func (r RecordConfig) Enabled(sink string) bool {
	for _, s := range r.SinkNames() {
		if s == sink {
			return true
		}
	}
	return false
}

type WorkbookConfig struct {
	Path  string `mapstructure:"path"`
	Sheet string `mapstructure:"sheet"`
}

type SheetsConfig struct {
	CredentialsJSON  string `mapstructure:"credentials_json"`
	SpreadsheetID    string `mapstructure:"spreadsheet_id"`
	SpreadsheetTitle string `mapstructure:"spreadsheet_title"`
	Tab              string `mapstructure:"tab"`
}

type PostgresConfig struct {
	URL string `mapstructure:"url"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
