package model

import "fmt"

// Config 実行設定
type Config struct {
	WorkDir         string  `toml:"work_dir" split_words:"true"`
	Output          string  `toml:"output"`
	IntervalSeconds int     `toml:"interval_seconds" split_words:"true"`
	LogLevel        string  `toml:"log_level" split_words:"true"`
	Sources         Sources `toml:"sources"`
	DB              DB      `toml:"db"`
	Slack           Slack   `toml:"slack"`
}

// Sources 取得元設定
type Sources struct {
	FixerURL                 string `toml:"fixer_url" split_words:"true"`
	FixerTTLMinutes          int    `toml:"fixer_ttl_minutes" envconfig:"FIXER_TTL_MINUTES"`
	ProfitStatsURL           string `toml:"profit_stats_url" split_words:"true"`
	ProfitStatsTTLMinutes    int    `toml:"profit_stats_ttl_minutes" envconfig:"PROFIT_STATS_TTL_MINUTES"`
	ConfigFile               string `toml:"config_file" split_words:"true"`
	EquipmentsFile           string `toml:"equipments_file" split_words:"true"`
	RequestTimeoutSeconds    int    `toml:"request_timeout_seconds" split_words:"true"`
	DisableSuccessValidation bool   `toml:"disable_success_validation" split_words:"true"`
}

// DB DB用設定
type DB struct {
	Driver   string `toml:"driver"`
	Path     string `toml:"path"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Name     string `toml:"name"`
	UserName string `toml:"user_name" split_words:"true"`
	Password string `toml:"password"`
}

// Slack 通知設定
type Slack struct {
	WebhookURL string `toml:"webhook_url" split_words:"true"`
}

// Credentials config.json の内容
type Credentials struct {
	FixerAPIAccessKey string `json:"fixer_api_access_key"`
}

const (
	// DriverSQLite ファイルベースのDB
	DriverSQLite = "sqlite"
	// DriverMySQL MySQL
	DriverMySQL = "mysql"
)

// NewDefaultConfig 既定値で生成
func NewDefaultConfig() *Config {
	return &Config{
		WorkDir:  ".",
		LogLevel: "info",
		Sources: Sources{
			FixerURL:              "http://data.fixer.io/api/latest",
			FixerTTLMinutes:       60,
			ProfitStatsURL:        "https://miningpoolhub.com/index.php?page=api&action=getminingandprofitsstatistics",
			ProfitStatsTTLMinutes: 15,
			ConfigFile:            "config.json",
			EquipmentsFile:        "equipments.json",
		},
		DB: DB{
			Driver: DriverSQLite,
			Path:   "mph.db",
		},
	}
}

// Validate 設定値の検証
func (c *Config) Validate() error {
	if c.IntervalSeconds < 0 {
		return fmt.Errorf("interval_seconds must not be negative: %d", c.IntervalSeconds)
	}
	if c.IntervalSeconds > 0 && c.Output == "" {
		return fmt.Errorf("output file is required when interval_seconds is set")
	}
	if c.Sources.FixerTTLMinutes < 0 || c.Sources.ProfitStatsTTLMinutes < 0 {
		return fmt.Errorf("ttl minutes must not be negative")
	}
	switch c.DB.Driver {
	case DriverSQLite:
		if c.DB.Path == "" {
			return fmt.Errorf("db path cannot be empty for sqlite")
		}
	case DriverMySQL:
		if c.DB.Host == "" || c.DB.Name == "" {
			return fmt.Errorf("db host and name are required for mysql")
		}
	default:
		return fmt.Errorf("unknown db driver: %s", c.DB.Driver)
	}
	return nil
}
