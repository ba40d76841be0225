package schemaverse

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	PostgresUrl        string        `mapstructure:"POSTGRES_URL"`
	JournalPostgresUrl string        `mapstructure:"JOURNAL_POSTGRES_URL"`
	MigrationsPath     string        `mapstructure:"MIGRATIONS_PATH"`
	PollInterval       time.Duration `mapstructure:"POLL_INTERVAL"`
	RallyX             float64       `mapstructure:"RALLY_X"`
	RallyY             float64       `mapstructure:"RALLY_Y"`
	EnableAttack       bool          `mapstructure:"ENABLE_ATTACK"`
	EnableJournal      bool          `mapstructure:"ENABLE_JOURNAL"`
	ApiAddr            string        `mapstructure:"API_ADDR"`
}

var configDefaults = map[string]interface{}{
	"POSTGRES_URL":         "",
	"JOURNAL_POSTGRES_URL": "",
	"MIGRATIONS_PATH":      "migrations",
	"POLL_INTERVAL":        "15s",
	"RALLY_X":              0.0,
	"RALLY_Y":              0.0,
	"ENABLE_ATTACK":        true,
	"ENABLE_JOURNAL":       false,
	"API_ADDR":             ":8080",
}

// LoadConfig reads .env from the working directory if there is one. Environment variables
// always win over the file.
func LoadConfig() (Config, error) {
	return loadConfig(".env")
}

func loadConfig(file string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("env")

	for key, value := range configDefaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c := Config{}
	err = v.Unmarshal(&c)
	if err != nil {
		return Config{}, err
	}

	if c.PostgresUrl == "" {
		return Config{}, errors.New("POSTGRES_URL is required")
	}
	if c.EnableJournal && c.JournalPostgresUrl == "" {
		return Config{}, errors.New("JOURNAL_POSTGRES_URL is required when ENABLE_JOURNAL is set")
	}
	if c.PollInterval <= 0 {
		return Config{}, errors.New("POLL_INTERVAL must be positive")
	}

	return c, nil
}
