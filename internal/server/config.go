package server

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/eradate/pkg/era"
	"github.com/dmitrymomot/eradate/pkg/eratime"
)

// Config holds server settings, loaded from the environment.
type Config struct {
	Addr string `env:"ERADATE_HTTP_ADDR" envDefault:":8080"`

	// Path to an era table in the JSON source format; empty uses the embedded table
	EraTable string `env:"ERADATE_ERA_TABLE"`

	// "text" or "json"
	LogFormat string `env:"ERADATE_LOG_FORMAT" envDefault:"text"`

	// Reject in-era years outside the era's span
	Strict bool `env:"ERADATE_STRICT" envDefault:"false"`

	// Fold full-width digits and letters in parse input
	FoldWidth bool `env:"ERADATE_FOLD_WIDTH" envDefault:"true"`

	ReadTimeout     time.Duration `env:"ERADATE_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"ERADATE_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"ERADATE_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"ERADATE_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// DefaultConfig returns a Config with the same values as the env defaults.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		LogFormat:       "text",
		FoldWidth:       true,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 30 * time.Second,
	}
}

// Codec builds the codec described by the config.
func (c Config) Codec() (*eratime.Codec, error) {
	var opts []eratime.Option
	if c.EraTable != "" {
		table, err := era.LoadFile(c.EraTable)
		if err != nil {
			return nil, fmt.Errorf("failed to load era table %s: %w", c.EraTable, err)
		}
		opts = append(opts, eratime.WithTable(table))
	}
	if c.Strict {
		opts = append(opts, eratime.WithStrict())
	}
	if c.FoldWidth {
		opts = append(opts, eratime.WithWidthFolding())
	}
	return eratime.New(opts...)
}
