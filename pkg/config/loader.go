// Package config loads environment configuration into tagged structs for
// programs embedding the library, such as the example HTTP server. Each
// Load call parses the environment fresh; there is no process-wide cache,
// so tests can vary the environment freely.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a Load call.
type Option func(*loadOptions)

type loadOptions struct {
	envFiles []string
}

// WithEnvFiles loads the given dotenv files into the process environment
// before parsing. Missing files are ignored; already-set variables win.
func WithEnvFiles(paths ...string) Option {
	return func(o *loadOptions) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// Load parses environment variables into the provided struct based on
// `env` field tags.
//
//	type ServerConfig struct {
//		Addr string `env:"ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg, config.WithEnvFiles(".env")); err != nil { ... }
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}
	for _, path := range o.envFiles {
		// The file might not exist and that's ok.
		_ = godotenv.Load(path)
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use for configuration
// the program cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
