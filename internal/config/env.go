package config

import "github.com/caarlos0/env/v11"

// Env holds process-level settings read from the environment. YAML carries
// game balance; the environment carries deployment knobs.
type Env struct {
	Addr       string `env:"SLAYTHECLI_ADDR" envDefault:":8080"`
	ConfigPath string `env:"SLAYTHECLI_CONFIG"`
	Seed       int64  `env:"SLAYTHECLI_SEED"`
	LogLevel   string `env:"SLAYTHECLI_LOG_LEVEL" envDefault:"info"`
}

func FromEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
