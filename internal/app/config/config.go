package config

import (
	"github.com/cockroachdb/errors"
	"github.com/kelseyhightower/envconfig"
)

// Config is loaded once at process start. Every field has a default so an
// empty environment behaves like the original deployment: listen on :8080
// and read fichas técnicas from public/pdfs.
type Config struct {
	HTTPAddr        string `envconfig:"HTTP_ADDR" default:":8080"`
	SpecsDir        string `envconfig:"SPECS_DIR" default:"public/pdfs"`
	CORSAllowOrigin string `envconfig:"CORS_ALLOW_ORIGIN" default:"*"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string `envconfig:"LOG_FORMAT" default:"text"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}
	return cfg, nil
}
