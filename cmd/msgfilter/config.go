package main

import (
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// MSGFILTER_COLOURS highlights redaction tags in the output
	Colours bool `envconfig:"MSGFILTER_COLOURS" default:"true"`
	// MSGFILTER_BLOCKLIST_FILE is a YAML blocklist applied after redaction
	BlocklistFile string `envconfig:"MSGFILTER_BLOCKLIST_FILE"`
	CensorChar    string `envconfig:"MSGFILTER_CENSOR_CHAR" default:"*"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if !cfg.Colours {
		color.Disable()
	}
	return cfg, nil
}
