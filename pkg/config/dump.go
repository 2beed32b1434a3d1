package config

import (
	gotoml "github.com/pelletier/go-toml/v2"
)

// Marshal renders the configuration as a TOML document, in the same
// shape the user config file accepts
func (c *Config) Marshal() ([]byte, error) {
	return gotoml.Marshal(c)
}
