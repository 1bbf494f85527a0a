package main

import (
	"github.com/kbukum/ssemock/config"
	"github.com/kbukum/ssemock/eventsource"
	"github.com/kbukum/ssemock/validation"
)

// CLIConfig is the ssemock binary configuration.
type CLIConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	// Defaults apply to every source the CLI creates.
	Defaults eventsource.Config `yaml:"defaults" mapstructure:"defaults"`
	// Scripts are the script files to play, in order.
	Scripts []string `yaml:"scripts" mapstructure:"scripts" validate:"min=1,dive,required"`
}

// ApplyDefaults applies defaults to the embedded service config.
func (c *CLIConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "ssemock"
	}
	c.ServiceConfig.ApplyDefaults()
}

// Validate checks the service config and the script list.
func (c *CLIConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}
