package main

import (
	"os"

	"github.com/joshuapare/shellkit/ioctx"
	"gopkg.in/yaml.v3"
)

// Config is the optional --config YAML file's shape: initial pwd, variables,
// and positional arguments to seed a UserContext with before running a
// script, a REPL, or the TUI explorer.
type Config struct {
	Pwd       string            `yaml:"pwd"`
	Variables map[string]string `yaml:"variables"`
	Arguments []string          `yaml:"arguments"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyTo seeds uc with the config's pwd, variables, and arguments.
func (c *Config) ApplyTo(uc *ioctx.UserContext) {
	if c == nil {
		return
	}
	if c.Pwd != "" {
		uc.SetPwd(c.Pwd)
	}
	for k, v := range c.Variables {
		uc.SetValue(k, v)
	}
	for _, a := range c.Arguments {
		uc.AddArgument(a)
	}
}
