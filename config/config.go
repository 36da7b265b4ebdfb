package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App    *App    `json:"app" yaml:"app"`
	MySQL  *MySQL  `json:"mysql" yaml:"mysql"`
	Redis  *Redis  `json:"redis" yaml:"redis"`
	Jwt    *Jwt    `json:"jwt" yaml:"jwt"`
	Server *Server `json:"server" yaml:"server"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("failed to parse config %s: %v", filename, err))
	}

	return &conf
}

func (c *Config) Debug() bool {
	return c.App.Debug
}
