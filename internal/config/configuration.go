package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type Configuration struct {
	Server ServerConfig `yaml:"server"`
	Auth   AuthConfig   `yaml:"auth"`
}

type ServerConfig struct {
	Port        int         `yaml:"port"`
	Concurrency int         `yaml:"concurrency"`
	LogConfig   LogConfig   `yaml:"log"`
	SweepConfig SweepConfig `yaml:"sweep"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

// SweepConfig drives the expired-item sweep job.
type SweepConfig struct {
	Schedule string `yaml:"schedule"`
}

// AuthConfig points at the hosted Authorizer instance that owns sessions.
type AuthConfig struct {
	URL         string `yaml:"url"`
	ClientID    string `yaml:"clientId"`
	RedirectURL string `yaml:"redirectUrl"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}
