package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type Configuration struct {
	Server ServerConfig `yaml:"server"`
	Gate   GateConfig   `yaml:"gate"`
	Label  LabelConfig  `yaml:"label"`
}

type ServerConfig struct {
	Port        int         `yaml:"port"`
	Concurrency int         `yaml:"concurrency"`
	LogConfig   LogConfig   `yaml:"log"`
	CleanConfig CleanConfig `yaml:"clean"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type CleanConfig struct {
	Schedule string `yaml:"schedule"`
}

// GateConfig holds the single shared secret guarding the application.
type GateConfig struct {
	Secret string `yaml:"secret"`
}

// LabelConfig controls the QR labels: BaseURL is the public address the
// deep link points back to, Width the pixel size of the generated image.
type LabelConfig struct {
	BaseURL string `yaml:"base_url"`
	Width   int    `yaml:"width"`
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
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.Concurrency == 0 {
		config.Server.Concurrency = 256
	}
	if config.Server.CleanConfig.Schedule == "" {
		config.Server.CleanConfig.Schedule = "@hourly"
	}
	if config.Label.Width == 0 {
		config.Label.Width = 300
	}
	return &config, nil
}
