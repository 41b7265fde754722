package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Http    Http    `yaml:"http"`
	Db      Db      `yaml:"db"`
	Uploads Uploads `yaml:"uploads"`
	Logging Logging `yaml:"logging"`
}

type Http struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Db struct {
	Path string `yaml:"path"`
}

type Uploads struct {
	Dir              string `yaml:"dir"`
	MaxFileSizeBytes int64  `yaml:"max_file_size_bytes"`
}

type Logging struct {
	Level string `yaml:"level"`
	Json  bool   `yaml:"json"`
}

const defaultMaxFileSize = 50 << 20 // 50 MiB, same cap the upload middleware always had

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var cfg Config
	mustLoadPath(path.Join(configFolder, "config.yaml"), &cfg)
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Http.Port == 0 {
		c.Http.Port = 8080
	}
	if c.Db.Path == "" {
		c.Db.Path = "data/idears.db"
	}
	if c.Uploads.Dir == "" {
		c.Uploads.Dir = "uploads"
	}
	if c.Uploads.MaxFileSizeBytes == 0 {
		c.Uploads.MaxFileSizeBytes = defaultMaxFileSize
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
