package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-yaml/yaml"
)

type Config struct {
	Server    Server    `yaml:"server"`
	Slack     Slack     `yaml:"slack"`
	Emoji     Emoji     `yaml:"emoji"`
	Hackatime Hackatime `yaml:"hackatime"`
}

type Server struct {
	ListenAddr          string `yaml:"listenAddr" env:"LISTEN_ADDR"`
	EnableTrace         bool   `yaml:"enableTrace"`
	TraceEndpoint       string `yaml:"traceEndpoint"`
	MemcachedAddr       string `yaml:"memcachedAddr"`
	PageCacheTTLSeconds int    `yaml:"pageCacheTTLSeconds"`
}

type Slack struct {
	BotToken string `yaml:"botToken" env:"SLACK_BOT_TOKEN"`
}

type Emoji struct {
	CachePath              string `yaml:"cachePath"`
	RefreshIntervalSeconds int    `yaml:"refreshIntervalSeconds"`
	RedisAddr              string `yaml:"redisAddr"`
	RedisDB                int    `yaml:"redisDB"`
}

type Hackatime struct {
	BaseURL string `yaml:"baseURL" env:"HACKATIME_BASE_URL"`
	APIKey  string `yaml:"apiKey" env:"HACKATIME_API_KEY"`
}

// Load reads the yaml config file, then applies environment overrides for
// the secrets. A missing file is fine when everything comes from the
// environment.
func Load(path string) (Config, error) {
	config := defaults()

	file, err := os.Open(path)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return Config{}, err
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}

	if err := env.Parse(&config); err != nil {
		return Config{}, err
	}

	return config, nil
}

func defaults() Config {
	return Config{
		Server: Server{
			ListenAddr:          ":8000",
			PageCacheTTLSeconds: 30,
		},
		Emoji: Emoji{
			CachePath:              "emoji.json",
			RefreshIntervalSeconds: 60,
		},
		Hackatime: Hackatime{
			BaseURL: "https://hackatime.hackclub.com/api/v1",
		},
	}
}

func (e Emoji) RefreshInterval() time.Duration {
	return time.Duration(e.RefreshIntervalSeconds) * time.Second
}
