package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 服务端配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig 游戏配置
type GameConfig struct {
	RoundDuration int `yaml:"round_duration"` // 一局倒计时（秒）
	MaxSwaps      int `yaml:"max_swaps"`      // 每局每人换牌上限
	HandSize      int `yaml:"hand_size"`      // 每人手牌数
}

// RoundDurationTime 返回一局倒计时时长
func (c *GameConfig) RoundDurationTime() time.Duration {
	return time.Duration(c.RoundDuration) * time.Second
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 设置默认值
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 1781
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Game.RoundDuration == 0 {
		cfg.Game.RoundDuration = 60
	}
	if cfg.Game.MaxSwaps == 0 {
		cfg.Game.MaxSwaps = 3
	}
	if cfg.Game.HandSize == 0 {
		cfg.Game.HandSize = 3
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 1781,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Game: GameConfig{
			RoundDuration: 60,
			MaxSwaps:      3,
			HandSize:      3,
		},
	}
}
