package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultGames     = 100
	defaultRedisAddr = "localhost:6379"
)

// defaultAgents 默认对局的四家策略，按座位 N、E、S、W
var defaultAgents = []string{"random", "random", "random", "lowcard"}

// Config 对局配置
type Config struct {
	Game   GameConfig  `yaml:"game"`
	Agents []string    `yaml:"agents"`
	Redis  RedisConfig `yaml:"redis"`
	Log    LogConfig   `yaml:"log"`
}

// GameConfig 引擎参数
type GameConfig struct {
	Seed          uint64 `yaml:"seed"`            // 0 表示取当前时间
	AllowStepBack bool   `yaml:"allow_step_back"` // 是否支持悔棋
	Games         int    `yaml:"games"`           // 评测对局数
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LogConfig 日志配置
type LogConfig struct {
	Enabled bool `yaml:"enabled"`
	Debug   bool `yaml:"debug"`
}

// Load 加载配置文件，缺省项使用默认值，环境变量优先
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Games: defaultGames,
		},
		Agents: append([]string(nil), defaultAgents...),
		Redis: RedisConfig{
			Addr: defaultRedisAddr,
		},
		Log: LogConfig{
			Enabled: true,
		},
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Game.Games == 0 {
		cfg.Game.Games = defaultGames
	}
	if len(cfg.Agents) == 0 {
		cfg.Agents = append([]string(nil), defaultAgents...)
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = defaultRedisAddr
	}
}

// loadFromEnv 用 MARIA_* 环境变量覆盖配置
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("MARIA_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MARIA_SEED: %w", err)
		}
		cfg.Game.Seed = seed
	}
	if v := os.Getenv("MARIA_GAMES"); v != "" {
		games, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MARIA_GAMES: %w", err)
		}
		cfg.Game.Games = games
	}
	if v := os.Getenv("MARIA_AGENTS"); v != "" {
		cfg.Agents = strings.Split(v, ",")
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
		cfg.Redis.Enabled = true
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	return nil
}

// Validate 检查配置是否可用
func (c *Config) Validate() error {
	if len(c.Agents) != 4 {
		return fmt.Errorf("agents 需要 4 个，实际 %d 个", len(c.Agents))
	}
	if c.Game.Games < 0 {
		return fmt.Errorf("games 不能为负数: %d", c.Game.Games)
	}
	return nil
}
