package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// AppConfig 全局配置实例
var AppConfig *Config

// Config 应用配置结构
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	MongoDB  MongoDBConfig  `yaml:"mongodb"`
	Cache    CacheConfig    `yaml:"cache"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port         string        `yaml:"port"`
	Mode         string        `yaml:"mode"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"`
	DSN             string        `yaml:"dsn"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	LogLevel        string        `yaml:"log_level"`
}

// RedisConfig Redis配置
type RedisConfig struct {
	Addr         string        `yaml:"addr"`
	Password     string        `yaml:"password"`
	DB           int           `yaml:"db"`
	PoolSize     int           `yaml:"pool_size"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	SigningKey    string        `yaml:"signing_key"`
	Expiry        time.Duration `yaml:"expiry"`
	RefreshExpiry time.Duration `yaml:"refresh_expiry"`
	Issuer        string        `yaml:"issuer"`
}

// MongoDBConfig MongoDB配置（审核日志存储）
type MongoDBConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

// CacheConfig 页面缓存配置
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled"`
	PageTTL  time.Duration `yaml:"page_ttl"`
	LocalTTL time.Duration `yaml:"local_ttl"`
}

// InitConfig 初始化配置
func InitConfig() error {
	// 加载环境变量
	if err := loadEnv(); err != nil {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	// 创建默认配置
	config := &Config{}
	setDefaults(config)

	// 尝试从配置文件加载
	if err := loadFromFile(config); err != nil {
		log.Printf("Warning: failed to load config file: %v", err)
	}

	// 从环境变量覆盖配置
	loadFromEnv(config)

	// 验证配置
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	AppConfig = config
	return nil
}

// GetConfig 获取配置，未初始化时返回默认值
func GetConfig() *Config {
	if AppConfig == nil {
		cfg := &Config{}
		setDefaults(cfg)
		return cfg
	}
	return AppConfig
}

// loadEnv 加载环境变量文件
func loadEnv() error {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	envFiles := []string{
		".env",
		fmt.Sprintf(".env.%s", env),
	}

	var lastErr error
	loaded := false
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			if err := godotenv.Load(file); err != nil {
				lastErr = err
			} else {
				loaded = true
			}
		}
	}

	if !loaded && lastErr != nil {
		return lastErr
	}
	return nil
}

// setDefaults 设置默认配置
func setDefaults(config *Config) {
	config.Server = ServerConfig{
		Port:         "8901",
		Mode:         "debug",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	config.Database = DatabaseConfig{
		Driver:          "mysql",
		MaxIdleConns:    10,
		MaxOpenConns:    100,
		ConnMaxLifetime: time.Hour,
		LogLevel:        "info",
	}
	config.Redis = RedisConfig{
		Addr:         "localhost:6379",
		DB:           0,
		PoolSize:     10,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
	config.JWT = JWTConfig{
		Expiry:        24 * time.Hour,
		RefreshExpiry: 7 * 24 * time.Hour,
		Issuer:        "petadot",
	}
	config.MongoDB = MongoDBConfig{
		Database:   "petadot",
		Collection: "moderation_audit",
	}
	config.Cache = CacheConfig{
		Enabled:  true,
		PageTTL:  10 * time.Minute,
		LocalTTL: time.Minute,
	}
}

// loadFromFile 从yaml配置文件加载
func loadFromFile(config *Config) error {
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return fmt.Errorf("config file %s not found", configFile)
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, config)
}

// loadFromEnv 从环境变量覆盖配置
func loadFromEnv(config *Config) {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		config.Server.Port = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		config.Server.Mode = v
	}
	if v := os.Getenv("MYSQL_DSN"); v != "" {
		config.Database.DSN = v
	}
	if v := os.Getenv("DB_MAX_OPEN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			config.Database.MaxOpenConns = parsed
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		config.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		config.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			config.Redis.DB = parsed
		}
	}
	if v := os.Getenv("JWT_SIGNING_KEY"); v != "" {
		config.JWT.SigningKey = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		config.MongoDB.URI = v
	}
}

// validateConfig 验证配置
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if config.JWT.SigningKey == "" && config.Server.Mode == "release" {
		return fmt.Errorf("JWT signing key is required in release mode")
	}
	return nil
}
