package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Log      LogConfig
	CORS     CORSConfig
	Metrics  MetricsConfig
}

type ServerConfig struct {
	Port string `validate:"required,numeric"`
	Mode string `validate:"oneof=debug release test"`
}

// StoreConfig 存储后端选择
type StoreConfig struct {
	Driver string `validate:"oneof=memory postgres sqlite"` // memory / postgres / sqlite
}

type DatabaseConfig struct {
	Host       string `validate:"required_if=Driver postgres"` // postgres 必填，无默认值
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string // sqlite 文件路径，":memory:" 为内存库
	Driver     string `validate:"-"`
}

type LogConfig struct {
	Level      string `validate:"oneof=trace debug info warn warning error fatal panic"`
	FilePath   string
	MaxSize    int    `validate:"min=1"` // MB
	MaxBackups int    `validate:"min=0"` // 保留的备份文件数
	MaxAge     int    `validate:"min=0"` // 保留天数
	Compress   bool   // 是否压缩
	Format     string `validate:"oneof=json text"` // json 或 text
}

type CORSConfig struct {
	AllowOrigins     []string `validate:"min=1"` // 允许的源
	AllowMethods     []string // 允许的HTTP方法
	AllowHeaders     []string // 允许的请求头
	ExposeHeaders    []string // 暴露的响应头
	AllowCredentials bool     // 是否允许携带凭证
	MaxAge           int      // 预检请求缓存时间（小时）
}

type MetricsConfig struct {
	Enabled bool
	Path    string `validate:"startswith=/"`
}

// 获取环境变量，如果不存在则使用默认值
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// 获取环境变量转换为int
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// 获取环境变量转换为bool
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true"
	}
	return defaultValue
}

// 获取环境变量转换为字符串数组（逗号分隔）
func getEnvAsStringArray(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return defaultValue
}

// LoadConfig 加载 .env 与环境变量，并校验
func LoadConfig() (*Config, error) {
	// .env 不存在时直接使用环境变量
	_ = godotenv.Load()

	driver := strings.ToLower(getEnv("STORE_DRIVER", "memory"))

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Mode: getEnv("SERVER_MODE", "debug"),
		},
		Store: StoreConfig{
			Driver: driver,
		},
		Database: DatabaseConfig{
			Host:       getEnv("DB_HOST", ""),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			DBName:     getEnv("DB_NAME", "rentals"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("SQLITE_PATH", "rentals.db"),
			Driver:     driver,
		},
		Log: LogConfig{
			Level:      strings.ToLower(getEnv("LOG_LEVEL", "info")),
			FilePath:   getEnv("LOG_FILE_PATH", ""),
			MaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
			MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 7),
			MaxAge:     getEnvAsInt("LOG_MAX_AGE", 30),
			Compress:   getEnvAsBool("LOG_COMPRESS", true),
			Format:     getEnv("LOG_FORMAT", "json"),
		},
		CORS: CORSConfig{
			AllowOrigins:     getEnvAsStringArray("CORS_ALLOW_ORIGINS", []string{"*"}),
			AllowMethods:     getEnvAsStringArray("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowHeaders:     getEnvAsStringArray("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "X-Requested-With"}),
			ExposeHeaders:    getEnvAsStringArray("CORS_EXPOSE_HEADERS", []string{"Content-Length", "Content-Type"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
			MaxAge:           getEnvAsInt("CORS_MAX_AGE", 12),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBool("METRICS_ENABLED", true),
			Path:    getEnv("METRICS_PATH", "/metrics"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

var validate = validator.New()

// Validate 校验配置项
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
