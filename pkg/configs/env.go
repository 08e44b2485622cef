package configs

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// 앱 버전을 저장하는 전역 변수
var AppVersion string

type EnvConfig struct {
	Server struct {
		Port    string
		AppName string
	}
	Upload struct {
		MaxFileSizeMB     int
		AllowedExtensions []string
	}
	Cache struct {
		Capacity int
		TTL      time.Duration
	}
	OCR struct {
		Language       string
		Timeout        time.Duration
		MaxConcurrency int
		MaxBatchImages int
	}
	Auth struct {
		Enabled              bool
		JWTSecret            string
		JWTExpirationMinutes int
		DemoUsers            string
	}
	RateLimit struct {
		Enabled       bool
		Requests      int
		WindowSeconds int
	}
}

var (
	configInstance *EnvConfig
	once           sync.Once
)

// init 함수에서 VERSION 환경 변수 로드
func init() {
	AppVersion = os.Getenv("VERSION")
	if AppVersion == "" {
		AppVersion = "1.0.0"
	}
}

// MaxFileSizeBytes는 업로드 허용 최대 크기를 바이트 단위로 반환합니다.
func (c *EnvConfig) MaxFileSizeBytes() int64 {
	return int64(c.Upload.MaxFileSizeMB) * 1024 * 1024
}

// ParsedDemoUsers는 "user1:pass1,user2:pass2" 형식의 데모 사용자 설정을 맵으로 변환합니다.
func (c *EnvConfig) ParsedDemoUsers() map[string]string {
	users := make(map[string]string)
	for _, pair := range strings.Split(c.Auth.DemoUsers, ",") {
		if idx := strings.Index(pair, ":"); idx > 0 {
			username := strings.TrimSpace(pair[:idx])
			password := strings.TrimSpace(pair[idx+1:])
			users[username] = password
		}
	}
	return users
}

// loadConfig는 환경 변수를 로드하고 기본값을 적용하는 내부 함수
func loadConfig() *EnvConfig {
	viper.SetConfigFile(".env")
	viper.ReadInConfig()
	viper.AutomaticEnv()

	// 기본값 설정
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("APP_NAME", "Flexbone OCR API")
	viper.SetDefault("MAX_FILE_SIZE_MB", 10)
	viper.SetDefault("ALLOWED_EXTENSIONS", "jpg,jpeg,png,gif")
	viper.SetDefault("CACHE_CAPACITY", 100)
	viper.SetDefault("CACHE_TTL_SECONDS", 3600)
	viper.SetDefault("OCR_LANGUAGE", "eng")
	viper.SetDefault("OCR_TIMEOUT_SECONDS", 60)
	viper.SetDefault("OCR_MAX_CONCURRENCY", 0)
	viper.SetDefault("MAX_BATCH_IMAGES", 10)
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("JWT_SECRET_KEY", "change-me-in-production")
	viper.SetDefault("JWT_EXPIRATION_MINUTES", 30)
	viper.SetDefault("DEMO_USERS", "demo:demo123,admin:admin123")
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)

	config := &EnvConfig{}

	config.Server.Port = viper.GetString("PORT")
	config.Server.AppName = viper.GetString("APP_NAME")

	config.Upload.MaxFileSizeMB = viper.GetInt("MAX_FILE_SIZE_MB")
	for _, ext := range strings.Split(viper.GetString("ALLOWED_EXTENSIONS"), ",") {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" {
			config.Upload.AllowedExtensions = append(config.Upload.AllowedExtensions, ext)
		}
	}

	config.Cache.Capacity = viper.GetInt("CACHE_CAPACITY")
	config.Cache.TTL = time.Duration(viper.GetInt("CACHE_TTL_SECONDS")) * time.Second

	config.OCR.Language = viper.GetString("OCR_LANGUAGE")
	config.OCR.Timeout = time.Duration(viper.GetInt("OCR_TIMEOUT_SECONDS")) * time.Second
	config.OCR.MaxConcurrency = viper.GetInt("OCR_MAX_CONCURRENCY")
	config.OCR.MaxBatchImages = viper.GetInt("MAX_BATCH_IMAGES")

	config.Auth.Enabled = viper.GetBool("AUTH_ENABLED")
	config.Auth.JWTSecret = viper.GetString("JWT_SECRET_KEY")
	config.Auth.JWTExpirationMinutes = viper.GetInt("JWT_EXPIRATION_MINUTES")
	config.Auth.DemoUsers = viper.GetString("DEMO_USERS")

	config.RateLimit.Enabled = viper.GetBool("RATE_LIMIT_ENABLED")
	config.RateLimit.Requests = viper.GetInt("RATE_LIMIT_REQUESTS")
	config.RateLimit.WindowSeconds = viper.GetInt("RATE_LIMIT_WINDOW_SECONDS")

	return config
}

// GetConfig는 EnvConfig의 싱글톤 인스턴스를 반환합니다.
// 처음 호출 시에만 환경 변수를 로드하고 이후 호출에서는 캐시된 인스턴스를 반환합니다.
func GetConfig() *EnvConfig {
	once.Do(func() {
		configInstance = loadConfig()
	})
	return configInstance
}
