package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/flexbone/ocr-go/pkg/configs"
	_interface "github.com/flexbone/ocr-go/pkg/interfaces"
	response "github.com/flexbone/ocr-go/pkg/types/dtos/responses"
)

// Health는 서비스 상태와 결과 캐시 요약을 반환하는 핸들러입니다
func Health(cache _interface.OCRCacheRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats := cache.Stats()

		return c.JSON(response.Health{
			Status:  "healthy",
			Version: configs.AppVersion,
			Cache: response.CacheStats{
				Size:       stats.Size,
				Capacity:   stats.Capacity,
				TTLSeconds: int64(stats.TTL.Seconds()),
			},
		})
	}
}

// Metrics는 프로메테우스 메트릭을 제공하는 핸들러입니다
func Metrics() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// Root는 루트 경로 안내 핸들러입니다
func Root(appName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to " + appName,
			"health":  "/api/v1/health",
		})
	}
}
