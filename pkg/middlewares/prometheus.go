package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/flexbone/ocr-go/pkg/configs"
	"github.com/flexbone/ocr-go/pkg/utils"
)

// Prometheus 미들웨어는 HTTP 요청에 대한 메트릭을 수집합니다
func Prometheus() fiber.Handler {
	serverName := configs.GetConfig().Server.AppName

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()

		method := c.Method()
		path := c.Route().Path
		status := c.Response().StatusCode()

		utils.RecordRequest(method, path, status, duration)

		// 서버 부하 게이지 갱신 (내부에서 10초에 한 번만 수집)
		utils.UpdateServerLoadMetrics(serverName)

		return err
	}
}
