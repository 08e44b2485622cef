package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/flexbone/ocr-go/pkg/configs"
	middleware "github.com/flexbone/ocr-go/pkg/middlewares"
	route "github.com/flexbone/ocr-go/pkg/routes"
	service "github.com/flexbone/ocr-go/pkg/services"
	"github.com/flexbone/ocr-go/pkg/utils"
)

func main() {
	// .env가 있으면 환경 변수로 로드 (없어도 무방)
	_ = godotenv.Load()

	// 메트릭 초기화
	utils.InitMetrics()

	config := configs.GetConfig()
	services := service.NewServiceContainer(config)

	app := fiber.New(fiber.Config{
		AppName:   config.Server.AppName,
		BodyLimit: int(config.MaxFileSizeBytes()) * (config.OCR.MaxBatchImages + 1),
	})

	// 미들웨어 설정
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Prometheus())

	// 라우트 설정
	route.SetupRoutes(app, config, services)

	utils.Info("server", "%s 시작 (버전 %s, 포트 %s)",
		config.Server.AppName, configs.AppVersion, config.Server.Port)

	log.Fatal(app.Listen(":" + config.Server.Port))
}
