package _interface

import (
	"github.com/flexbone/ocr-go/pkg/configs"
)

type Service struct {
	Config *configs.EnvConfig
}

// ServiceContainer는 모든 서비스 인스턴스를 보관합니다
type ServiceContainer struct {
	Validator       ImageValidator
	OcrService      OCRService
	PipelineService PipelineService
	BatchService    BatchService
	AuthService     AuthService
	OcrCache        OCRCacheRepository
}
