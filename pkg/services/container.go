package service

import (
	"github.com/flexbone/ocr-go/pkg/configs"
	_interface "github.com/flexbone/ocr-go/pkg/interfaces"
	repository "github.com/flexbone/ocr-go/pkg/repositories"
)

// NewServiceContainer는 새로운 서비스 컨테이너를 생성합니다.
// 결과 캐시는 여기서 한 번 생성되어 파이프라인에 주입됩니다 (전역 상태 없음).
func NewServiceContainer(config *configs.EnvConfig) *_interface.ServiceContainer {
	ocrCache := repository.NewOCRCacheRepository(config.Cache.Capacity, config.Cache.TTL)
	validator := NewImageValidator(config)
	ocrService := NewOCRService(config)
	pipelineService := NewPipelineService(validator, ocrService, ocrCache)
	batchService := NewBatchService(config, pipelineService)
	authService := NewAuthService(config)

	return &_interface.ServiceContainer{
		Validator:       validator,
		OcrService:      ocrService,
		PipelineService: pipelineService,
		BatchService:    batchService,
		AuthService:     authService,
		OcrCache:        ocrCache,
	}
}
