package service

import (
	"context"
	"time"

	_interface "github.com/flexbone/ocr-go/pkg/interfaces"
	structure "github.com/flexbone/ocr-go/pkg/types/structures"
	"github.com/flexbone/ocr-go/pkg/utils"
)

// PipelineImpl은 이미지 한 장의 처리 파이프라인 구현체입니다.
// 검증 → 지문 → 캐시 조회 → 인식 → 캐시 저장 순서로 수행하며
// 모든 실패는 PipelineOutcome의 데이터로 반환됩니다.
type PipelineImpl struct {
	validator _interface.ImageValidator
	ocr       _interface.OCRService
	cache     _interface.OCRCacheRepository
}

// NewPipelineService는 새 파이프라인 서비스를 생성합니다.
// 캐시는 명시적으로 생성된 인스턴스를 주입받습니다.
func NewPipelineService(
	validator _interface.ImageValidator,
	ocr _interface.OCRService,
	cache _interface.OCRCacheRepository,
) _interface.PipelineService {
	return &PipelineImpl{
		validator: validator,
		ocr:       ocr,
		cache:     cache,
	}
}

// Process는 이미지 한 장을 처리하고 결과를 반환합니다.
// 처리 시간은 검증 시작부터 결과 생성까지의 전체 구간을 측정합니다.
func (p *PipelineImpl) Process(ctx context.Context, filename string, content []byte) *structure.PipelineOutcome {
	start := time.Now()

	// 1. 검증
	if appErr := p.validator.Validate(content, filename); appErr != nil {
		return &structure.PipelineOutcome{
			Filename:         filename,
			Success:          false,
			ErrorCode:        appErr.Code,
			ErrorMessage:     appErr.Message,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
			Err:              appErr,
		}
	}

	// 2. 지문 생성
	fingerprint := Fingerprint(content)

	// 3. 캐시 조회
	if cached, hit := p.cache.Get(fingerprint); hit {
		utils.Debug("pipeline", "캐시 히트: %s", fingerprint[:16])
		return &structure.PipelineOutcome{
			Filename:         filename,
			Success:          true,
			Result:           cached,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		}
	}

	// 4. 캐시 미스: OCR 엔진 호출
	result, appErr := p.ocr.Recognize(ctx, content)
	if appErr != nil {
		return &structure.PipelineOutcome{
			Filename:         filename,
			Success:          false,
			ErrorCode:        appErr.Code,
			ErrorMessage:     appErr.Message,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
			Err:              appErr,
		}
	}

	// 5. 성공 결과 캐시 저장
	p.cache.Put(fingerprint, result)

	return &structure.PipelineOutcome{
		Filename:         filename,
		Success:          true,
		Result:           result,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
}
