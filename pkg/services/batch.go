package service

import (
	"context"
	"sync"
	"time"

	"github.com/flexbone/ocr-go/pkg/configs"
	_interface "github.com/flexbone/ocr-go/pkg/interfaces"
	structure "github.com/flexbone/ocr-go/pkg/types/structures"
	"github.com/flexbone/ocr-go/pkg/utils"
)

// BatchImpl은 배치 요청 오케스트레이터 구현체입니다.
// 각 항목을 독립된 파이프라인으로 동시에 처리하며,
// 한 항목의 실패가 다른 항목에 영향을 주지 않습니다.
type BatchImpl struct {
	pipeline       _interface.PipelineService
	maxConcurrency int
}

// NewBatchService는 새 배치 서비스를 생성합니다
func NewBatchService(config *configs.EnvConfig, pipeline _interface.PipelineService) _interface.BatchService {
	return &BatchImpl{
		pipeline:       pipeline,
		maxConcurrency: config.OCR.MaxConcurrency,
	}
}

// RunBatch는 배치의 모든 항목을 동시에 처리하고 집계 결과를 반환합니다.
// Results는 완료 순서와 무관하게 제출 순서를 유지합니다.
// TotalProcessingTimeMs는 항목별 시간의 합이 아니라 배치 전체의 벽시계 시간입니다.
// 항목 수 상한은 호출자(컨트롤러)가 경계에서 먼저 검사합니다.
func (b *BatchImpl) RunBatch(ctx context.Context, items []structure.BatchItem) *structure.BatchReport {
	start := time.Now()

	outcomes := make([]*structure.PipelineOutcome, len(items))

	// 동시 OCR 호출 수 제한 (0이면 배치 크기로만 제한)
	var sem chan struct{}
	if b.maxConcurrency > 0 {
		sem = make(chan struct{}, b.maxConcurrency)
	}

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(idx int, it structure.BatchItem) {
			defer wg.Done()

			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}

			// 파이프라인은 실패를 데이터로 반환하므로 고루틴 간 전파 없음
			outcomes[idx] = b.pipeline.Process(ctx, it.Filename, it.Content)
		}(i, item)
	}
	wg.Wait()

	report := &structure.BatchReport{
		TotalImages:           len(items),
		TotalProcessingTimeMs: time.Since(start).Milliseconds(),
		Results:               outcomes,
	}
	for _, outcome := range outcomes {
		if outcome.Success {
			report.SuccessfulCount++
		} else {
			report.FailedCount++
		}
	}

	utils.Info("batch", "배치 처리 완료: 총 %d건 (성공 %d, 실패 %d, %dms)",
		report.TotalImages, report.SuccessfulCount, report.FailedCount, report.TotalProcessingTimeMs)

	return report
}
