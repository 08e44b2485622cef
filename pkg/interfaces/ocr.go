package _interface

import (
	"context"

	structure "github.com/flexbone/ocr-go/pkg/types/structures"
)

// ImageValidator는 업로드된 이미지 바이트를 검증하는 인터페이스입니다
type ImageValidator interface {
	// Validate는 크기 → 확장자 → 매직 바이트 → 디코딩 순서로 검사하고
	// 첫 번째 실패에서 중단합니다
	Validate(content []byte, filename string) *structure.AppError
}

// OCRService는 이미지 바이트에서 텍스트를 추출하는 인터페이스입니다
type OCRService interface {
	// Recognize는 외부 OCR 엔진을 호출하여 인식 결과를 반환합니다.
	// 텍스트가 없는 이미지는 오류가 아니라 빈 결과로 반환됩니다
	Recognize(ctx context.Context, content []byte) (*structure.RecognitionResult, *structure.AppError)
}

// OCRCacheRepository는 지문별 인식 결과 캐시 인터페이스입니다
type OCRCacheRepository interface {
	// Get은 지문에 대한 캐시 결과를 반환합니다. 만료된 항목은 미스로 처리됩니다
	Get(fingerprint string) (*structure.RecognitionResult, bool)

	// Put은 지문에 대한 결과를 저장하거나 갱신합니다
	Put(fingerprint string, result *structure.RecognitionResult)

	// Stats는 캐시의 현재 상태 요약을 반환합니다
	Stats() structure.CacheStats
}

// PipelineService는 이미지 한 장에 대한 처리 파이프라인 인터페이스입니다
type PipelineService interface {
	// Process는 검증 → 지문 → 캐시 조회 → 인식 → 캐시 저장을 수행하고
	// 실패를 포함한 결과를 PipelineOutcome으로 반환합니다
	Process(ctx context.Context, filename string, content []byte) *structure.PipelineOutcome
}

// BatchService는 배치 요청을 병렬로 처리하는 인터페이스입니다
type BatchService interface {
	// RunBatch는 각 항목을 독립된 파이프라인으로 동시에 처리하고
	// 제출 순서대로 정렬된 집계 결과를 반환합니다
	RunBatch(ctx context.Context, items []structure.BatchItem) *structure.BatchReport
}

// AuthService는 데모 사용자 인증과 토큰 발급 인터페이스입니다
type AuthService interface {
	// Login은 자격 증명을 확인하고 액세스 토큰을 발급합니다
	Login(username string, password string) (string, int64, *structure.AppError)

	// VerifyToken은 토큰을 검증하고 사용자 이름을 반환합니다
	VerifyToken(token string) (string, *structure.AppError)
}
