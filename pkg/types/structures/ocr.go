package structures

import "time"

// RecognitionResult는 OCR 엔진이 반환한 인식 결과입니다.
// 동일한 지문(fingerprint)에 대해 한 번 생성되면 변경되지 않습니다.
type RecognitionResult struct {
	Text             string  `json:"text"`
	Confidence       float64 `json:"confidence"`
	DetectedLanguage string  `json:"detectedLanguage,omitempty"`
	SourceLatencyMs  int64   `json:"sourceLatencyMs"`
}

// CacheEntry는 지문별 OCR 결과 캐시 항목입니다.
// Put 이후에는 수정되지 않으며 용량 초과 또는 TTL 만료 시 제거됩니다.
type CacheEntry struct {
	Fingerprint string
	Result      *RecognitionResult
	CreatedAt   time.Time
}

// PipelineOutcome은 이미지 한 장에 대한 파이프라인 처리 결과입니다.
// 배치 내부든 단건이든 이미지당 하나씩 생성됩니다.
type PipelineOutcome struct {
	Filename         string
	Success          bool
	Result           *RecognitionResult
	ErrorCode        string
	ErrorMessage     string
	ProcessingTimeMs int64

	// Err는 경계에서 오류 봉투를 만들 때 사용하는 원본 오류입니다
	Err *AppError
}

// BatchItem은 배치 요청의 항목 하나입니다 (파일명 + 원본 바이트).
type BatchItem struct {
	Filename string
	Content  []byte
}

// BatchReport는 배치 전체의 집계 결과입니다.
// Results의 순서는 제출 순서와 항상 일치합니다.
type BatchReport struct {
	TotalImages           int
	SuccessfulCount       int
	FailedCount           int
	TotalProcessingTimeMs int64
	Results               []*PipelineOutcome
}

// CacheStats는 캐시의 현재 상태 요약입니다.
type CacheStats struct {
	Size     int           `json:"size"`
	Capacity int           `json:"capacity"`
	TTL      time.Duration `json:"ttl"`
}
