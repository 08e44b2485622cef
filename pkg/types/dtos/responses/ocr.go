package response

// Extract는 단건 텍스트 추출 성공 응답입니다.
// Message는 텍스트가 비어 있을 때만 채워집니다.
type Extract struct {
	Success          bool    `json:"success"`
	Text             string  `json:"text"`
	Confidence       float64 `json:"confidence"`
	ProcessingTimeMs int64   `json:"processing_time_ms"`
	Message          string  `json:"message,omitempty"`
}

// BatchItemResult는 배치 응답의 항목별 결과입니다.
type BatchItemResult struct {
	Filename         string  `json:"filename"`
	Success          bool    `json:"success"`
	Text             string  `json:"text"`
	Confidence       float64 `json:"confidence"`
	ProcessingTimeMs int64   `json:"processing_time_ms"`
	ErrorCode        string  `json:"error_code,omitempty"`
	Error            string  `json:"error,omitempty"`
}

// Batch는 배치 추출 응답입니다. 항목별 실패가 있어도 HTTP 200으로 반환됩니다.
type Batch struct {
	Success               bool              `json:"success"`
	TotalImages           int               `json:"total_images"`
	Successful            int               `json:"successful"`
	Failed                int               `json:"failed"`
	TotalProcessingTimeMs int64             `json:"total_processing_time_ms"`
	Results               []BatchItemResult `json:"results"`
}

// ErrorDetail은 오류 응답의 오류 정보입니다.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details"`
}

// Metadata는 오류 응답에 첨부되는 요청 메타데이터입니다.
type Metadata struct {
	RequestID        string `json:"request_id"`
	ProcessingTimeMs int64  `json:"processing_time_ms"`
}

// Error는 모든 실패 응답의 공통 봉투입니다.
type Error struct {
	Success  bool        `json:"success"`
	Error    ErrorDetail `json:"error"`
	Metadata Metadata    `json:"metadata"`
}
