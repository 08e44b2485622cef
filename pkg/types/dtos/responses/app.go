package response

// Health는 상태 확인 요청에 대한 응답을 나타냅니다.
type Health struct {
	Status  string     `json:"status"`
	Version string     `json:"version"`
	Cache   CacheStats `json:"cache"`
}

// CacheStats는 상태 확인 응답에 포함되는 결과 캐시 요약입니다.
type CacheStats struct {
	Size       int   `json:"size"`
	Capacity   int   `json:"capacity"`
	TTLSeconds int64 `json:"ttl_seconds"`
}

// Token은 로그인 성공 시 발급되는 토큰 응답입니다.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
