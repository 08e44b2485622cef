package request

// Login은 데모 사용자 로그인 요청입니다.
type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
