package dto

// DebugEnvResponse reports whether a model credential is configured. The key
// value itself is never exposed, only its length.
type DebugEnvResponse struct {
	HasKey    bool `json:"has_key"`
	KeyLength int  `json:"key_length"`
	DemoMode  bool `json:"demo_mode"`
}

type GeminiPingResponse struct {
	OK            bool   `json:"ok"`
	ModelResponse string `json:"model_response,omitempty"`
	ErrorCode     string `json:"error_code,omitempty"`
	ErrorMessage  string `json:"error_message,omitempty"`
}
