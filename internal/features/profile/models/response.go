package models

const (
	ResponseStatusSuccess = "success"
	ResponseStatusError   = "error"
)

// LookupRequest is the body of POST /api/getinfo
type LookupRequest struct {
	Username string `json:"username" example:"durov"`
}

// LookupResponse wraps a successful lookup
type LookupResponse struct {
	Status string       `json:"status" example:"success"`
	Info   *ProfileInfo `json:"info"`
}

// ErrorResponse is the JSON body of every error reply
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"No username provided"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Status: ResponseStatusError, Message: message}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status            string `json:"status" example:"healthy"`
	Service           string `json:"service" example:"Telegram Info Dashboard"`
	ClientInitialized bool   `json:"client_initialized"`
	DemoMode          bool   `json:"demo_mode"`
	CacheEnabled      bool   `json:"cache_enabled"`
	Timestamp         string `json:"timestamp" example:"2025-01-02T15:04:05Z"`
}

// TestResponse is the body of GET /test
type TestResponse struct {
	Message   string `json:"message" example:"Telegram Info Dashboard is running!"`
	Mode      string `json:"mode" enums:"demo,live" example:"demo"`
	Timestamp string `json:"timestamp" example:"2025-01-02T15:04:05Z"`
}
