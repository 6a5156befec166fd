package models

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// SuccessResponse wraps a message and optional data for write endpoints.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// AgentResponse is the JSON body returned by agent-triggering endpoints.
type AgentResponse struct {
	Kind   string `json:"kind" example:"ok"`
	Result string `json:"result"`
	Detail string `json:"detail,omitempty"`
}
