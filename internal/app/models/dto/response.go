package dto

// Pagination carries the paging metadata every list endpoint returns.
type Pagination struct {
	Page    int   `json:"page" example:"1"`
	PerPage int   `json:"per_page" example:"20"`
	Total   int64 `json:"total" example:"134"`
	Pages   int   `json:"pages" example:"7"`
	HasNext bool  `json:"has_next" example:"true"`
	HasPrev bool  `json:"has_prev" example:"false"`
}

// ListResponse is the standard paginated list envelope.
type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error string `json:"error" example:"resource not found"`
}

// MessageResponse is the standard success envelope for mutations that have
// no richer payload.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// NewErrorResponse creates a standard error response.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// CategoryOption is a value/label pair for enum listing endpoints.
type CategoryOption struct {
	Value string `json:"value" example:"race_preview"`
	Label string `json:"label" example:"Race Preview"`
}
