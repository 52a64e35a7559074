package dto

// Response represents a standard API response
// @Description Standard API response envelope
type Response struct {
	Success bool       `json:"success" example:"true"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *Meta      `json:"meta,omitempty"`
}

// ErrorInfo represents error details
// @Description Error details
type ErrorInfo struct {
	Code      string             `json:"code" example:"ERR_NOT_FOUND"`
	Message   string             `json:"message" example:"Car not found"`
	RequestID string             `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Details   []ValidationDetail `json:"details,omitempty"`
}

// ValidationDetail names one rejected field
type ValidationDetail struct {
	Field   string `json:"field" example:"price"`
	Message string `json:"message" example:"price is required"`
}

// Meta carries pagination metadata and non-fatal warnings
// @Description Pagination metadata and degraded-read warnings
type Meta struct {
	Total      int64    `json:"total,omitempty" example:"42"`
	Page       int      `json:"page,omitempty" example:"1"`
	PageSize   int      `json:"page_size,omitempty" example:"20"`
	TotalPages int      `json:"total_pages,omitempty" example:"3"`
	Warnings   []string `json:"warnings,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data any) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// NewSuccessResponseWithMeta creates a success response with pagination meta
func NewSuccessResponseWithMeta(data any, total int64, page, pageSize int) Response {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(total) / pageSize
		if int(total)%pageSize > 0 {
			totalPages++
		}
	}
	return Response{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		},
	}
}

// NewSuccessResponseWithWarnings creates a success response whose meta lists
// reads that degraded to empty data
func NewSuccessResponseWithWarnings(data any, warnings []string) Response {
	resp := NewSuccessResponse(data)
	if len(warnings) > 0 {
		resp.Meta = &Meta{Warnings: warnings}
	}
	return resp
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithRequestID creates an error response tagged with the request ID
func NewErrorResponseWithRequestID(code, message, requestID string) Response {
	resp := NewErrorResponse(code, message)
	resp.Error.RequestID = requestID
	return resp
}

// NewValidationErrorResponse creates a 400 body listing the rejected fields
func NewValidationErrorResponse(message, requestID string, details []ValidationDetail) Response {
	resp := NewErrorResponseWithRequestID(ErrCodeValidation, message, requestID)
	resp.Error.Details = details
	return resp
}

// IDRequest represents a request with an ID path parameter
type IDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}
