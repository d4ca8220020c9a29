package api

type ErrorResponse struct {
	Detail string `json:"detail" example:"something went wrong"`
}

type ValidationErrorResponse struct {
	Detail string       `json:"detail" example:"validation failed"`
	Errors []FieldError `json:"errors"`
}

type FieldError struct {
	Field   string `json:"field" example:"email"`
	Tag     string `json:"tag" example:"required"`
	Message string `json:"message" example:"email is required"`
}

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}
