package model

type SuccessMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// DataResponse is the `{data: ...}` shape the front-end unwraps on list
// and search endpoints.
type DataResponse[T any] struct {
	Data T `json:"data"`
}
