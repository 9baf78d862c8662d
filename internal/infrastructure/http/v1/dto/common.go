// Package dto provides Data Transfer Objects for API requests/responses.
package dto

// SuccessResponse is a generic success acknowledgement.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// IDResponse returns the identifier of a created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// StatusRequest toggles a catalog record between Active and Inactive.
type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active Inactive"`
}
