package handlers

import "net/http"

// RootResponse describes the service and its endpoint groups.
// swagger:model RootResponse
type RootResponse struct {
	Message   string            `json:"message"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}

// NewRootHandler returns the service banner.
// @Summary Service banner
// @Tags meta
// @Produce json
// @Success 200 {object} handlers.RootResponse
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	body := RootResponse{
		Message: "Welcome to Image Gallery API",
		Status:  "Server is running successfully",
		Endpoints: map[string]string{
			"auth":     "/api/auth",
			"user":     "/api/user",
			"admin":    "/api/admin",
			"images":   "/api/images",
			"likes":    "/api/likes",
			"comments": "/api/comments",
		},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, body)
	}
}
