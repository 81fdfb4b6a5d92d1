package api

import "net/http"

// meResponse is the response body for GET /users/me.
type meResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// handleMe returns the profile of the authenticated account.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user := principalFromContext(r.Context())

	writeJSON(w, http.StatusOK, meResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}
