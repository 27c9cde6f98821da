package handler

import (
	"net/http"
	"time"

	"github.com/monish-s03/grokart-api/internal/domain/user"
)

type userResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// HandleListUsers returns the handler for GET /api/admin/users. The caller
// must already have passed RequireAdmin. Password material never appears in
// the response; the repository does not even read it.
func HandleListUsers(users user.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := users.List(r.Context())
		if err != nil {
			writeServerError(w, r, err)
			return
		}

		resp := make([]userResponse, 0, len(list))
		for _, u := range list {
			resp = append(resp, userResponse{
				ID:        u.ID,
				Name:      u.Name,
				Email:     u.Email,
				Role:      u.Role,
				CreatedAt: u.CreatedAt,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
