package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/middleware"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/utils"
)

// sessionOr401 returns the session placed by the auth middleware, or
// writes a 401 and returns nil.
func sessionOr401(w http.ResponseWriter, r *http.Request) *middleware.Session {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing session in context",
		)
	}
	return sess
}

// pathID parses the {name} route variable as a positive integer id.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
