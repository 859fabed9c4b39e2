package handler

import "net/http"

// HandlePing handles GET /api/ping. It sits behind the JWT middleware, so
// reaching it at all proves the caller presented a valid token.
func HandlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse("pong"))
}

// HandleHealth handles GET /api/health, unauthenticated.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse("server is running"))
}
