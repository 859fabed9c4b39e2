package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pingstack/pingstack-go/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) model.StatusResponse {
	return model.StatusResponse{Success: false, Message: msg}
}

func statusResponse(msg string) model.StatusResponse {
	return model.StatusResponse{
		Success:   true,
		Message:   msg,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
