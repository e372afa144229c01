package router

import (
	"encoding/json"
	"net/http"

	"github.com/imposter-project/static-frontend/internal/system"
	"github.com/imposter-project/static-frontend/internal/version"
)

var (
	// cachedStatusResponse holds the pre-marshalled JSON response
	cachedStatusResponse []byte
)

func init() {
	response := struct {
		Status     string `json:"status"`
		Version    string `json:"version"`
		InstanceID string `json:"instanceId"`
	}{
		Status:     "ok",
		Version:    version.Version,
		InstanceID: system.InstanceID(),
	}

	var err error
	cachedStatusResponse, err = json.Marshal(response)
	if err != nil {
		panic("failed to marshal status response: " + err.Error())
	}
}

// handleStatusRequest handles the /system/status endpoint
func handleStatusRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(cachedStatusResponse)
}
