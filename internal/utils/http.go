package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-tree-keeper/models"
)

// WriteJSON marshals data and writes it with the given status code and a
// JSON content type. A marshaling failure produces a plain 500 response and
// a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteSuccess writes data wrapped into the {"success": true, "data": ...}
// envelope.
func WriteSuccess(w http.ResponseWriter, data any, statusCode int) (int, error) {
	return WriteJSON(w, models.Response{Success: true, Data: data}, statusCode)
}

// WriteError writes message wrapped into the {"success": false, "error": ...}
// envelope.
func WriteError(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.Response{Success: false, Error: message}, statusCode)
}
