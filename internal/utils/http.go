// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it to w with statusCode.
//
// The "Content-Type" header is set to "application/json". If marshaling fails
// the response becomes 500 Internal Server Error and a wrapped error is
// returned.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Message: "Signup successful"}, http.StatusCreated)
//	WriteJSON(w, models.ErrorResponse{Error: "Passwords do not match"}, http.StatusBadRequest)
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
