package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the JSON envelope every endpoint answers with.
// Count and Status are only present on the endpoints that use them.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Status  string `json:"status,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// ResponseJSON writes a JSON response with a custom status code
func ResponseJSON(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// returns 200 OK with a count alongside the list
func ResponseList(w http.ResponseWriter, count int, data any) {
	ResponseJSON(w, http.StatusOK, Response{Success: true, Count: &count, Data: data})
}

// returns 200 OK with only a status string
func ResponseStatus(w http.ResponseWriter, status string) {
	ResponseJSON(w, http.StatusOK, Response{Success: true, Status: status})
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, Response{Success: true, Data: data})
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseJSON(w, http.StatusBadRequest, Response{Success: false, Message: message, Errors: errors})
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusUnauthorized, Response{Success: false, Message: message})
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusForbidden, Response{Success: false, Message: message})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, Response{Success: false, Message: message})
}

// returns 501 Not Implemented
func ResponseNotImplemented(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotImplemented, Response{Success: false, Message: message})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, Response{Success: false, Message: message})
}
