package main

import (
	"encoding/json"
	"encoding/xml"
	"net/http"
)

func (app *application) sendJSON(w http.ResponseWriter, r *http.Request, data any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) sendXML(w http.ResponseWriter, r *http.Request, data any) {
	w.Header().Set("Content-Type", "application/xml")

	if _, err := w.Write([]byte(xml.Header)); err != nil {
		app.logger.Error("failed to write response", "error", err)
		return
	}
	if err := xml.NewEncoder(w).Encode(data); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) errorResponse(w http.ResponseWriter, status int, message string) {
	response := struct {
		Code int    `json:"code"`
		Text string `json:"text"`
	}{
		Code: status,
		Text: message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		app.logger.Error("failed to encode error response", "error", err)
	}
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, http.StatusNotFound, "not found")
}

// noSnapshotResponse is sent before the first successful reload, when
// there is no status to serve yet.
func (app *application) noSnapshotResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, http.StatusServiceUnavailable, "status not yet available")
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Error("internal server error", "error", err, "path", r.URL.Path)
	app.errorResponse(w, http.StatusInternalServerError, "internal server error")
}
