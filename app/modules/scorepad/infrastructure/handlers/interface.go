package scorepadhandlers

import "net/http"

// Handlers defines the HTTP handlers of the scorepad module.
type Handlers interface {
	HandleListScorepads(w http.ResponseWriter, r *http.Request)
	HandleCreateScorepad(w http.ResponseWriter, r *http.Request)
	HandleGetScorepad(w http.ResponseWriter, r *http.Request)
	HandleRecordMatch(w http.ResponseWriter, r *http.Request)
	HandleGetBoard(w http.ResponseWriter, r *http.Request)
	HandleGetForm(w http.ResponseWriter, r *http.Request)
	HandleExportXLSX(w http.ResponseWriter, r *http.Request)
	HandleRenderChart(w http.ResponseWriter, r *http.Request)
}
