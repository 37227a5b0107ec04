package glossaryhandlers

import "net/http"

// Handlers defines the HTTP handlers of the glossary module.
type Handlers interface {
	HandleListTerms(w http.ResponseWriter, r *http.Request)
	HandleGetTerm(w http.ResponseWriter, r *http.Request)
	HandleAddTerm(w http.ResponseWriter, r *http.Request)
	HandleDeleteTerm(w http.ResponseWriter, r *http.Request)
}
