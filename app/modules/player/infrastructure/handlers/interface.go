package playerhandlers

import "net/http"

// Handlers defines the HTTP handlers of the player module.
type Handlers interface {
	HandleListPlayers(w http.ResponseWriter, r *http.Request)
	HandleGetPlayer(w http.ResponseWriter, r *http.Request)
	HandleCreatePlayer(w http.ResponseWriter, r *http.Request)
}
