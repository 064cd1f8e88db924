// Package greetings serves the hello-world and named greeting endpoints.
package greetings

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

type greeting struct {
	Message string `json:"mensaje"`
}

// RegisterRoutes mounts /hola and /saludo/{nombre}.
func RegisterRoutes(r chi.Router) {
	r.Get("/hola", handleHello)
	r.Get("/saludo/{nombre}", handleGreet)
}

func handleHello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, greeting{Message: "Hola mundo!"})
}

func handleGreet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "nombre")
	// chi routes on RawPath when it is set; Path is already decoded.
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
	}
	writeJSON(w, http.StatusOK, greeting{Message: "Hola " + name})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
