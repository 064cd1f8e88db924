package users

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	msgNotFound   = "Usuario no encontrado"
	msgCreated    = "Usuario creado"
	msgUpdated    = "Usuario actualizado"
	msgDeleted    = "Usuario eliminado"
	msgReceived   = "Usuario recibido"
	msgInvalidID  = "Id de usuario inválido"
	msgInvalidReq = "Cuerpo de la solicitud inválido"
	msgInternal   = "Error interno del servidor"
)

// messageResponse is the envelope for mutations and errors.
type messageResponse struct {
	Message string `json:"mensaje"`
	User    *User  `json:"usuario,omitempty"`
}

type userRequest struct {
	Name  string `json:"nombre"`
	Email string `json:"email"`
}

// RegisterRoutes mounts the user endpoints on the given router.
func RegisterRoutes(r chi.Router, store Store) {
	r.Route("/usuarios", func(r chi.Router) {
		r.Get("/", handleList(store))
		r.Post("/", handleCreate(store))
		r.Get("/{id}", handleGet(store))
		r.Put("/{id}", handleUpdate(store))
		r.Delete("/{id}", handleDelete(store))
	})
	r.Post("/usuario", handleReceive(store))
}

func handleList(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.List(r.Context())
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if list == nil {
			list = []User{}
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func handleGet(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		u, err := store.Get(r.Context(), id)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

func handleCreate(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeUser(w, r)
		if !ok {
			return
		}
		u, err := store.Create(r.Context(), req.Name, req.Email)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, messageResponse{Message: msgCreated, User: u})
	}
}

func handleUpdate(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		req, ok := decodeUser(w, r)
		if !ok {
			return
		}
		u, err := store.Update(r.Context(), id, req.Name, req.Email)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: msgUpdated, User: u})
	}
}

func handleDelete(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		u, err := store.Delete(r.Context(), id)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: msgDeleted, User: u})
	}
}

// handleReceive stores the posted user through Store.Create, so it gets an
// id and joins the /usuarios collection, and echoes it back with 200.
func handleReceive(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeUser(w, r)
		if !ok {
			return
		}
		u, err := store.Create(r.Context(), req.Name, req.Email)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: msgReceived, User: u})
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgInvalidID})
		return 0, false
	}
	return id, true
}

func decodeUser(w http.ResponseWriter, r *http.Request) (userRequest, bool) {
	var req userRequest
	// An empty body decodes as {}.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgInvalidReq})
		return req, false
	}
	return req, true
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusNotFound, messageResponse{Message: msgNotFound})
		return
	}
	log.Printf("users: store error: %v", err)
	writeJSON(w, http.StatusInternalServerError, messageResponse{Message: msgInternal})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
