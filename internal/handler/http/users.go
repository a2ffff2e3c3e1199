package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/MKhiriev/go-user-service/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg(msgInvalidJSONOnRequest)
		writeError(w, r, createUserErrors.fallback)
		return
	}

	created, err := h.services.UserService.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("user was not created")
		writeError(w, r, createUserErrors.replyFor(err))
		return
	}

	writeJSON(w, r, created, http.StatusCreated)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listUsers").Msg("users were not fetched")
		writeError(w, r, listUsersErrors.replyFor(err))
		return
	}

	if users == nil {
		users = []models.User{}
	}

	writeJSON(w, r, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getUser").Str("id", id).Msg("user was not fetched")
		writeError(w, r, getUserErrors.replyFor(err))
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var patch models.UserPatch
	if err := decodeJSON(r, &patch); err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg(msgInvalidJSONOnRequest)
		writeError(w, r, updateUserErrors.fallback)
		return
	}

	updated, err := h.services.UserService.UpdateUser(ctx, id, patch)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Str("id", id).Msg("user was not updated")
		writeError(w, r, updateUserErrors.replyFor(err))
		return
	}

	writeJSON(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.deleteUser").Str("id", id).Msg("user was not deleted")
		writeError(w, r, deleteUserErrors.replyFor(err))
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: msgUserDeleted}, http.StatusOK)
}

// notFound answers requests that match no route.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errorReply{status: http.StatusNotFound, message: msgNotFound})
}

// decodeJSON decodes a single JSON value from the request body into dst.
// An empty body leaves dst untouched and is not an error; anything after the
// value is.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = decoder.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}

	return nil
}

func writeError(w http.ResponseWriter, r *http.Request, reply errorReply) {
	writeJSON(w, r, models.ErrorResponse{Error: reply.message}, reply.status)
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
