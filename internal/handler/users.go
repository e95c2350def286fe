package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	service "github.com/honeynil/DepositWithdrawService/internal/services"
)

func (h *Handler) UpsertUser(w http.ResponseWriter, r *http.Request) {
	var profile service.UserProfile
	if r.ContentLength != 0 && !h.decode(w, r, &profile) {
		return
	}

	user, created, err := h.users.Upsert(r.Context(), mux.Vars(r)["email"], profile)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.writeJSON(w, status, map[string]any{"user": user, "created": created})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListCustomers(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, users)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.users.Delete(r.Context(), id, caller); err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int{"deletedCount": 1})
}

func (h *Handler) UserRole(w http.ResponseWriter, r *http.Request) {
	role, err := h.users.Role(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]models.Role{"role": role})
}
