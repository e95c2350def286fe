package handler

import (
	"net/http"

	"github.com/honeynil/DepositWithdrawService/internal/models"
	service "github.com/honeynil/DepositWithdrawService/internal/services"
)

func (h *Handler) CreateChannel(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := h.identity(w, r)
		if !ok {
			return
		}
		var in service.ChannelInput
		if !h.decode(w, r, &in) {
			return
		}
		ch, err := h.channels.Create(r.Context(), kind, in, caller)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusCreated, ch)
	}
}

func (h *Handler) ListChannels(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chs, err := h.channels.List(r.Context(), kind)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, chs)
	}
}

func (h *Handler) ListOwnedChannels(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := h.identity(w, r)
		if !ok {
			return
		}
		chs, err := h.channels.ListOwned(r.Context(), kind, caller.Email)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, chs)
	}
}

func (h *Handler) GetChannel(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.pathID(w, r)
		if !ok {
			return
		}
		ch, err := h.channels.Get(r.Context(), kind, id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, ch)
	}
}

func (h *Handler) UpdateChannel(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.pathID(w, r)
		if !ok {
			return
		}
		var patch models.ChannelPatch
		if !h.decode(w, r, &patch) {
			return
		}
		if err := h.channels.Update(r.Context(), kind, id, patch); err != nil {
			h.fail(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]int{"modifiedCount": 1})
	}
}

func (h *Handler) DeleteChannel(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.pathID(w, r)
		if !ok {
			return
		}
		if err := h.channels.Delete(r.Context(), kind, id); err != nil {
			h.fail(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]int{"deletedCount": 1})
	}
}
