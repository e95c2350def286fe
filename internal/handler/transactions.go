package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	service "github.com/honeynil/DepositWithdrawService/internal/services"
	"github.com/shopspring/decimal"
)

// submitRequest keeps the field names clients already send.
type submitRequest struct {
	Customer     models.Contact    `json:"customer"`
	Admin        string            `json:"admin"`
	Amount       decimal.Decimal   `json:"amount"`
	TrxID        string            `json:"trxId"`
	WithdrawCode string            `json:"withdrawCode"`
	NumberName   string            `json:"numberName"`
	WalletNumber string            `json:"walletNumber"`
	Status       models.StatusType `json:"status"`
}

func (req submitRequest) input(kind models.Kind) service.SubmitInput {
	ref := req.TrxID
	if kind == models.KindWithdraw {
		ref = req.WithdrawCode
	}
	return service.SubmitInput{
		Customer:     req.Customer,
		Admin:        req.Admin,
		Amount:       req.Amount,
		ExternalRef:  ref,
		ChannelName:  req.NumberName,
		WalletNumber: req.WalletNumber,
		Status:       req.Status,
	}
}

func (h *Handler) Submit(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := h.identity(w, r)
		if !ok {
			return
		}
		var req submitRequest
		if !h.decode(w, r, &req) {
			return
		}

		created, err := h.transactions.Submit(r.Context(), kind, req.input(kind), caller)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusCreated, map[string]any{"insertedId": created.ID, "transaction": created})
	}
}

func (h *Handler) GetTransaction(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := h.identity(w, r)
		if !ok {
			return
		}
		id, ok := h.pathID(w, r)
		if !ok {
			return
		}
		tx, err := h.transactions.Get(r.Context(), kind, id, caller)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, tx)
	}
}

func (h *Handler) ListCustomerTransactions(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txs, err := h.transactions.ListForCustomer(r.Context(), kind, mux.Vars(r)["email"])
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, txs)
	}
}

func (h *Handler) ListAdminOwnedTransactions(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := h.identity(w, r)
		if !ok {
			return
		}
		txs, err := h.transactions.ListForAdmin(r.Context(), kind, caller.Email)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, txs)
	}
}

func (h *Handler) ListAllTransactions(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txs, err := h.transactions.ListAll(r.Context(), kind)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, txs)
	}
}

func (h *Handler) UpdateStatus(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := h.identity(w, r)
		if !ok {
			return
		}
		id, ok := h.pathID(w, r)
		if !ok {
			return
		}
		var req struct {
			Status models.StatusType `json:"status"`
		}
		if !h.decode(w, r, &req) {
			return
		}

		modified, err := h.transactions.ApplyStatus(r.Context(), kind, id, req.Status, caller)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]int64{"modifiedCount": modified})
	}
}

func (h *Handler) DeleteTransaction(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := h.identity(w, r)
		if !ok {
			return
		}
		id, ok := h.pathID(w, r)
		if !ok {
			return
		}
		if err := h.transactions.Delete(r.Context(), kind, id, caller); err != nil {
			h.fail(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]int{"deletedCount": 1})
	}
}

// Feed serves deposits and withdraws merged newest first.
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	txs, err := h.feed.ListAll(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"transactions": txs})
}
