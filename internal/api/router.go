package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/honeynil/DepositWithdrawService/internal/handler"
	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/auth"
	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/redis"
	"github.com/honeynil/DepositWithdrawService/internal/models"
)

type Dependencies struct {
	Handler        *handler.Handler
	Verifier       auth.TokenVerifier
	Roles          auth.RoleLookup
	Redis          redis.RedisClient
	SubmitLimit    int
	SubmitWindow   time.Duration
	AllowedOrigins []string
	Metrics        http.Handler
}

type middlewareFunc = func(http.Handler) http.Handler

func chain(h http.Handler, mws ...middlewareFunc) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func SetupRouter(d Dependencies) http.Handler {
	h := d.Handler
	r := mux.NewRouter()
	r.Use(metricsMiddleware)

	authn := auth.RequireAuthenticated(d.Verifier)
	admin := auth.RequireAdmin(d.Roles)
	self := auth.RequireSelf("email")
	limit := SubmitRateLimit(d.Redis, d.SubmitLimit, d.SubmitWindow)

	public := func(path string, fn http.HandlerFunc, methods ...string) {
		r.Handle(path, fn).Methods(methods...)
	}
	authed := func(path string, fn http.HandlerFunc, methods ...string) {
		r.Handle(path, chain(fn, authn)).Methods(methods...)
	}
	adminOnly := func(path string, fn http.HandlerFunc, methods ...string) {
		r.Handle(path, chain(fn, authn, admin)).Methods(methods...)
	}

	// Роуты
	public("/health", h.Health, http.MethodGet)
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics).Methods(http.MethodGet)
	}

	// Session
	public("/jwt", h.IssueToken, http.MethodPost)
	public("/logout", h.Logout, http.MethodGet)

	// Users
	adminOnly("/users", h.ListUsers, http.MethodGet)
	authed("/users/role/{email}", h.UserRole, http.MethodGet)
	public("/users/{email}", h.UpsertUser, http.MethodPost)
	authed("/users/{id}", h.DeleteUser, http.MethodDelete)

	// Channels. Static segments are registered before {id}.
	for prefix, kind := range map[string]models.Kind{"/numbers": models.KindDeposit, "/addWithdraws": models.KindWithdraw} {
		public(prefix, h.ListChannels(kind), http.MethodGet)
		adminOnly(prefix, h.CreateChannel(kind), http.MethodPost)
		adminOnly(prefix+"/seller", h.ListOwnedChannels(kind), http.MethodGet)
		public(prefix+"/{id}", h.GetChannel(kind), http.MethodGet)
		adminOnly(prefix+"/{id}", h.UpdateChannel(kind), http.MethodPatch)
		adminOnly(prefix+"/{id}", h.DeleteChannel(kind), http.MethodDelete)
	}

	// Deposits
	r.Handle("/deposits", chain(h.Submit(models.KindDeposit), authn, limit)).Methods(http.MethodPost)
	authed("/deposits/{id}", h.GetTransaction(models.KindDeposit), http.MethodGet)
	r.Handle("/customer-deposits/{email}", chain(h.ListCustomerTransactions(models.KindDeposit), authn, self)).Methods(http.MethodGet)
	adminOnly("/admin-deposits", h.ListAllTransactions(models.KindDeposit), http.MethodGet)
	adminOnly("/admin-owned-deposits", h.ListAdminOwnedTransactions(models.KindDeposit), http.MethodGet)
	adminOnly("/update-deposits-status/{id}", h.UpdateStatus(models.KindDeposit), http.MethodPatch)
	authed("/delete-deposit/{id}", h.DeleteTransaction(models.KindDeposit), http.MethodDelete)

	// Withdraws
	r.Handle("/withdraws", chain(h.Submit(models.KindWithdraw), authn, limit)).Methods(http.MethodPost)
	authed("/withdraws/{id}", h.GetTransaction(models.KindWithdraw), http.MethodGet)
	r.Handle("/customer-withdraws/{email}", chain(h.ListCustomerTransactions(models.KindWithdraw), authn, self)).Methods(http.MethodGet)
	adminOnly("/admin-withdraw", h.ListAllTransactions(models.KindWithdraw), http.MethodGet)
	adminOnly("/admin-owned-withdraws", h.ListAdminOwnedTransactions(models.KindWithdraw), http.MethodGet)
	adminOnly("/update-withdraw-status/{id}", h.UpdateStatus(models.KindWithdraw), http.MethodPatch)
	authed("/delete-withdraw/{id}", h.DeleteTransaction(models.KindWithdraw), http.MethodDelete)

	// Aggregated feed
	public("/transactions", h.Feed, http.MethodGet)

	var root http.Handler = r
	root = middleware.Recoverer(root)
	root = middleware.RealIP(root)
	root = middleware.RequestID(root)
	root = cors.Handler(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	})(root)
	return root
}
