package httpapi

import (
	"net/http"

	"github.com/ezilbeari/pennywise/internal/logging"
	"github.com/ezilbeari/pennywise/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles everything the router needs.
type Services struct {
	Users        *services.UserService
	Transactions *services.TransactionService
	Budgets      *services.BudgetService
	Settings     *services.SettingsService
	Summary      *services.SummaryService
	Receipts     *services.ReceiptService
}

// NewRouter creates a chi router with all Pennywise routes registered.
func NewRouter(svc Services, logger logging.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(Recovery(logger))
	r.Use(RequestLogging(logger))
	r.Use(Metrics)

	// Health check and metrics
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("API OK"))
	})
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// Auth endpoints (public)
	authHandler := NewAuthHandler(svc.Users, logger)
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.Refresh)
		r.Post("/logout", authHandler.Logout)
	})

	// Protected endpoints
	accountHandler := NewAccountHandler(svc.Users, logger)
	transactionHandler := NewTransactionHandler(svc.Transactions, svc.Receipts, logger)
	budgetHandler := NewBudgetHandler(svc.Budgets, logger)
	settingsHandler := NewSettingsHandler(svc.Settings, logger)
	homeHandler := NewHomeHandler(svc.Summary, logger)

	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(svc.Users.VerifyAccessToken))

		r.Put("/api/account/profile", accountHandler.UpdateProfile)

		r.Get("/api/transactions", transactionHandler.List)
		r.Post("/api/transactions", transactionHandler.Create)
		r.Post("/api/transactions/receipts/upload-url", transactionHandler.PresignReceiptUpload)
		r.Get("/api/transactions/receipts/download-url", transactionHandler.PresignReceiptDownload)

		r.Get("/api/budgets", budgetHandler.List)
		r.Post("/api/budgets", budgetHandler.Create)
		r.Put("/api/budgets/{id}", budgetHandler.Update)
		r.Delete("/api/budgets/{id}", budgetHandler.Delete)

		r.Get("/api/settings", settingsHandler.Get)
		r.Put("/api/settings", settingsHandler.Update)

		r.Get("/api/home", homeHandler.Summary)
	})

	return r
}
