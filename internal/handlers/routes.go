package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Confession *ConfessionHandler
	BucketList *BucketListHandler
	Expense    *ExpenseHandler
	Health     *HealthHandler
	Metrics    http.Handler
}

// RegisterRoutes mounts the API on router. The filter route must be
// registered before /api/expenses/{id} or "filter" is taken as an id.
func RegisterRoutes(router *mux.Router, h Handlers) {
	router.HandleFunc("/health", h.Health.HealthCheckHandler).Methods("GET")
	if h.Metrics != nil {
		router.Handle("/metrics", h.Metrics).Methods("GET")
	}

	// Routes stay on the root router: gorilla/mux answers a method mismatch
	// with 405 there, while a subrouter falls through to 404.

	// Confessions
	router.HandleFunc("/api/confessions", h.Confession.CreateConfessionHandler).Methods("POST")

	// Bucket list
	router.HandleFunc("/api/bucket-list-items", h.BucketList.AddItemHandler).Methods("POST")
	router.HandleFunc("/api/bucket-list-items", h.BucketList.GetItemHandler).Methods("GET")

	// Expenses
	router.HandleFunc("/api/expenses", h.Expense.CreateExpenseHandler).Methods("POST")
	router.HandleFunc("/api/expenses", h.Expense.GetExpensesHandler).Methods("GET")
	router.HandleFunc("/api/expenses/filter", h.Expense.FilterExpensesHandler).Methods("GET")
	router.HandleFunc("/api/expenses/{id}", h.Expense.GetExpenseHandler).Methods("GET")
	router.HandleFunc("/api/expenses/{id}/tags", h.Expense.AddTagHandler).Methods("POST")
}
