package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dias221467/Mongo_Exercises/internal/models"
	"github.com/Dias221467/Mongo_Exercises/internal/repository"
	"github.com/Dias221467/Mongo_Exercises/internal/services"
	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
	"github.com/gorilla/mux"
)

// ExpenseHandler handles HTTP requests related to expenses.
type ExpenseHandler struct {
	Service *services.ExpenseService
}

// NewExpenseHandler creates a new instance of ExpenseHandler.
func NewExpenseHandler(service *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{Service: service}
}

// CreateExpenseHandler handles the creation of a new expense.
func (h *ExpenseHandler) CreateExpenseHandler(w http.ResponseWriter, r *http.Request) {
	var expense models.Expense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		logger.Log.WithError(err).Warn("Invalid request payload during expense creation")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	created, err := h.Service.CreateExpense(r.Context(), &expense)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to create expense")
		http.Error(w, "Failed to create expense", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// GetExpenseHandler handles fetching a single expense by its ID.
func (h *ExpenseHandler) GetExpenseHandler(w http.ResponseWriter, r *http.Request) {
	expenseID := mux.Vars(r)["id"]

	expense, err := h.Service.GetExpenseByID(r.Context(), expenseID)
	switch {
	case errors.Is(err, services.ErrInvalidID):
		http.Error(w, "Invalid expense ID", http.StatusBadRequest)
		return
	case errors.Is(err, repository.ErrNotFound):
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	case err != nil:
		logger.Log.WithError(err).WithField("expense_id", expenseID).Error("Failed to fetch expense")
		http.Error(w, "Failed to fetch expense", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, expense)
}

// GetExpensesHandler returns every expense.
func (h *ExpenseHandler) GetExpensesHandler(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Service.GetAllExpenses(r.Context())
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch expenses")
		http.Error(w, "Failed to fetch expenses", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, expenses)
}

// FilterExpensesHandler handles GET /api/expenses/filter?minAmount=&maxAmount=&isRecurring=
func (h *ExpenseHandler) FilterExpensesHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := services.FilterParams{
		MinAmount:   query.Get("minAmount"),
		MaxAmount:   query.Get("maxAmount"),
		IsRecurring: query.Get("isRecurring"),
	}

	expenses, err := h.Service.FilterExpenses(r.Context(), params)
	if errors.Is(err, services.ErrInvalidFilter) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		logger.Log.WithError(err).Error("Failed to filter expenses")
		http.Error(w, "Failed to filter expenses", http.StatusInternalServerError)
		return
	}

	logger.Log.WithField("count", len(expenses)).Debug("Expenses filtered")
	respondJSON(w, http.StatusOK, expenses)
}

// AddTagHandler appends a tag to an expense.
func (h *ExpenseHandler) AddTagHandler(w http.ResponseWriter, r *http.Request) {
	expenseID := mux.Vars(r)["id"]

	var req models.TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.WithError(err).Warn("Invalid tag payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	err := h.Service.AddTag(r.Context(), expenseID, req.Tag)
	if errors.Is(err, services.ErrInvalidID) {
		http.Error(w, "Invalid expense ID", http.StatusBadRequest)
		return
	}
	if err != nil {
		logger.Log.WithError(err).WithField("expense_id", expenseID).Error("Failed to add tag")
		http.Error(w, "Failed to add tag", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Tag added"})
}
