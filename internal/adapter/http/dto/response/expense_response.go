package response

import "dukaprint/internal/domain/entities"

type ExpenseListResponse struct {
	Expenses []entities.Expense `json:"expenses"`
}

func FromExpenses(expenses []entities.Expense) ExpenseListResponse {
	if expenses == nil {
		expenses = []entities.Expense{}
	}
	return ExpenseListResponse{Expenses: expenses}
}

type ExpenseResponse struct {
	Expense entities.Expense `json:"expense"`
}

func FromExpense(e entities.Expense) ExpenseResponse {
	return ExpenseResponse{Expense: e}
}

type MessageResponse struct {
	Message string `json:"message"`
}
