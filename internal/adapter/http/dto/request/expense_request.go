package request

import "dukaprint/internal/usecase"

type CreateExpenseRequest struct {
	Category      string  `json:"category" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"payment_method"`
	ReceiptNumber string  `json:"receipt_number"`
}

func (r CreateExpenseRequest) ToInput() usecase.CreateExpenseInput {
	return usecase.CreateExpenseInput{
		Category:      r.Category,
		Description:   r.Description,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		ReceiptNumber: r.ReceiptNumber,
	}
}

type UpdateExpenseRequest struct {
	Category      *string  `json:"category"`
	Description   *string  `json:"description"`
	Amount        *float64 `json:"amount"`
	PaymentMethod *string  `json:"payment_method"`
	ReceiptNumber *string  `json:"receipt_number"`
}

func (r UpdateExpenseRequest) ToInput() usecase.UpdateExpenseInput {
	return usecase.UpdateExpenseInput{
		Category:      r.Category,
		Description:   r.Description,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		ReceiptNumber: r.ReceiptNumber,
	}
}
