package request

import "dukaprint/internal/usecase"

type CreateCustomerRequest struct {
	Name           string  `json:"name" binding:"required"`
	Phone          string  `json:"phone" binding:"required"`
	Email          string  `json:"email"`
	Address        string  `json:"address"`
	AccountBalance float64 `json:"account_balance"`
}

func (r CreateCustomerRequest) ToInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		Name:           r.Name,
		Phone:          r.Phone,
		Email:          r.Email,
		Address:        r.Address,
		AccountBalance: r.AccountBalance,
	}
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

func (r UpdateCustomerRequest) ToInput() usecase.UpdateCustomerInput {
	return usecase.UpdateCustomerInput{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
	}
}

// AdjustBalanceRequest tops up or draws down prepaid store credit.
type AdjustBalanceRequest struct {
	Amount    float64 `json:"amount" binding:"required"`
	Operation string  `json:"operation" binding:"required,oneof=add deduct"`
}
