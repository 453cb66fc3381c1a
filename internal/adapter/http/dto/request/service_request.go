package request

import "dukaprint/internal/usecase"

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price" binding:"required"`
	Unit        string  `json:"unit"`
	IsActive    *bool   `json:"is_active"`
}

func (r CreateServiceRequest) ToInput() usecase.CreateServiceInput {
	return usecase.CreateServiceInput{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		BasePrice:   r.BasePrice,
		Unit:        r.Unit,
		IsActive:    r.IsActive,
	}
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	BasePrice   *float64 `json:"base_price"`
	Unit        *string  `json:"unit"`
	IsActive    *bool    `json:"is_active"`
}

func (r UpdateServiceRequest) ToInput() usecase.UpdateServiceInput {
	return usecase.UpdateServiceInput{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		BasePrice:   r.BasePrice,
		Unit:        r.Unit,
		IsActive:    r.IsActive,
	}
}
