package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"dukaprint/internal/domain/entities"
	"dukaprint/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrInvalidServiceID = errors.New("invalid service id")
	ErrInvalidService   = errors.New("name, category, base_price and unit are required")
	ErrInvalidBasePrice = errors.New("invalid base price")
)

// ServiceCategories is the fixed list the shop offers.
var ServiceCategories = []entities.ServiceCategory{
	{Value: "printing", Label: "Printing Services"},
	{Value: "scanning", Label: "Scanning & Photocopying"},
	{Value: "graphic_design", Label: "Graphic Design"},
	{Value: "web_development", Label: "Web Development"},
	{Value: "cctv", Label: "CCTV Installation"},
	{Value: "general_supplies", Label: "General Supplies"},
	{Value: "other", Label: "Other Services"},
}

type CreateServiceInput struct {
	Name        string
	Category    string
	Description string
	BasePrice   float64
	Unit        string
	IsActive    *bool
}

type UpdateServiceInput struct {
	Name        *string
	Category    *string
	Description *string
	BasePrice   *float64
	Unit        *string
	IsActive    *bool
}

type IServiceUseCase interface {
	List(ctx context.Context, category string, activeOnly bool) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Create(ctx context.Context, in CreateServiceInput) (entities.Service, error)
	Update(ctx context.Context, id string, in UpdateServiceInput) (entities.Service, error)
	Deactivate(ctx context.Context, id string) (entities.Service, error)
}

type ServiceUseCase struct {
	repo interfaces.IServiceRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

func (u *ServiceUseCase) List(ctx context.Context, category string, activeOnly bool) ([]entities.Service, error) {
	return u.repo.List(ctx, strings.TrimSpace(category), activeOnly)
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	svc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if svc.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return svc, nil
}

func (u *ServiceUseCase) Create(ctx context.Context, in CreateServiceInput) (entities.Service, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	unit := strings.TrimSpace(in.Unit)
	if name == "" || category == "" || unit == "" {
		return entities.Service{}, ErrInvalidService
	}
	if in.BasePrice < 0 {
		return entities.Service{}, ErrInvalidBasePrice
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	svc := entities.Service{
		ID:          uuid.NewString(),
		Name:        name,
		Category:    category,
		Description: strings.TrimSpace(in.Description),
		BasePrice:   in.BasePrice,
		Unit:        unit,
		IsActive:    active,
		CreatedAt:   time.Now().UTC(),
	}
	return u.repo.Create(ctx, svc)
}

func (u *ServiceUseCase) Update(ctx context.Context, id string, in UpdateServiceInput) (entities.Service, error) {
	svc, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}

	if in.Name != nil {
		svc.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		svc.Category = strings.TrimSpace(*in.Category)
	}
	if in.Description != nil {
		svc.Description = strings.TrimSpace(*in.Description)
	}
	if in.BasePrice != nil {
		if *in.BasePrice < 0 {
			return entities.Service{}, ErrInvalidBasePrice
		}
		svc.BasePrice = *in.BasePrice
	}
	if in.Unit != nil {
		svc.Unit = strings.TrimSpace(*in.Unit)
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}

	return u.repo.Update(ctx, svc)
}

// Deactivate is a soft delete: the service stops being offered but stays
// referenced by historical orders.
func (u *ServiceUseCase) Deactivate(ctx context.Context, id string) (entities.Service, error) {
	svc, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	svc.IsActive = false
	return u.repo.Update(ctx, svc)
}
