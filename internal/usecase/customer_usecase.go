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
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrInvalidCustomerID   = errors.New("invalid customer id")
	ErrInvalidCustomer     = errors.New("name and phone are required")
	ErrPhoneExists         = errors.New("customer with this phone number already exists")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidBalanceOp    = errors.New("invalid balance operation")
	ErrCustomerHasOrders   = errors.New("cannot delete customer with existing orders")
)

// Queries below this length return nothing rather than scanning the whole
// customer table; mirrors the register-side threshold.
const customerSearchMinLength = 2

const customerSearchLimit = 10

// Balance adjustment operations.
const (
	BalanceOpAdd    = "add"
	BalanceOpDeduct = "deduct"
)

type CreateCustomerInput struct {
	Name           string
	Phone          string
	Email          string
	Address        string
	AccountBalance float64
}

type UpdateCustomerInput struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

type ICustomerUseCase interface {
	List(ctx context.Context) ([]entities.Customer, error)
	Search(ctx context.Context, query string) ([]entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Create(ctx context.Context, in CreateCustomerInput) (entities.Customer, error)
	Update(ctx context.Context, id string, in UpdateCustomerInput) (entities.Customer, error)
	AdjustBalance(ctx context.Context, id string, amount float64, op string) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo   interfaces.ICustomerRepository
	orders interfaces.IOrderRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, orders interfaces.IOrderRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, orders: orders}
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}

// Search returns up to customerSearchLimit matches on name or phone.
// Queries shorter than two characters short-circuit to an empty result.
func (u *CustomerUseCase) Search(ctx context.Context, query string) ([]entities.Customer, error) {
	query = strings.TrimSpace(query)
	if len(query) < customerSearchMinLength {
		return []entities.Customer{}, nil
	}
	return u.repo.Search(ctx, query, customerSearchLimit)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) Create(ctx context.Context, in CreateCustomerInput) (entities.Customer, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" || phone == "" {
		return entities.Customer{}, ErrInvalidCustomer
	}

	existing, err := u.repo.GetByPhone(ctx, phone)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID != "" {
		return entities.Customer{}, ErrPhoneExists
	}

	c := entities.Customer{
		ID:             uuid.NewString(),
		Name:           name,
		Phone:          phone,
		Email:          strings.TrimSpace(in.Email),
		Address:        strings.TrimSpace(in.Address),
		AccountBalance: in.AccountBalance,
		CreatedAt:      time.Now().UTC(),
	}
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, in UpdateCustomerInput) (entities.Customer, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}

	if in.Phone != nil {
		phone := strings.TrimSpace(*in.Phone)
		if phone != "" && phone != c.Phone {
			existing, err := u.repo.GetByPhone(ctx, phone)
			if err != nil {
				return entities.Customer{}, err
			}
			if existing.ID != "" && existing.ID != c.ID {
				return entities.Customer{}, ErrPhoneExists
			}
			c.Phone = phone
		}
	}
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		c.Email = strings.TrimSpace(*in.Email)
	}
	if in.Address != nil {
		c.Address = strings.TrimSpace(*in.Address)
	}

	return u.repo.Update(ctx, c)
}

// AdjustBalance tops up or draws down prepaid store credit.
func (u *CustomerUseCase) AdjustBalance(ctx context.Context, id string, amount float64, op string) (entities.Customer, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if amount < 0 {
		return entities.Customer{}, ErrInvalidBalanceOp
	}

	switch op {
	case BalanceOpAdd:
		c.AccountBalance += amount
	case BalanceOpDeduct:
		if c.AccountBalance < amount {
			return entities.Customer{}, ErrInsufficientBalance
		}
		c.AccountBalance -= amount
	default:
		return entities.Customer{}, ErrInvalidBalanceOp
	}

	return u.repo.Update(ctx, c)
}

// Delete removes a customer record; customers with order history must be
// kept for reporting.
func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	count, err := u.orders.CountByCustomerID(ctx, c.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCustomerHasOrders
	}
	return u.repo.Delete(ctx, c.ID)
}
