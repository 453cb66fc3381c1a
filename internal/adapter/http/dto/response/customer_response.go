package response

import "dukaprint/internal/domain/entities"

type CustomerListResponse struct {
	Customers []entities.Customer `json:"customers"`
}

func FromCustomers(customers []entities.Customer) CustomerListResponse {
	if customers == nil {
		customers = []entities.Customer{}
	}
	return CustomerListResponse{Customers: customers}
}

type CustomerResponse struct {
	Customer entities.Customer `json:"customer"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{Customer: c}
}
