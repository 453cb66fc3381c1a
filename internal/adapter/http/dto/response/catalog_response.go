package response

import "dukaprint/internal/domain/entities"

// List envelopes match what the register client decodes; field names are
// part of the wire contract.

type ServiceListResponse struct {
	Services []entities.Service `json:"services"`
}

func FromServices(services []entities.Service) ServiceListResponse {
	if services == nil {
		services = []entities.Service{}
	}
	return ServiceListResponse{Services: services}
}

type ServiceResponse struct {
	Service entities.Service `json:"service"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{Service: s}
}

type CategoryListResponse struct {
	Categories []entities.ServiceCategory `json:"categories"`
}

func FromCategories(categories []entities.ServiceCategory) CategoryListResponse {
	return CategoryListResponse{Categories: categories}
}

type InventoryListResponse struct {
	Items []entities.InventoryItem `json:"items"`
}

func FromItems(items []entities.InventoryItem) InventoryListResponse {
	if items == nil {
		items = []entities.InventoryItem{}
	}
	return InventoryListResponse{Items: items}
}

type InventoryItemResponse struct {
	Item entities.InventoryItem `json:"item"`
}

func FromItem(item entities.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{Item: item}
}
