package entities

import "time"

// Customer is a walk-in or account customer. Phone is the natural key the
// register searches by; AccountBalance holds prepaid store credit.
type Customer struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone"`
	Address        string     `json:"address,omitempty"`
	AccountBalance float64    `json:"account_balance"`
	TotalSpent     float64    `json:"total_spent"`
	CreatedAt      time.Time  `json:"created_at"`
	LastVisit      *time.Time `json:"last_visit,omitempty"`
}
