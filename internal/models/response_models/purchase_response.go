package response_models

import "github.com/google/uuid"

type PurchaseRequestResponse struct {
	ID                uuid.UUID `json:"id"`
	ProductName       string    `json:"product_name"`
	Quantity          uint      `json:"quantity"`
	Unit              string    `json:"unit"`
	Status            string    `json:"status"`
	CreatedAt         int64     `json:"created_at"`
	CreatedByUsername string    `json:"created_by_username,omitempty"`
}

type CookDashboard struct {
	MenuItems        []MenuItemResponse        `json:"menu_items"`
	PurchaseRequests []PurchaseRequestResponse `json:"purchase_requests"`
}
