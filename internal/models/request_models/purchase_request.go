package request_models

type CreatePurchaseRequest struct {
	ProductName string `json:"product_name" binding:"required"`
	Quantity    uint   `json:"quantity" binding:"required,min=1"`
	Unit        string `json:"unit" binding:"required"`
}

type ReviewPurchaseRequest struct {
	Approved *bool `json:"approved"`
}
