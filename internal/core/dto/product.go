package dto

// SaveProductRequest is the caller-supplied payload for both registration
// and update. Identity and registration stamp are never accepted here.
type SaveProductRequest struct {
	OperatorName   string  `json:"operatorName" binding:"required"`
	EANCode        string  `json:"eanCode" binding:"required,min=8"`
	Description    string  `json:"description" binding:"required"`
	Quantity       int     `json:"quantity" binding:"required,gte=1"`
	QuantityType   string  `json:"quantityType" binding:"required,oneof=unit box"`
	ExpirationDate string  `json:"expirationDate" binding:"required"`
	ImageURL       *string `json:"imageUrl" binding:"omitempty,url"`
}
