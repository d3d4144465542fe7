package domain

import "time"

type QuantityType string

const (
	QuantityTypeUnit QuantityType = "unit"
	QuantityTypeBox  QuantityType = "box"
)

func (q QuantityType) IsValid() bool {
	return q == QuantityTypeUnit || q == QuantityTypeBox
}

// Product is a registered perishable item. ID and RegistrationDate are
// assigned by the repository at creation time and never change afterwards.
type Product struct {
	ID               ID
	OperatorName     string
	EANCode          string
	Description      string
	Quantity         int
	QuantityType     QuantityType
	ExpirationDate   time.Time
	RegistrationDate time.Time
	ImageURL         *string
}

// InsertProduct carries every caller-supplied field of a Product.
// Identity and the registration stamp are deliberately absent.
type InsertProduct struct {
	OperatorName   string
	EANCode        string
	Description    string
	Quantity       int
	QuantityType   QuantityType
	ExpirationDate time.Time
	ImageURL       *string
}

func NewProduct(id ID, in InsertProduct, registeredAt time.Time) *Product {
	return &Product{
		ID:               id,
		OperatorName:     in.OperatorName,
		EANCode:          in.EANCode,
		Description:      in.Description,
		Quantity:         in.Quantity,
		QuantityType:     in.QuantityType,
		ExpirationDate:   in.ExpirationDate,
		RegistrationDate: registeredAt,
		ImageURL:         in.ImageURL,
	}
}

// Apply returns a copy of the product with every caller-supplied field
// replaced by in, keeping ID and RegistrationDate from the existing record.
func (p Product) Apply(in InsertProduct) Product {
	return Product{
		ID:               p.ID,
		OperatorName:     in.OperatorName,
		EANCode:          in.EANCode,
		Description:      in.Description,
		Quantity:         in.Quantity,
		QuantityType:     in.QuantityType,
		ExpirationDate:   in.ExpirationDate,
		RegistrationDate: p.RegistrationDate,
		ImageURL:         in.ImageURL,
	}
}
