package storage

import (
	"github.com/rafaelleal24/farejador/internal/core/domain"
)

// productRecord is the persisted wire form of a product. Field names keep
// the camelCase layout of previously stored blobs, and imageUrl is omitted
// entirely when absent so old records stay valid without migration.
type productRecord struct {
	ID               string  `json:"id"`
	OperatorName     string  `json:"operatorName"`
	EANCode          string  `json:"eanCode"`
	Description      string  `json:"description"`
	Quantity         int     `json:"quantity"`
	QuantityType     string  `json:"quantityType"`
	ExpirationDate   string  `json:"expirationDate"`
	RegistrationDate string  `json:"registrationDate"`
	ImageURL         *string `json:"imageUrl,omitempty"`
}

func toRecord(p domain.Product) productRecord {
	return productRecord{
		ID:               string(p.ID),
		OperatorName:     p.OperatorName,
		EANCode:          p.EANCode,
		Description:      p.Description,
		Quantity:         p.Quantity,
		QuantityType:     string(p.QuantityType),
		ExpirationDate:   p.ExpirationDate.In(domain.ReferenceLocation()).Format(domain.ExpirationDateLayout),
		RegistrationDate: domain.FormatRegistrationStamp(p.RegistrationDate),
		ImageURL:         p.ImageURL,
	}
}

func (r productRecord) toDomain() (domain.Product, error) {
	expiration, err := domain.ParseExpirationDate(r.ExpirationDate)
	if err != nil {
		return domain.Product{}, err
	}
	registration, err := domain.ParseRegistrationStamp(r.RegistrationDate)
	if err != nil {
		return domain.Product{}, err
	}

	return domain.Product{
		ID:               domain.ID(r.ID),
		OperatorName:     r.OperatorName,
		EANCode:          r.EANCode,
		Description:      r.Description,
		Quantity:         r.Quantity,
		QuantityType:     domain.QuantityType(r.QuantityType),
		ExpirationDate:   expiration,
		RegistrationDate: registration,
		ImageURL:         r.ImageURL,
	}, nil
}
