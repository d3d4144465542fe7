package domain

import "github.com/google/uuid"

type ID string

func ValidateID(id string) bool {
	return uuid.Validate(id) == nil
}

// LookupResult is what the remote barcode catalog knows about a product.
type LookupResult struct {
	EANCode     string
	Description string
	ImageURL    *string
}
