package models

import (
	"time"

	"github.com/google/uuid"
)

// Property is a catalog listing. Price is kept as the text the lister
// supplied (comma-grouped rupee amounts like "4,50,00,000"); the numeric
// structural fields are validated before persistence. Image fields hold
// site-relative paths under /uploads, never the bytes themselves.
type Property struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	Price           string    `json:"price"`
	Bedrooms        int       `json:"bedrooms"`
	Bathrooms       float64   `json:"bathrooms"`
	Sqft            int       `json:"sqft"`
	PropertyType    string    `json:"propertyType"`
	TransactionType string    `json:"transactionType"`
	MainImage       string    `json:"mainImage,omitempty"`
	InteriorImages  []string  `json:"interiorImages"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
