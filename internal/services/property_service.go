package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"luxe-estates/internal/models"
)

// MaxInteriorImages bounds a single listing submission.
const MaxInteriorImages = 10

var (
	// ErrInvalidNumberFormat is returned when bedrooms, bathrooms or sqft do
	// not parse. Nothing is written to disk or the database in that case.
	ErrInvalidNumberFormat = errors.New("invalid number format for bedrooms, bathrooms, or sqft")

	ErrTooManyImages = errors.New("too many interior images")
)

// PropertyStore is the persistence surface for listings.
type PropertyStore interface {
	Create(ctx context.Context, property *models.Property) error
	FindAll(ctx context.Context) ([]models.Property, error)
}

// FileStore saves one multipart upload and returns its site-relative path.
type FileStore interface {
	Save(field string, fileHeader *multipart.FileHeader) (string, error)
}

// ListingInput carries the raw multipart submission. The numeric fields
// arrive as form text and are parsed here.
type ListingInput struct {
	Title           string
	Description     string
	Location        string
	Price           string
	Bedrooms        string
	Bathrooms       string
	Sqft            string
	PropertyType    string
	TransactionType string
	MainImage       *multipart.FileHeader
	InteriorImages  []*multipart.FileHeader
}

// ListingFilters narrows the catalog. Zero values and the catch-all options
// the filter UI sends ("All Locations", "All Types", "Buy or Rent",
// "Any Price") leave the full set untouched.
type ListingFilters struct {
	Search          string
	Location        string
	PropertyType    string
	TransactionType string
	PriceRange      string
}

type PropertyService struct {
	properties PropertyStore
	files      FileStore
}

func NewPropertyService(properties PropertyStore, files FileStore) *PropertyService {
	return &PropertyService{properties: properties, files: files}
}

// CreateListing validates the numeric fields, stores the image uploads and
// persists the listing. Validation failures happen before any file write;
// file-type failures happen before any database write. Files already on disk
// when a later step fails are left behind (no partial-success recovery).
func (s *PropertyService) CreateListing(ctx context.Context, input ListingInput) (*models.Property, error) {
	bedrooms, err := strconv.Atoi(strings.TrimSpace(input.Bedrooms))
	if err != nil {
		return nil, ErrInvalidNumberFormat
	}
	bathrooms, err := strconv.ParseFloat(strings.TrimSpace(input.Bathrooms), 64)
	if err != nil {
		return nil, ErrInvalidNumberFormat
	}
	sqft, err := strconv.Atoi(strings.TrimSpace(input.Sqft))
	if err != nil {
		return nil, ErrInvalidNumberFormat
	}

	if len(input.InteriorImages) > MaxInteriorImages {
		return nil, ErrTooManyImages
	}

	var mainImage string
	if input.MainImage != nil {
		mainImage, err = s.files.Save("mainImage", input.MainImage)
		if err != nil {
			return nil, err
		}
	}

	interiorImages := []string{}
	for _, fileHeader := range input.InteriorImages {
		path, err := s.files.Save("interiorImages", fileHeader)
		if err != nil {
			return nil, err
		}
		interiorImages = append(interiorImages, path)
	}

	property := &models.Property{
		Title:           input.Title,
		Description:     input.Description,
		Location:        input.Location,
		Price:           input.Price,
		Bedrooms:        bedrooms,
		Bathrooms:       bathrooms,
		Sqft:            sqft,
		PropertyType:    input.PropertyType,
		TransactionType: input.TransactionType,
		MainImage:       mainImage,
		InteriorImages:  interiorImages,
	}

	if err := s.properties.Create(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

// Search returns the catalog with the filters applied. The predicate set
// matches the one the site's filter panel uses; with no filters the full
// catalog comes back.
func (s *PropertyService) Search(ctx context.Context, filters ListingFilters) ([]models.Property, error) {
	properties, err := s.properties.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if filters == (ListingFilters{}) {
		return properties, nil
	}

	matched := []models.Property{}
	for _, p := range properties {
		if matchesFilters(&p, filters) {
			matched = append(matched, p)
		}
	}

	return matched, nil
}

func matchesFilters(p *models.Property, f ListingFilters) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) &&
			!strings.Contains(strings.ToLower(p.Location), needle) {
			return false
		}
	}
	if f.Location != "" && f.Location != "All Locations" && !strings.Contains(p.Location, f.Location) {
		return false
	}
	if f.PropertyType != "" && f.PropertyType != "All Types" && p.PropertyType != f.PropertyType {
		return false
	}
	if f.TransactionType != "" && f.TransactionType != "Buy or Rent" && p.TransactionType != f.TransactionType {
		return false
	}
	return matchesPriceRange(p.Price, f.PriceRange)
}

// Price bands over the comma-grouped rupee text. A price that does not parse
// is never excluded by a price filter.
func matchesPriceRange(price, band string) bool {
	if band == "" || band == "Any Price" {
		return true
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(price, ",", ""), 64)
	if err != nil {
		return true
	}

	switch band {
	case "Under ₹1 Cr":
		return value < 10000000
	case "₹1 Cr - ₹2 Cr":
		return value >= 10000000 && value < 20000000
	case "₹2 Cr - ₹3 Cr":
		return value >= 20000000 && value < 30000000
	case "₹3 Cr - ₹5 Cr":
		return value >= 30000000 && value < 50000000
	case "Above ₹5 Cr":
		return value >= 50000000
	}
	return true
}
