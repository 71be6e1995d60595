package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"luxe-estates/internal/responses"
	"luxe-estates/internal/services"
	"luxe-estates/internal/storage"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// Add handles POST /api/properties/add: text fields plus mainImage (at most
// one) and interiorImages (up to ten) as multipart uploads.
func (h *PropertyHandler) Add(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		responses.Message(c, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	input := services.ListingInput{
		Title:           c.PostForm("title"),
		Description:     c.PostForm("description"),
		Location:        c.PostForm("location"),
		Price:           c.PostForm("price"),
		Bedrooms:        c.PostForm("bedrooms"),
		Bathrooms:       c.PostForm("bathrooms"),
		Sqft:            c.PostForm("sqft"),
		PropertyType:    c.PostForm("propertyType"),
		TransactionType: c.PostForm("transactionType"),
		InteriorImages:  form.File["interiorImages"],
	}
	mainImages := form.File["mainImage"]
	if len(mainImages) > 1 {
		// The upload contract allows a single main image part.
		responses.Message(c, http.StatusBadRequest, "Unexpected field")
		return
	}
	if len(mainImages) == 1 {
		input.MainImage = mainImages[0]
	}

	property, err := h.propertyService.CreateListing(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidNumberFormat):
			responses.Message(c, http.StatusBadRequest, "Invalid number format for bedrooms, bathrooms, or sqft.")
		case errors.Is(err, storage.ErrNotImage):
			responses.Message(c, http.StatusBadRequest, "Not an image! Please upload only images.")
		case errors.Is(err, services.ErrTooManyImages):
			responses.Message(c, http.StatusBadRequest, "Too many interior images (maximum 10).")
		default:
			responses.Error(c, http.StatusInternalServerError, "Server error while adding property.", err)
		}
		return
	}

	c.JSON(http.StatusCreated, property)
}

// List handles GET /api/properties. Without query parameters it returns the
// full catalog; search, location, propertyType, transactionType and
// priceRange narrow it server-side.
func (h *PropertyHandler) List(c *gin.Context) {
	filters := services.ListingFilters{
		Search:          c.Query("search"),
		Location:        c.Query("location"),
		PropertyType:    c.Query("propertyType"),
		TransactionType: c.Query("transactionType"),
		PriceRange:      c.Query("priceRange"),
	}

	properties, err := h.propertyService.Search(c.Request.Context(), filters)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Server error while fetching properties", err)
		return
	}

	c.JSON(http.StatusOK, properties)
}
