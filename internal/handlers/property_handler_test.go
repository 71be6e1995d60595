package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listingFields() map[string]string {
	return map[string]string{
		"title":           "Luxury Villa in South Delhi",
		"description":     "Exquisite villa",
		"location":        "Greater Kailash, Delhi",
		"price":           "4,50,00,000",
		"bedrooms":        "4",
		"bathrooms":       "4.5",
		"sqft":            "3500",
		"propertyType":    "Villa",
		"transactionType": "Buy",
	}
}

func TestAddProperty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postMultipart(t, "/api/properties/add", listingFields(), []uploadFile{
		{field: "mainImage", name: "villa.png", content: pngBytes},
		{field: "interiorImages", name: "living.png", content: pngBytes},
		{field: "interiorImages", name: "kitchen.png", content: pngBytes},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "Luxury Villa in South Delhi", body["title"])
	assert.Equal(t, "4,50,00,000", body["price"])
	assert.Equal(t, float64(4), body["bedrooms"])
	assert.Equal(t, 4.5, body["bathrooms"])
	assert.Equal(t, float64(3500), body["sqft"])

	mainImage, _ := body["mainImage"].(string)
	assert.True(t, strings.HasPrefix(mainImage, "/uploads/mainImage-"), "got %q", mainImage)

	interior, ok := body["interiorImages"].([]any)
	require.True(t, ok)
	assert.Len(t, interior, 2)

	require.Len(t, env.properties.properties, 1)
}

func TestAddPropertyInvalidNumbers(t *testing.T) {
	env := newTestEnv(t)

	fields := listingFields()
	fields["bedrooms"] = "abc"

	rec := env.postMultipart(t, "/api/properties/add", fields, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid number format for bedrooms, bathrooms, or sqft.", decodeBody(t, rec)["message"])
	assert.Empty(t, env.properties.properties, "a rejected submission must not create a record")
}

func TestAddPropertyRejectsDuplicateMainImage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postMultipart(t, "/api/properties/add", listingFields(), []uploadFile{
		{field: "mainImage", name: "front.png", content: pngBytes},
		{field: "mainImage", name: "back.png", content: pngBytes},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Unexpected field", decodeBody(t, rec)["message"])
	assert.Empty(t, env.properties.properties)
}

func TestServeUploadedImage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postMultipart(t, "/api/properties/add", listingFields(), []uploadFile{
		{field: "mainImage", name: "villa.png", content: pngBytes},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	mainImage, ok := decodeBody(t, rec)["mainImage"].(string)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(mainImage, "/uploads/"))

	served := env.get(t, mainImage, nil)
	require.Equal(t, http.StatusOK, served.Code)
	assert.Equal(t, pngBytes, served.Body.Bytes())

	missing := env.get(t, "/uploads/no-such-image.png", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestAddPropertyRejectsNonImage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postMultipart(t, "/api/properties/add", listingFields(), []uploadFile{
		{field: "mainImage", name: "contract.pdf", content: []byte("definitely not an image")},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Not an image! Please upload only images.", decodeBody(t, rec)["message"])
	assert.Empty(t, env.properties.properties, "the rejection must precede any database write")
}

func TestListPropertiesRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	const total = 3
	for i := 0; i < total; i++ {
		fields := listingFields()
		fields["title"] = fmt.Sprintf("Listing %d", i)
		rec := env.postMultipart(t, "/api/properties/add", fields, nil)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := env.get(t, "/api/properties", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listings []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	require.Len(t, listings, total)

	for i, listing := range listings {
		assert.Equal(t, fmt.Sprintf("Listing %d", i), listing["title"])
		assert.Equal(t, "4,50,00,000", listing["price"])
		assert.Equal(t, float64(4), listing["bedrooms"])
		assert.Equal(t, 4.5, listing["bathrooms"])
		assert.Equal(t, float64(3500), listing["sqft"])
		assert.Equal(t, "Villa", listing["propertyType"])
		assert.Equal(t, "Buy", listing["transactionType"])
	}
}

func TestListPropertiesEmptyCatalogIsArray(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/api/properties", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListPropertiesFiltered(t *testing.T) {
	env := newTestEnv(t)

	buy := listingFields()
	require.Equal(t, http.StatusCreated, env.postMultipart(t, "/api/properties/add", buy, nil).Code)

	rent := listingFields()
	rent["title"] = "Serviced Apartment near Cyber City"
	rent["price"] = "95,00,000"
	rent["transactionType"] = "Rent"
	require.Equal(t, http.StatusCreated, env.postMultipart(t, "/api/properties/add", rent, nil).Code)

	rec := env.get(t, "/api/properties?transactionType=Rent", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listings []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "Serviced Apartment near Cyber City", listings[0]["title"])

	rec = env.get(t, "/api/properties?priceRange="+"Under+%E2%82%B91+Cr", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "95,00,000", listings[0]["price"])
}
