package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"luxe-estates/internal/handlers"
	"luxe-estates/internal/models"
	"luxe-estates/internal/routes"
	"luxe-estates/internal/services"
	"luxe-estates/internal/storage"
)

var testSecret = []byte("test-secret")

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAccountStore struct {
	accounts []*models.Account
}

func (f *fakeAccountStore) Create(_ context.Context, account *models.Account) error {
	account.Prepare()
	for _, existing := range f.accounts {
		if existing.Kind == account.Kind && existing.Email == account.Email {
			return services.ErrDuplicateEmail
		}
		if account.Kind == models.KindUser && existing.Kind == models.KindUser && existing.Username == account.Username {
			return services.ErrDuplicateUsername
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.CreatedAt = time.Now()
	stored := *account
	f.accounts = append(f.accounts, &stored)
	return nil
}

func (f *fakeAccountStore) FindByEmail(_ context.Context, kind models.AccountKind, email string) (*models.Account, error) {
	for _, a := range f.accounts {
		if a.Kind == kind && a.Email == email {
			found := *a
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountStore) FindByUsername(_ context.Context, username string) (*models.Account, error) {
	for _, a := range f.accounts {
		if a.Kind == models.KindUser && a.Username == username {
			found := *a
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountStore) FindByID(_ context.Context, kind models.AccountKind, id uuid.UUID) (*models.Account, error) {
	for _, a := range f.accounts {
		if a.Kind == kind && a.ID == id {
			found := *a
			return &found, nil
		}
	}
	return nil, nil
}

type fakePropertyStore struct {
	properties []models.Property
}

func (f *fakePropertyStore) Create(_ context.Context, property *models.Property) error {
	if property.ID == uuid.Nil {
		property.ID = uuid.New()
	}
	now := time.Now()
	property.CreatedAt = now
	property.UpdatedAt = now
	f.properties = append(f.properties, *property)
	return nil
}

func (f *fakePropertyStore) FindAll(_ context.Context) ([]models.Property, error) {
	return append([]models.Property{}, f.properties...), nil
}

type fakeContactStore struct {
	messages []models.ContactMessage
}

func (f *fakeContactStore) Create(_ context.Context, message *models.ContactMessage) error {
	message.Prepare()
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	message.ReceivedAt = time.Now()
	f.messages = append(f.messages, *message)
	return nil
}

type testEnv struct {
	router     *gin.Engine
	accounts   *fakeAccountStore
	properties *fakePropertyStore
	contacts   *fakeContactStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	files, err := storage.NewUploadStore(t.TempDir())
	require.NoError(t, err)

	accounts := &fakeAccountStore{}
	properties := &fakePropertyStore{}
	contacts := &fakeContactStore{}

	authHandler := handlers.NewAuthHandler(services.NewAuthService(accounts, testSecret))
	propertyHandler := handlers.NewPropertyHandler(services.NewPropertyService(properties, files))
	contactHandler := handlers.NewContactHandler(services.NewContactService(contacts))

	router := gin.New()
	router.Static("/uploads", files.Dir())
	routes.RegisterRoutes(router, authHandler, propertyHandler, contactHandler, testSecret)

	return &testEnv{
		router:     router,
		accounts:   accounts,
		properties: properties,
		contacts:   contacts,
	}
}

func (e *testEnv) postJSON(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) get(t *testing.T, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

type uploadFile struct {
	field   string
	name    string
	content []byte
}

func (e *testEnv) postMultipart(t *testing.T, path string, fields map[string]string, files []uploadFile) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
