package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"digital_store/internal/handlers"
	"digital_store/internal/hash"
	"digital_store/internal/httpserver"
	"digital_store/internal/models"
	"digital_store/internal/repo"
	"digital_store/internal/tokens"
)

var testSecret = []byte("test-jwt-secret")

type testEnv struct {
	T    *testing.T
	E    *echo.Echo
	DB   *gorm.DB
	Repo *repo.GormRepo
}

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.SetupJoinTable(&models.Product{}, "Categories", &models.ProductCategoryOption{}); err != nil {
		t.Fatalf("failed to set up join table: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductOption{},
		&models.ProductCategoryOption{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	db := initTestDB(t)
	gormRepo := &repo.GormRepo{DB: db}

	e := echo.New()
	httpserver.Register(e, &httpserver.Deps{
		UserHandler:     &handlers.UserHandler{Repo: gormRepo, JWTSecret: testSecret},
		CategoryHandler: &handlers.CategoryHandler{Repo: gormRepo},
		ProductHandler:  &handlers.ProductHandler{Repo: gormRepo},
		JWTSecret:       testSecret,
	})

	return &testEnv{T: t, E: e, DB: db, Repo: gormRepo}
}

// doRequest drives the full stack, router and auth guard included.
func (env *testEnv) doRequest(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) authToken() string {
	token, err := tokens.CreateToken(1, testSecret)
	require.NoError(env.T, err)
	return token
}

func (env *testEnv) createUser(email, password string) *models.User {
	pwHash, err := hash.HashPassword(password)
	require.NoError(env.T, err)

	user := models.User{
		Firstname:    "Ana",
		Surname:      "Silva",
		Email:        email,
		PasswordHash: pwHash,
	}
	require.NoError(env.T, env.DB.Create(&user).Error)
	return &user
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) (rows []map[string]any, total float64, limit float64, page float64) {
	t.Helper()
	var resp struct {
		Data  []map[string]any `json:"data"`
		Total float64          `json:"total"`
		Limit float64          `json:"limit"`
		Page  float64          `json:"page"`
	}
	decodeJSON(t, rec, &resp)
	return resp.Data, resp.Total, resp.Limit, resp.Page
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
