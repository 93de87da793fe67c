package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital_store/internal/models"
)

func seedCategories(env *testEnv, categories ...models.Category) {
	for i := range categories {
		require.NoError(env.T, env.DB.Create(&categories[i]).Error)
	}
}

func TestCreateCategory(t *testing.T) {
	env := newTestEnv(t)
	token := env.authToken()

	payload := map[string]any{
		"name":        "Shoes",
		"slug":        "shoes",
		"use_in_menu": true,
	}
	rec := env.doRequest(http.MethodPost, "/v1/category", payload, token)
	requireStatus(t, rec, http.StatusCreated)

	var created models.Category
	decodeJSON(t, rec, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Shoes", created.Name)
	assert.Equal(t, "shoes", created.Slug)
	assert.True(t, created.UseInMenu)
}

func TestCreateCategory_MissingFields(t *testing.T) {
	env := newTestEnv(t)
	token := env.authToken()

	rec := env.doRequest(http.MethodPost, "/v1/category", map[string]any{"name": "Shoes"}, token)
	requireStatus(t, rec, http.StatusBadRequest)

	var count int64
	env.DB.Model(&models.Category{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateCategory_Unauthorized(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]any{"name": "Shoes", "slug": "shoes"}

	rec := env.doRequest(http.MethodPost, "/v1/category", payload, "")
	requireStatus(t, rec, http.StatusUnauthorized)

	rec = env.doRequest(http.MethodPost, "/v1/category", payload, "not-a-token")
	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestGetCategory(t *testing.T) {
	env := newTestEnv(t)
	seedCategories(env, models.Category{Name: "Shoes", Slug: "shoes", UseInMenu: true})

	rec := env.doRequest(http.MethodGet, "/v1/category/1", nil, "")
	requireStatus(t, rec, http.StatusOK)

	var got models.Category
	decodeJSON(t, rec, &got)
	assert.Equal(t, "Shoes", got.Name)

	rec = env.doRequest(http.MethodGet, "/v1/category/99", nil, "")
	requireStatus(t, rec, http.StatusNotFound)
}

func TestSearchCategories_Defaults(t *testing.T) {
	env := newTestEnv(t)
	seedCategories(env,
		models.Category{Name: "Shoes", Slug: "shoes"},
		models.Category{Name: "Shirts", Slug: "shirts"},
	)

	rec := env.doRequest(http.MethodGet, "/v1/category/search", nil, "")
	requireStatus(t, rec, http.StatusOK)

	rows, total, limit, page := decodeList(t, rec)
	assert.EqualValues(t, 2, total)
	assert.EqualValues(t, 12, limit)
	assert.EqualValues(t, 1, page)
	require.Len(t, rows, 2)

	// default projection is name,slug only
	assert.Equal(t, map[string]any{"name": "Shoes", "slug": "shoes"}, rows[0])
}

func TestSearchCategories_UseInMenuFilter(t *testing.T) {
	env := newTestEnv(t)
	seedCategories(env,
		models.Category{Name: "Shoes", Slug: "shoes", UseInMenu: true},
		models.Category{Name: "Archive", Slug: "archive", UseInMenu: false},
	)

	rec := env.doRequest(http.MethodGet, "/v1/category/search?use_in_menu=true&fields=name,use_in_menu", nil, "")
	requireStatus(t, rec, http.StatusOK)

	rows, total, _, _ := decodeList(t, rec)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Shoes", rows[0]["name"])
	assert.Equal(t, true, rows[0]["use_in_menu"])

	rec = env.doRequest(http.MethodGet, "/v1/category/search?use_in_menu=false&fields=name", nil, "")
	rows, total, _, _ = decodeList(t, rec)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Archive", rows[0]["name"])
}

func TestSearchCategories_Pagination(t *testing.T) {
	env := newTestEnv(t)
	seedCategories(env,
		models.Category{Name: "A", Slug: "a"},
		models.Category{Name: "B", Slug: "b"},
		models.Category{Name: "C", Slug: "c"},
		models.Category{Name: "D", Slug: "d"},
		models.Category{Name: "E", Slug: "e"},
	)

	rec := env.doRequest(http.MethodGet, "/v1/category/search?limit=2&page=1&fields=name", nil, "")
	page1, total, _, _ := decodeList(t, rec)
	assert.EqualValues(t, 5, total)
	require.Len(t, page1, 2)

	rec = env.doRequest(http.MethodGet, "/v1/category/search?limit=2&page=2&fields=name", nil, "")
	page2, _, _, page := decodeList(t, rec)
	require.Len(t, page2, 2)
	assert.EqualValues(t, 2, page)

	// pages never overlap
	assert.Equal(t, "C", page2[0]["name"])
	assert.Equal(t, "D", page2[1]["name"])
	assert.NotEqual(t, page1[0]["name"], page2[0]["name"])
	assert.NotEqual(t, page1[1]["name"], page2[1]["name"])
}

func TestSearchCategories_NoLimitSentinel(t *testing.T) {
	env := newTestEnv(t)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		seedCategories(env, models.Category{Name: s, Slug: s})
	}

	rec := env.doRequest(http.MethodGet, "/v1/category/search?limit=-1&page=7&fields=name", nil, "")
	rows, total, limit, _ := decodeList(t, rec)
	assert.EqualValues(t, 5, total)
	assert.EqualValues(t, -1, limit)
	assert.Len(t, rows, 5)
}

func TestUpdateCategory(t *testing.T) {
	env := newTestEnv(t)
	token := env.authToken()
	seedCategories(env, models.Category{Name: "Shoes", Slug: "shoes"})

	rec := env.doRequest(http.MethodPut, "/v1/category/1", map[string]any{"name": "Sneakers"}, token)
	requireStatus(t, rec, http.StatusNoContent)
	assert.Empty(t, rec.Body.String())

	var got models.Category
	require.NoError(t, env.DB.First(&got, 1).Error)
	assert.Equal(t, "Sneakers", got.Name)
	assert.Equal(t, "shoes", got.Slug, "untouched field keeps its value")

	rec = env.doRequest(http.MethodPut, "/v1/category/99", map[string]any{"name": "X"}, token)
	requireStatus(t, rec, http.StatusNotFound)
}

func TestDeleteCategory(t *testing.T) {
	env := newTestEnv(t)
	token := env.authToken()
	seedCategories(env, models.Category{Name: "Shoes", Slug: "shoes"})

	rec := env.doRequest(http.MethodDelete, "/v1/category/1", nil, token)
	requireStatus(t, rec, http.StatusNoContent)

	rec = env.doRequest(http.MethodGet, "/v1/category/1", nil, "")
	requireStatus(t, rec, http.StatusNotFound)

	rec = env.doRequest(http.MethodDelete, "/v1/category/1", nil, token)
	requireStatus(t, rec, http.StatusNotFound)
}
