package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"digital_store/internal/events"
	"digital_store/internal/logging"
	"digital_store/internal/models"
	"digital_store/internal/query"
	"digital_store/internal/repo"
	"digital_store/internal/transport"
)

var defaultCategoryFields = []string{"name", "slug"}

type CategoryHandler struct {
	Repo     *repo.GormRepo
	Producer events.Publisher
}

func (h *CategoryHandler) SearchCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.search")

	p := query.ParsePagination(c.QueryParam("limit"), c.QueryParam("page"))
	fields := knownCategoryFields(
		query.ParseFields(c.QueryParam("fields"), strings.Join(defaultCategoryFields, ",")),
		defaultCategoryFields,
	)

	f := &query.Filter{}
	if c.QueryParams().Has("use_in_menu") {
		f.Eq("use_in_menu", c.QueryParam("use_in_menu") == "true")
	}

	total, items, err := h.Repo.ListCategories(ctx, f, p)
	if err != nil {
		l.Error("category_search_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	return c.JSON(http.StatusOK, transport.ListResponse{
		Data:  projectCategories(items, fields),
		Total: total,
		Limit: p.Limit,
		Page:  p.Page,
	})
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Category not found")
	}

	category, err := h.Repo.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		l.Error("category_get_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create")

	var req transport.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" || req.Slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name and slug are required")
	}

	category := models.Category{
		Name:      req.Name,
		Slug:      req.Slug,
		UseInMenu: req.UseInMenu,
	}
	if err := h.Repo.CreateCategory(ctx, &category); err != nil {
		l.Error("category_create_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	publish(c, h.Producer, events.TopicCategories, fmt.Sprint(category.ID), map[string]any{
		"type":       "category_created",
		"categoryID": category.ID,
		"name":       category.Name,
	})
	l.Info("category_created", "category_id", category.ID)
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.update")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Category not found")
	}

	var req transport.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Repo.UpdateCategory(ctx, id, req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		l.Error("category_update_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	publish(c, h.Producer, events.TopicCategories, fmt.Sprint(id), map[string]any{
		"type":       "category_updated",
		"categoryID": id,
	})
	l.Info("category_updated", "category_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Category not found")
	}

	if err := h.Repo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		l.Error("category_delete_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	publish(c, h.Producer, events.TopicCategories, fmt.Sprint(id), map[string]any{
		"type":       "category_deleted",
		"categoryID": id,
	})
	l.Info("category_deleted", "category_id", id)
	return c.NoContent(http.StatusNoContent)
}
