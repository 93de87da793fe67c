package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
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

var defaultProductFields = []string{"name", "images", "price"}

type ProductHandler struct {
	Repo     *repo.GormRepo
	Producer events.Publisher
}

func (h *ProductHandler) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	p := query.ParsePagination(c.QueryParam("limit"), c.QueryParam("page"))
	fields := knownProductFields(
		query.ParseFields(c.QueryParam("fields"), strings.Join(defaultProductFields, ",")),
		defaultProductFields,
	)

	f := buildProductFilter(c)

	total, items, err := h.Repo.ListProducts(ctx, f, p)
	if err != nil {
		l.Error("product_search_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	return c.JSON(http.StatusOK, transport.ListResponse{
		Data:  projectProducts(items, fields),
		Total: total,
		Limit: p.Limit,
		Page:  p.Page,
	})
}

// buildProductFilter translates the search query parameters into predicate
// clauses. The "option" parameter is accepted but reserved: it has never
// filtered anything.
func buildProductFilter(c echo.Context) *query.Filter {
	f := &query.Filter{}

	if match := c.QueryParam("match"); match != "" {
		f.Match(match, "name", "description")
	}

	if raw := c.QueryParam("category_ids"); raw != "" {
		ids := parseUintList(raw)
		if len(ids) > 0 {
			f.MemberOf("id", repo.JoinTable, "product_id", "category_id", ids)
		}
	}

	if raw := c.QueryParam("price-range"); raw != "" {
		if lo, hi, ok := parsePriceRange(raw); ok {
			f.Between("price", lo, hi)
		}
	}

	return f
}

func parseUintList(raw string) []uint {
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		if v, err := strconv.Atoi(strings.TrimSpace(p)); err == nil && v > 0 {
			ids = append(ids, uint(v))
		}
	}
	return ids
}

func parsePriceRange(raw string) (float64, float64, bool) {
	lo, hi, found := strings.Cut(raw, "-")
	if !found {
		return 0, 0, false
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return 0, 0, false
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return 0, 0, false
	}
	return min, max, true
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}

	product, err := h.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		l.Error("product_get_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" || req.Slug == "" || req.Price == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Name, slug, and price are required")
	}

	product := models.Product{
		Enabled:           req.Enabled,
		Name:              req.Name,
		Slug:              req.Slug,
		Stock:             req.Stock,
		Description:       req.Description,
		Price:             req.Price,
		PriceWithDiscount: req.PriceWithDiscount,
	}
	for _, in := range req.Images {
		product.Images = append(product.Images, models.ProductImage{
			Enabled: in.Enabled,
			Path:    in.Path,
		})
	}
	for _, in := range req.Options {
		product.Options = append(product.Options, models.ProductOption{
			Title:  in.Title,
			Shape:  in.Shape,
			Radius: in.Radius,
			Type:   in.Type,
			Values: in.Values,
		})
	}
	for _, cid := range req.CategoryIDs {
		product.Categories = append(product.Categories, models.Category{ID: cid})
	}

	if err := h.Repo.CreateProduct(ctx, &product); err != nil {
		l.Error("product_create_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	publish(c, h.Producer, events.TopicProducts, fmt.Sprint(product.ID), map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	})
	l.Info("product_created", "product_id", product.ID)
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}

	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Repo.UpdateProduct(ctx, id, req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		l.Error("product_update_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	publish(c, h.Producer, events.TopicProducts, fmt.Sprint(id), map[string]any{
		"type":      "product_updated",
		"productID": id,
	})
	l.Info("product_updated", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}

	if err := h.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		l.Error("product_delete_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	publish(c, h.Producer, events.TopicProducts, fmt.Sprint(id), map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})
	l.Info("product_deleted", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}
