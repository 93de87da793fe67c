package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"digital_store/internal/events"
	"digital_store/internal/logging"
	"digital_store/internal/models"
)

// parseID reads the :id path parameter. Anything that is not a positive
// integer cannot resolve to an entity, so callers treat the error as 404.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.ErrNotFound
	}
	return uint(id), nil
}

// publish sends a catalog event best-effort: a broker failure is logged and
// never fails the request.
func publish(c echo.Context, producer events.Publisher, topic, key string, event map[string]any) {
	if producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := producer.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event_publish_failed", "topic", topic, "error", err)
	}
}

// Allow-listed projections: requested field names map to known entity
// attributes, unknown names are ignored, and an all-unknown list falls back
// to the resource default.

var categoryFields = map[string]func(*models.Category) any{
	"id":          func(c *models.Category) any { return c.ID },
	"name":        func(c *models.Category) any { return c.Name },
	"slug":        func(c *models.Category) any { return c.Slug },
	"use_in_menu": func(c *models.Category) any { return c.UseInMenu },
	"created_at":  func(c *models.Category) any { return c.CreatedAt },
	"updated_at":  func(c *models.Category) any { return c.UpdatedAt },
}

var productFields = map[string]func(*models.Product) any{
	"id":                  func(p *models.Product) any { return p.ID },
	"enabled":             func(p *models.Product) any { return p.Enabled },
	"name":                func(p *models.Product) any { return p.Name },
	"slug":                func(p *models.Product) any { return p.Slug },
	"stock":               func(p *models.Product) any { return p.Stock },
	"description":         func(p *models.Product) any { return p.Description },
	"price":               func(p *models.Product) any { return p.Price },
	"price_with_discount": func(p *models.Product) any { return p.PriceWithDiscount },
	"images":              func(p *models.Product) any { return p.Images },
	"options":             func(p *models.Product) any { return p.Options },
	"category_ids":        func(p *models.Product) any { return p.CategoryIDs },
	"created_at":          func(p *models.Product) any { return p.CreatedAt },
	"updated_at":          func(p *models.Product) any { return p.UpdatedAt },
}

func knownCategoryFields(fields, def []string) []string {
	return knownFields(fields, def, func(f string) bool { _, ok := categoryFields[f]; return ok })
}

func knownProductFields(fields, def []string) []string {
	return knownFields(fields, def, func(f string) bool { _, ok := productFields[f]; return ok })
}

func knownFields(fields, def []string, known func(string) bool) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if known(f) {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func projectCategories(rows []models.Category, fields []string) []map[string]any {
	data := make([]map[string]any, 0, len(rows))
	for i := range rows {
		row := make(map[string]any, len(fields))
		for _, f := range fields {
			row[f] = categoryFields[f](&rows[i])
		}
		data = append(data, row)
	}
	return data
}

func projectProducts(rows []models.Product, fields []string) []map[string]any {
	data := make([]map[string]any, 0, len(rows))
	for i := range rows {
		row := make(map[string]any, len(fields))
		for _, f := range fields {
			row[f] = productFields[f](&rows[i])
		}
		data = append(data, row)
	}
	return data
}
