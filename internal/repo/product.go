package repo

import (
	"context"

	"gorm.io/gorm/clause"

	"digital_store/internal/models"
	"digital_store/internal/query"
	"digital_store/internal/transport"
)

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).
		Preload("Images").
		Preload("Options").
		Preload("Categories").
		First(&product, id).Error; err != nil {
		return nil, err
	}
	fillCategoryIDs(&product)
	return &product, nil
}

func (r *GormRepo) ListProducts(ctx context.Context, f *query.Filter, p query.Pagination) (int64, []models.Product, error) {
	var total int64
	tx := f.Apply(r.DB.WithContext(ctx).Model(&models.Product{}))
	if err := tx.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Product
	tx = f.Apply(r.DB.WithContext(ctx).Model(&models.Product{}).
		Preload("Images").
		Preload("Options").
		Preload("Categories"))
	if err := p.Apply(tx).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	for i := range items {
		fillCategoryIDs(&items[i])
	}
	return total, items, nil
}

// CreateProduct persists the product together with its images, options and
// category associations. Category rows themselves are never touched, only
// the join table.
func (r *GormRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := r.DB.WithContext(ctx).Omit("Categories.*").Create(product).Error; err != nil {
		return err
	}
	fillCategoryIDs(product)
	return nil
}

func (r *GormRepo) UpdateProduct(ctx context.Context, id uint, req transport.UpdateProductRequest) error {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return err
	}

	if req.Enabled != nil {
		product.Enabled = *req.Enabled
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Slug != nil {
		product.Slug = *req.Slug
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.PriceWithDiscount != nil {
		product.PriceWithDiscount = *req.PriceWithDiscount
	}

	if err := r.DB.WithContext(ctx).Save(&product).Error; err != nil {
		return err
	}

	if req.CategoryIDs != nil {
		categories := make([]models.Category, 0, len(req.CategoryIDs))
		for _, cid := range req.CategoryIDs {
			categories = append(categories, models.Category{ID: cid})
		}
		if err := r.DB.WithContext(ctx).Model(&product).
			Omit("Categories.*").
			Association("Categories").Replace(categories); err != nil {
			return err
		}
	}

	if req.Images != nil {
		if err := r.replaceImages(ctx, id, req.Images); err != nil {
			return err
		}
	}
	if req.Options != nil {
		if err := r.replaceOptions(ctx, id, req.Options); err != nil {
			return err
		}
	}

	return nil
}

func (r *GormRepo) replaceImages(ctx context.Context, productID uint, inputs []transport.ProductImageInput) error {
	if err := r.DB.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&models.ProductImage{}).Error; err != nil {
		return err
	}
	if len(inputs) == 0 {
		return nil
	}
	images := make([]models.ProductImage, 0, len(inputs))
	for _, in := range inputs {
		images = append(images, models.ProductImage{
			ProductID: productID,
			Enabled:   in.Enabled,
			Path:      in.Path,
		})
	}
	return r.DB.WithContext(ctx).Create(&images).Error
}

func (r *GormRepo) replaceOptions(ctx context.Context, productID uint, inputs []transport.ProductOptionInput) error {
	if err := r.DB.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&models.ProductOption{}).Error; err != nil {
		return err
	}
	if len(inputs) == 0 {
		return nil
	}
	options := make([]models.ProductOption, 0, len(inputs))
	for _, in := range inputs {
		options = append(options, newProductOption(productID, in))
	}
	return r.DB.WithContext(ctx).Create(&options).Error
}

func newProductOption(productID uint, in transport.ProductOptionInput) models.ProductOption {
	opt := models.ProductOption{
		ProductID: productID,
		Title:     in.Title,
		Shape:     in.Shape,
		Radius:    in.Radius,
		Type:      in.Type,
		Values:    in.Values,
	}
	if opt.Shape == "" {
		opt.Shape = "square"
	}
	if opt.Type == "" {
		opt.Type = "text"
	}
	return opt
}

// DeleteProduct removes the product and cascades to its images, options and
// join rows, never leaving orphaned children behind.
func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Select(clause.Associations).Delete(&product).Error
}

func fillCategoryIDs(p *models.Product) {
	p.CategoryIDs = make([]uint, 0, len(p.Categories))
	for _, c := range p.Categories {
		p.CategoryIDs = append(p.CategoryIDs, c.ID)
	}
}
