package repo

import (
	"context"

	"digital_store/internal/models"
	"digital_store/internal/query"
	"digital_store/internal/transport"
)

func (r *GormRepo) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.DB.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormRepo) ListCategories(ctx context.Context, f *query.Filter, p query.Pagination) (int64, []models.Category, error) {
	var total int64
	tx := f.Apply(r.DB.WithContext(ctx).Model(&models.Category{}))
	if err := tx.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Category
	tx = f.Apply(r.DB.WithContext(ctx).Model(&models.Category{}))
	if err := p.Apply(tx).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) CreateCategory(ctx context.Context, category *models.Category) error {
	return r.DB.WithContext(ctx).Create(category).Error
}

func (r *GormRepo) UpdateCategory(ctx context.Context, id uint, req transport.UpdateCategoryRequest) error {
	var category models.Category
	if err := r.DB.WithContext(ctx).First(&category, id).Error; err != nil {
		return err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		category.Slug = *req.Slug
	}
	if req.UseInMenu != nil {
		category.UseInMenu = *req.UseInMenu
	}

	return r.DB.WithContext(ctx).Save(&category).Error
}

func (r *GormRepo) DeleteCategory(ctx context.Context, id uint) error {
	var category models.Category
	if err := r.DB.WithContext(ctx).First(&category, id).Error; err != nil {
		return err
	}

	// drop join rows so no product keeps pointing at a dead category
	if err := r.DB.WithContext(ctx).
		Exec("DELETE FROM "+JoinTable+" WHERE category_id = ?", id).Error; err != nil {
		return err
	}

	return r.DB.WithContext(ctx).Delete(&category).Error
}
