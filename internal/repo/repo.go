package repo

import (
	"gorm.io/gorm"
)

// GormRepo is the entity access layer: every handler goes through it and
// never touches gorm directly.
type GormRepo struct {
	DB *gorm.DB
}

// JoinTable is the product/category association table.
const JoinTable = "product_category_options"
