package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Firstname    string    `gorm:"not null"                 json:"firstname"`
	Surname      string    `gorm:"not null"                 json:"surname"`
	Email        string    `gorm:"index;not null"           json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Category struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null"                 json:"name"`
	Slug      string    `gorm:"not null"                 json:"slug"`
	UseInMenu bool      `gorm:"default:false"            json:"use_in_menu"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Product struct {
	ID                uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Enabled           bool            `gorm:"default:false"            json:"enabled"`
	Name              string          `gorm:"not null"                 json:"name"`
	Slug              string          `gorm:"not null"                 json:"slug"`
	Stock             int             `gorm:"default:0"                json:"stock"`
	Description       string          `json:"description"`
	Price             float64         `gorm:"not null"                 json:"price"`
	PriceWithDiscount float64         `json:"price_with_discount"`
	Images            []ProductImage  `gorm:"constraint:OnDelete:CASCADE"        json:"images"`
	Options           []ProductOption `gorm:"constraint:OnDelete:CASCADE"        json:"options"`
	Categories        []Category      `gorm:"many2many:product_category_options" json:"-"`
	CategoryIDs       []uint          `gorm:"-"                                  json:"category_ids"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductCategoryOption is the join row behind Product.Categories. It is
// registered with SetupJoinTable so the table keeps its own timestamps.
type ProductCategoryOption struct {
	ProductID  uint      `gorm:"primaryKey" json:"product_id"`
	CategoryID uint      `gorm:"primaryKey" json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ProductImage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"index;not null"           json:"product_id"`
	Enabled   bool      `gorm:"default:false"            json:"enabled"`
	Path      string    `gorm:"not null"                 json:"path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProductOption struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"index;not null"           json:"product_id"`
	Title     string    `gorm:"not null"                 json:"title"`
	Shape     string    `gorm:"default:square"           json:"shape"`
	Radius    int       `gorm:"default:0"                json:"radius"`
	Type      string    `gorm:"default:text"             json:"type"`
	Values    string    `gorm:"not null"                 json:"values"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
