package transport

type CreateUserRequest struct {
	Firstname       string `json:"firstname"`
	Surname         string `json:"surname"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type UpdateUserRequest struct {
	Firstname *string `json:"firstname"`
	Surname   *string `json:"surname"`
	Email     *string `json:"email"`
}

type UserResponse struct {
	ID        uint   `json:"id"`
	Firstname string `json:"firstname"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

type CreateCategoryRequest struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	UseInMenu bool   `json:"use_in_menu"`
}

type UpdateCategoryRequest struct {
	Name      *string `json:"name"`
	Slug      *string `json:"slug"`
	UseInMenu *bool   `json:"use_in_menu"`
}

type ProductImageInput struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

type ProductOptionInput struct {
	Title  string `json:"title"`
	Shape  string `json:"shape"`
	Radius int    `json:"radius"`
	Type   string `json:"type"`
	Values string `json:"values"`
}

type CreateProductRequest struct {
	Enabled           bool                 `json:"enabled"`
	Name              string               `json:"name"`
	Slug              string               `json:"slug"`
	Stock             int                  `json:"stock"`
	Description       string               `json:"description"`
	Price             float64              `json:"price"`
	PriceWithDiscount float64              `json:"price_with_discount"`
	CategoryIDs       []uint               `json:"category_ids"`
	Images            []ProductImageInput  `json:"images"`
	Options           []ProductOptionInput `json:"options"`
}

type UpdateProductRequest struct {
	Enabled           *bool                `json:"enabled"`
	Name              *string              `json:"name"`
	Slug              *string              `json:"slug"`
	Stock             *int                 `json:"stock"`
	Description       *string              `json:"description"`
	Price             *float64             `json:"price"`
	PriceWithDiscount *float64             `json:"price_with_discount"`
	CategoryIDs       []uint               `json:"category_ids"`
	Images            []ProductImageInput  `json:"images"`
	Options           []ProductOptionInput `json:"options"`
}

type ListResponse struct {
	Data  any   `json:"data"`
	Total int64 `json:"total"`
	Limit int   `json:"limit"`
	Page  int   `json:"page"`
}
