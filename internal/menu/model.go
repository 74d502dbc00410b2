package menu

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	IsAvailable  bool      `json:"isAvailable"`
	DisplayOrder int       `json:"displayOrder"`
	ProductCount int       `json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// backendCategory is the wire shape, which nests the product count.
type backendCategory struct {
	Category
	Count *struct {
		Products int `json:"products"`
	} `json:"_count,omitempty"`
}

func (b backendCategory) category() Category {
	c := b.Category
	if b.Count != nil {
		c.ProductCount = b.Count.Products
	}
	return c
}

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        string          `json:"imageUrl,omitempty"`
	PreparationTime int             `json:"preparationTime"`
	IsAvailable     bool            `json:"isAvailable"`
	SalesCount      int             `json:"salesCount"`
	MenuCategoryID  string          `json:"menuCategoryId"`
	MenuCategory    *CategoryRef    `json:"menuCategory,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// CategoryInput creates or edits a category. On update omitted fields are
// left unchanged.
// swagger:model CategoryInput
type CategoryInput struct {
	Name        *string `json:"name,omitempty" example:"Grelhados"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

func (in CategoryInput) validate(create bool) error {
	if create && in.Name == nil {
		return fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return fmt.Errorf("%w: name must not be blank", ErrInvalidItem)
	}
	return nil
}

// ProductInput creates or edits a product. On create name, price,
// menuCategoryId and preparationTime are required and isAvailable defaults to
// true.
// swagger:model ProductInput
type ProductInput struct {
	Name            *string          `json:"name,omitempty" example:"Frango grelhado"`
	Description     *string          `json:"description,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty" swaggertype:"number" example:"350.00"`
	MenuCategoryID  *string          `json:"menuCategoryId,omitempty"`
	PreparationTime *int             `json:"preparationTime,omitempty" example:"20"`
	IsAvailable     *bool            `json:"isAvailable,omitempty"`
}

func (in ProductInput) validate(create bool) error {
	if create {
		switch {
		case in.Name == nil:
			return fmt.Errorf("%w: name is required", ErrInvalidItem)
		case in.Price == nil:
			return fmt.Errorf("%w: price is required", ErrInvalidItem)
		case in.MenuCategoryID == nil:
			return fmt.Errorf("%w: menuCategoryId is required", ErrInvalidItem)
		case in.PreparationTime == nil:
			return fmt.Errorf("%w: preparationTime is required", ErrInvalidItem)
		}
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return fmt.Errorf("%w: name must not be blank", ErrInvalidItem)
	}
	if in.Price != nil && !in.Price.IsPositive() {
		return fmt.Errorf("%w: price must be positive", ErrInvalidItem)
	}
	if in.MenuCategoryID != nil && *in.MenuCategoryID == "" {
		return fmt.Errorf("%w: menuCategoryId must not be empty", ErrInvalidItem)
	}
	if in.PreparationTime != nil && *in.PreparationTime < 0 {
		return fmt.Errorf("%w: preparationTime must not be negative", ErrInvalidItem)
	}
	return nil
}

type categoriesResponse struct {
	Categories []backendCategory `json:"categories"`
}

type categoryResponse struct {
	Message  string          `json:"message"`
	Category backendCategory `json:"category"`
}

type productsResponse struct {
	Products []Product `json:"products"`
}

type productResponse struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}
