// Package menu manages the partner's menu categories and products through
// the platform backend. Image uploads are not handled here.
package menu

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MikeMC777/partner-dashboard/internal/httpx"
)

var (
	ErrNotFound    = errors.New("menu item not found")
	ErrInvalidItem = errors.New("invalid menu item")
)

type Service interface {
	Categories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, in CategoryInput) (*Category, error)
	UpdateCategory(ctx context.Context, id string, in CategoryInput) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error

	Products(ctx context.Context, categoryID string) ([]Product, error)
	CreateProduct(ctx context.Context, in ProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, id string, in ProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type Client struct{ http *httpx.Client }

func NewClient(c *httpx.Client) *Client { return &Client{http: c} }

const (
	categoriesPath = "/partners/menu/categories"
	productsPath   = "/partners/menu/products"
)

// call maps a backend 404 to ErrNotFound and wraps everything else with op.
func (c *Client) call(ctx context.Context, op, method, path string, in, out any) error {
	err := c.http.DoJSON(ctx, method, path, in, out)
	if err == nil {
		return nil
	}
	var se *httpx.StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var res categoriesResponse
	if err := c.call(ctx, "list categories", http.MethodGet, categoriesPath, nil, &res); err != nil {
		return nil, err
	}
	out := make([]Category, 0, len(res.Categories))
	for _, b := range res.Categories {
		out = append(out, b.category())
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	if err := in.validate(true); err != nil {
		return nil, err
	}
	var res categoryResponse
	if err := c.call(ctx, "create category", http.MethodPost, categoriesPath, in, &res); err != nil {
		return nil, err
	}
	cat := res.Category.category()
	return &cat, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, in CategoryInput) (*Category, error) {
	if err := in.validate(false); err != nil {
		return nil, err
	}
	var res categoryResponse
	if err := c.call(ctx, "update category", http.MethodPut, categoriesPath+"/"+url.PathEscape(id), in, &res); err != nil {
		return nil, err
	}
	cat := res.Category.category()
	return &cat, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.call(ctx, "delete category", http.MethodDelete, categoriesPath+"/"+url.PathEscape(id), nil, nil)
}

// Products lists the menu, or one category of it when categoryID is set.
func (c *Client) Products(ctx context.Context, categoryID string) ([]Product, error) {
	path := productsPath
	if categoryID != "" {
		path += "?" + url.Values{"categoryId": {categoryID}}.Encode()
	}
	var res productsResponse
	if err := c.call(ctx, "list products", http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	if res.Products == nil {
		return []Product{}, nil
	}
	return res.Products, nil
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (*Product, error) {
	if err := in.validate(true); err != nil {
		return nil, err
	}
	if in.IsAvailable == nil {
		yes := true
		in.IsAvailable = &yes
	}
	var res productResponse
	if err := c.call(ctx, "create product", http.MethodPost, productsPath, in, &res); err != nil {
		return nil, err
	}
	return &res.Product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in ProductInput) (*Product, error) {
	if err := in.validate(false); err != nil {
		return nil, err
	}
	var res productResponse
	if err := c.call(ctx, "update product", http.MethodPut, productsPath+"/"+url.PathEscape(id), in, &res); err != nil {
		return nil, err
	}
	return &res.Product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.call(ctx, "delete product", http.MethodDelete, productsPath+"/"+url.PathEscape(id), nil, nil)
}
