package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jafarshop/shopfront/internal/domain"
)

// ProductPayload is the wire representation of a product
type ProductPayload struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"owner_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price"`
}

// CreateProductRequest is the create payload
type CreateProductRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price"`
}

// UpdateProductRequest is the update payload. Price is never resubmitted on
// update.
type UpdateProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (p ProductPayload) toDomain() domain.Product {
	return domain.Product{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
	}
}

// FetchProducts retrieves the full catalog.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	var payload []ProductPayload
	if err := c.do(ctx, http.MethodGet, "/v1/products", nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	products := make([]domain.Product, 0, len(payload))
	for _, p := range payload {
		products = append(products, p.toDomain())
	}
	return products, nil
}

// CreateProduct creates a product and returns it with its assigned ID.
func (c *Client) CreateProduct(ctx context.Context, title, description, imageURL string, price float64) (domain.Product, error) {
	req := CreateProductRequest{
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		Price:       price,
	}

	var payload ProductPayload
	if err := c.do(ctx, http.MethodPost, "/v1/products", req, &payload); err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	return payload.toDomain(), nil
}

// UpdateProduct updates title, description and image URL of an existing
// product.
func (c *Client) UpdateProduct(ctx context.Context, id, title, description, imageURL string) (domain.Product, error) {
	req := UpdateProductRequest{
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
	}

	var payload ProductPayload
	if err := c.do(ctx, http.MethodPatch, "/v1/products/"+id, req, &payload); err != nil {
		return domain.Product{}, fmt.Errorf("update product %s: %w", id, err)
	}
	return payload.toDomain(), nil
}

// DeleteProduct removes a product from the catalog.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/v1/products/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}
