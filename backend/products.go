package backend

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"shopper-front/models"
)

// ProductsBySlug fetches a store's product list.
func (c *Client) ProductsBySlug(ctx context.Context, slug string) ([]models.Product, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/api/products/by-slug/"+escape(slug), "", nil)
	if err != nil {
		return nil, fmt.Errorf("products request: %w", err)
	}
	var products []models.Product
	if err := decode(resp, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func productFields(slug string, form models.ProductForm) map[string]string {
	return map[string]string{
		"slug":          slug,
		"name":          form.Name,
		"description":   form.Description,
		"old_price":     form.OldPrice,
		"current_price": form.CurrentPrice,
	}
}

// CreateProduct posts the multipart product form keyed by store slug.
func (c *Client) CreateProduct(ctx context.Context, token, slug string, form models.ProductForm, image *multipart.FileHeader) error {
	files := map[string]*multipart.FileHeader{"images": image}
	resp, err := c.doMultipart(ctx, http.MethodPost, "/api/products/create", token, productFields(slug, form), files)
	if err != nil {
		return fmt.Errorf("create product request: %w", err)
	}
	return decode(resp, nil)
}

// UpdateProduct patches a product by id.
func (c *Client) UpdateProduct(ctx context.Context, token, id, slug string, form models.ProductForm, image *multipart.FileHeader) error {
	files := map[string]*multipart.FileHeader{"images": image}
	resp, err := c.doMultipart(ctx, http.MethodPatch, "/api/products/update/"+escape(id), token, productFields(slug, form), files)
	if err != nil {
		return fmt.Errorf("update product request: %w", err)
	}
	return decode(resp, nil)
}

// BuyProduct places a mock order. No optimistic bookkeeping happens here;
// callers refetch the product list after success.
func (c *Client) BuyProduct(ctx context.Context, id string) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/products/buy/"+escape(id), "", nil)
	if err != nil {
		return fmt.Errorf("buy request: %w", err)
	}
	return decode(resp, nil)
}
