package backend

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"shopper-front/models"
)

// ListStores fetches the public store directory.
func (c *Client) ListStores(ctx context.Context) ([]models.Store, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/api/stores/", "", nil)
	if err != nil {
		return nil, fmt.Errorf("stores request: %w", err)
	}
	var stores []models.Store
	if err := decode(resp, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// StoreBySlug fetches one public store record.
func (c *Client) StoreBySlug(ctx context.Context, slug string) (*models.Store, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/api/stores/by-slug/"+escape(slug), "", nil)
	if err != nil {
		return nil, fmt.Errorf("store request: %w", err)
	}
	var store models.Store
	if err := decode(resp, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

func storeFields(form models.StoreForm) map[string]string {
	return map[string]string{
		"name":           form.Name,
		"store_type":     form.StoreType,
		"email":          form.Email,
		"phone":          form.Phone,
		"quote":          form.Quote,
		"description":    form.Description,
		"navbar_enabled": strconv.FormatBool(form.NavbarEnabled),
		"logo_position":  form.LogoPosition,
		"logo_alt":       form.LogoAlt,
	}
}

// CreateStore posts the multipart creation form. The server assigns the slug
// and returns the full record.
func (c *Client) CreateStore(ctx context.Context, token string, form models.StoreForm, logo *multipart.FileHeader) (*models.Store, error) {
	files := map[string]*multipart.FileHeader{"logo": logo}
	resp, err := c.doMultipart(ctx, http.MethodPost, "/api/stores/create", token, storeFields(form), files)
	if err != nil {
		return nil, fmt.Errorf("create store request: %w", err)
	}
	var store models.Store
	if err := decode(resp, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

// UpdateStore patches a store by id. The response replaces the caller's
// whole store record; the server owns derived fields like the slug.
func (c *Client) UpdateStore(ctx context.Context, token, id string, form models.StoreForm, logo *multipart.FileHeader) (*models.Store, error) {
	fields := map[string]string{
		"name":        form.Name,
		"quote":       form.Quote,
		"description": form.Description,
		"logo_alt":    form.LogoAlt,
	}
	files := map[string]*multipart.FileHeader{"logo": logo}
	resp, err := c.doMultipart(ctx, http.MethodPatch, "/api/stores/update/"+escape(id), token, fields, files)
	if err != nil {
		return nil, fmt.Errorf("update store request: %w", err)
	}
	var store models.Store
	if err := decode(resp, &store); err != nil {
		return nil, err
	}
	return &store, nil
}
