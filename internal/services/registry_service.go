// internal/services/registry_service.go
package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/javajoker/collaboration-service/internal/apperror"
	"github.com/javajoker/collaboration-service/internal/models"
)

// BrandRegistry is the brand catalogue owned by the brand service.
type BrandRegistry interface {
	GetBrand(ctx context.Context, id int64) (*models.Brand, error)
	CreateBrand(ctx context.Context, input *models.BrandInput) (*models.Brand, error)
	UpdateBrand(ctx context.Context, id int64, input *models.BrandInput) (*models.Brand, error)
	DeleteBrand(ctx context.Context, id int64) error
}

// CategoryRegistry is the category catalogue owned by the category service.
type CategoryRegistry interface {
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, input *models.CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

func newRegistryClient(baseURL string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "collaboration-service/1.0")
}

// upstreamError turns a resty outcome into nil or an apperror. A 404 maps
// to notFound.
func upstreamError(op string, resp *resty.Response, err error, notFound error) error {
	if err != nil {
		return fmt.Errorf("%s: %w: %v", op, apperror.ErrUpstreamFailure, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return notFound
	}
	if resp.IsError() {
		return fmt.Errorf("%s: %w: status %d", op, apperror.ErrUpstreamFailure, resp.StatusCode())
	}
	return nil
}

type restBrandRegistry struct {
	client *resty.Client
}

func NewBrandRegistry(baseURL string, timeout time.Duration) BrandRegistry {
	return &restBrandRegistry{client: newRegistryClient(baseURL, timeout)}
}

func (r *restBrandRegistry) GetBrand(ctx context.Context, id int64) (*models.Brand, error) {
	var brand models.Brand
	resp, err := r.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&brand).
		Get("/brands/{id}")
	if err := upstreamError("get brand", resp, err, apperror.ErrBrandNotFound); err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *restBrandRegistry) CreateBrand(ctx context.Context, input *models.BrandInput) (*models.Brand, error) {
	var brand models.Brand
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(&brand).
		Post("/brands/")
	if err := upstreamError("create brand", resp, err, apperror.ErrBrandNotFound); err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *restBrandRegistry) UpdateBrand(ctx context.Context, id int64, input *models.BrandInput) (*models.Brand, error) {
	var brand models.Brand
	resp, err := r.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(input).
		SetResult(&brand).
		Put("/brands/{id}")
	if err := upstreamError("update brand", resp, err, apperror.ErrBrandNotFound); err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *restBrandRegistry) DeleteBrand(ctx context.Context, id int64) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/brands/{id}")
	return upstreamError("delete brand", resp, err, apperror.ErrBrandNotFound)
}

type restCategoryRegistry struct {
	client *resty.Client
}

func NewCategoryRegistry(baseURL string, timeout time.Duration) CategoryRegistry {
	return &restCategoryRegistry{client: newRegistryClient(baseURL, timeout)}
}

func (r *restCategoryRegistry) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	resp, err := r.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&category).
		Get("/categories/{id}")
	if err := upstreamError("get category", resp, err, apperror.ErrCategoryNotFound); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *restCategoryRegistry) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	resp, err := r.client.R().
		SetContext(ctx).
		SetResult(&categories).
		Get("/categories/")
	if err := upstreamError("list categories", resp, err, apperror.ErrNotFound); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *restCategoryRegistry) CreateCategory(ctx context.Context, input *models.CategoryInput) (*models.Category, error) {
	var category models.Category
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(&category).
		Post("/categories/")
	if err := upstreamError("create category", resp, err, apperror.ErrCategoryNotFound); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *restCategoryRegistry) DeleteCategory(ctx context.Context, id int64) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/categories/{id}")
	return upstreamError("delete category", resp, err, apperror.ErrCategoryNotFound)
}
