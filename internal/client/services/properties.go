package services

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/rentverse/internal/client/models"
)

type PropertyService interface {
	List(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error)
	Get(ctx context.Context, id string) (*models.Property, error)
	Create(ctx context.Context, data models.PropertyData) (*models.Property, error)
	Update(ctx context.Context, id string, data models.PropertyData) (*models.Property, error)
	Delete(ctx context.Context, id string) error
	Mine(ctx context.Context) ([]models.Property, error)
}

type propertyService struct {
	api       Requester
	pageSize  int
	maxImages int
}

// NewPropertyService binds the service to api. pageSize fills in an unset
// filter limit and maxImages bounds the images of a new listing.
func NewPropertyService(api Requester, pageSize, maxImages int) PropertyService {
	return &propertyService{api: api, pageSize: pageSize, maxImages: maxImages}
}

func propertyPath(id string) string {
	return "/properties/" + url.PathEscape(id)
}

func (s *propertyService) List(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	var out []models.Property
	if err := s.api.Get(ctx, "/properties", filter.Query(s.pageSize), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *propertyService) Get(ctx context.Context, id string) (*models.Property, error) {
	if !models.Required(id) {
		return nil, models.ErrValidation
	}
	var p models.Property
	if err := s.api.Get(ctx, propertyPath(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *propertyService) Create(ctx context.Context, data models.PropertyData) (*models.Property, error) {
	if err := data.Validate(s.maxImages); err != nil {
		return nil, err
	}
	var p models.Property
	if err := s.api.Post(ctx, "/properties", data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *propertyService) Update(ctx context.Context, id string, data models.PropertyData) (*models.Property, error) {
	if !models.Required(id) {
		return nil, models.ErrValidation
	}
	if err := data.Validate(s.maxImages); err != nil {
		return nil, err
	}
	var p models.Property
	if err := s.api.Put(ctx, propertyPath(id), data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *propertyService) Delete(ctx context.Context, id string) error {
	if !models.Required(id) {
		return models.ErrValidation
	}
	return s.api.Delete(ctx, propertyPath(id), nil)
}

func (s *propertyService) Mine(ctx context.Context) ([]models.Property, error) {
	var out []models.Property
	if err := s.api.Get(ctx, "/properties/my", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
