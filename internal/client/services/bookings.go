package services

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/rentverse/internal/client/models"
)

type BookingService interface {
	List(ctx context.Context) ([]models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	Create(ctx context.Context, data models.CreateBookingData) (*models.Booking, error)
	Cancel(ctx context.Context, id string) (*models.Booking, error)
	ForProperty(ctx context.Context, propertyID string) ([]models.Booking, error)
}

type bookingService struct {
	api Requester
}

func NewBookingService(api Requester) BookingService {
	return &bookingService{api: api}
}

func bookingPath(id string) string {
	return "/bookings/" + url.PathEscape(id)
}

func (s *bookingService) List(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := s.api.Get(ctx, "/bookings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *bookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	if !models.Required(id) {
		return nil, models.ErrValidation
	}
	var b models.Booking
	if err := s.api.Get(ctx, bookingPath(id), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *bookingService) Create(ctx context.Context, data models.CreateBookingData) (*models.Booking, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	var b models.Booking
	if err := s.api.Post(ctx, "/bookings", data, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *bookingService) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	if !models.Required(id) {
		return nil, models.ErrValidation
	}
	var b models.Booking
	if err := s.api.Patch(ctx, bookingPath(id)+"/cancel", nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *bookingService) ForProperty(ctx context.Context, propertyID string) ([]models.Booking, error) {
	if !models.Required(propertyID) {
		return nil, models.ErrValidation
	}
	var out []models.Booking
	if err := s.api.Get(ctx, propertyPath(propertyID)+"/bookings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
