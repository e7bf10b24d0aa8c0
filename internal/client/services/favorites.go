package services

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/rentverse/internal/client/models"
)

type FavoriteService interface {
	List(ctx context.Context) ([]models.Favorite, error)
	Add(ctx context.Context, propertyID string) (*models.Favorite, error)
	Remove(ctx context.Context, favoriteID string) error
	// Toggle adds or removes propertyID and reports whether it is now a
	// favorite.
	Toggle(ctx context.Context, propertyID string) (bool, error)
}

type favoriteService struct {
	api Requester
}

func NewFavoriteService(api Requester) FavoriteService {
	return &favoriteService{api: api}
}

func (s *favoriteService) List(ctx context.Context) ([]models.Favorite, error) {
	var out []models.Favorite
	if err := s.api.Get(ctx, "/favorites", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *favoriteService) Add(ctx context.Context, propertyID string) (*models.Favorite, error) {
	if !models.Required(propertyID) {
		return nil, models.ErrValidation
	}
	var f models.Favorite
	if err := s.api.Post(ctx, "/favorites", models.AddFavoriteRequest{PropertyID: propertyID}, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *favoriteService) Remove(ctx context.Context, favoriteID string) error {
	if !models.Required(favoriteID) {
		return models.ErrValidation
	}
	return s.api.Delete(ctx, "/favorites/"+url.PathEscape(favoriteID), nil)
}

func (s *favoriteService) Toggle(ctx context.Context, propertyID string) (bool, error) {
	favs, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, f := range favs {
		if f.PropertyID == propertyID {
			return false, s.Remove(ctx, f.ID)
		}
	}
	if _, err := s.Add(ctx, propertyID); err != nil {
		return false, err
	}
	return true, nil
}
