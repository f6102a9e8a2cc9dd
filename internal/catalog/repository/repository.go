package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/sureshullagaddi/movie-rental-app/internal/catalog/domain"
)

// Store is the gorm-backed catalog repository.
type Store struct {
	db *gorm.DB
}

// Provide constructs the catalog repository.
func Provide(db *gorm.DB) domain.Repository {
	return &Store{db: db}
}

func (s *Store) FindCustomerByName(ctx context.Context, name string) (*domain.Customer, error) {
	var customer domain.Customer
	err := s.db.WithContext(ctx).
		Preload("Rentals").
		Where("name = ?", strings.TrimSpace(name)).
		First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (s *Store) FindCustomerByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var customer domain.Customer
	err := s.db.WithContext(ctx).
		Preload("Rentals").
		First(&customer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (s *Store) FindMovieByID(ctx context.Context, id string) (*domain.Movie, error) {
	var movie domain.Movie
	err := s.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(id)).
		First(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (s *Store) FindPricingByCode(ctx context.Context, code string) (*domain.MoviePricing, error) {
	var pricing domain.MoviePricing
	err := s.db.WithContext(ctx).
		Where("code = ?", strings.ToLower(strings.TrimSpace(code))).
		First(&pricing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPricingNotFound
		}
		return nil, err
	}
	return &pricing, nil
}
