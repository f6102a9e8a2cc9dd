package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a renting customer with their outstanding rentals.
type Customer struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;index" json:"name"`
	Rentals   []Rental  `gorm:"foreignKey:CustomerID" json:"rentals,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }

// Movie is a rentable title with its pricing class.
type Movie struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"not null" json:"title"`
	MovieType string `gorm:"column:movie_type;not null" json:"movie_type"`
}

// TableName sets the database table name.
func (Movie) TableName() string { return "movies" }

// MoviePricing is the per-class pricing row consulted by the pricing engine:
// a base price covering the first BaseDays, then a per-day rate.
type MoviePricing struct {
	Code             string          `gorm:"primaryKey" json:"code"`
	BaseDays         int             `gorm:"column:base_days;not null" json:"base_days"`
	BasePrice        decimal.Decimal `gorm:"column:base_price;type:numeric;not null" json:"base_price"`
	ExtraPricePerDay decimal.Decimal `gorm:"column:extra_price_per_day;type:numeric;not null" json:"extra_price_per_day"`
}

// TableName sets the database table name.
func (MoviePricing) TableName() string { return "movie_pricings" }

// Rental links a customer to a rented movie for a number of days.
type Rental struct {
	ID         int64  `gorm:"primaryKey" json:"id"`
	CustomerID int64  `gorm:"not null;index" json:"customer_id"`
	MovieID    string `gorm:"not null" json:"movie_id"`
	Days       int    `gorm:"not null" json:"days"`
}

// TableName sets the database table name.
func (Rental) TableName() string { return "movie_rentals" }

// Repository looks up customers, movies and pricing rows. Lookups that find
// nothing return the package's not-found sentinels.
type Repository interface {
	FindCustomerByName(ctx context.Context, name string) (*Customer, error)
	FindCustomerByID(ctx context.Context, id int64) (*Customer, error)
	FindMovieByID(ctx context.Context, id string) (*Movie, error)
	FindPricingByCode(ctx context.Context, code string) (*MoviePricing, error)
}

var (
	ErrCustomerNotFound = errors.New("customer_not_found")
	ErrMovieNotFound    = errors.New("movie_not_found")
	ErrPricingNotFound  = errors.New("pricing_not_found")
)
