package seed

import (
	"context"
	"errors"

	"gorm.io/gorm"

	catalogdomain "github.com/sureshullagaddi/movie-rental-app/internal/catalog/domain"
	"github.com/sureshullagaddi/movie-rental-app/internal/pricing"
)

type pricingRow struct {
	code      string
	baseDays  int
	basePrice string
	extraRate string
}

var defaultPricing = []pricingRow{
	{code: string(pricing.CategoryRegular), baseDays: 2, basePrice: "2", extraRate: "1.5"},
	{code: string(pricing.CategoryChildren), baseDays: 3, basePrice: "1.5", extraRate: "1.5"},
	{code: string(pricing.CategoryNew), baseDays: 0, basePrice: "0", extraRate: "3"},
}

// EnsurePricing seeds the built-in pricing rows if they are missing.
func EnsurePricing(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range defaultPricing {
			var existing catalogdomain.MoviePricing
			err := tx.Where("code = ?", row.code).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err := tx.Exec(
				`INSERT INTO movie_pricings (code, base_days, base_price, extra_price_per_day) VALUES (?, ?, ?, ?)`,
				row.code, row.baseDays, row.basePrice, row.extraRate,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// EnsureDemoCatalog seeds a small demo customer and movie set for local use.
func EnsureDemoCatalog(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&catalogdomain.Customer{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		stmts := []string{
			`INSERT INTO movies (id, title, movie_type) VALUES ('F001', 'Matrix 11', 'regular')`,
			`INSERT INTO movies (id, title, movie_type) VALUES ('F002', 'Spider Man 5', 'new')`,
			`INSERT INTO movies (id, title, movie_type) VALUES ('F003', 'Frozen 3', 'children')`,
			`INSERT INTO customers (id, name) VALUES (1, 'John Doe')`,
			`INSERT INTO movie_rentals (customer_id, movie_id, days) VALUES (1, 'F001', 2)`,
			`INSERT INTO movie_rentals (customer_id, movie_id, days) VALUES (1, 'F002', 3)`,
		}
		for _, stmt := range stmts {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
