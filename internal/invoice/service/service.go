package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	catalogdomain "github.com/sureshullagaddi/movie-rental-app/internal/catalog/domain"
	"github.com/sureshullagaddi/movie-rental-app/internal/cache"
	"github.com/sureshullagaddi/movie-rental-app/internal/clock"
	"github.com/sureshullagaddi/movie-rental-app/internal/config"
	"github.com/sureshullagaddi/movie-rental-app/internal/invoice/domain"
	invoicetext "github.com/sureshullagaddi/movie-rental-app/internal/invoice/text"
	"github.com/sureshullagaddi/movie-rental-app/internal/pricing"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock

	genID    *snowflake.Node
	catalog  catalogdomain.Repository
	cache    cache.Cache[string, string]
	cacheTTL time.Duration
	tracer   trace.Tracer
}

type ServiceParam struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Catalog catalogdomain.Repository
	Cfg     config.Config
}

func NewService(p ServiceParam) domain.Service {
	var memo cache.Cache[string, string] = cache.Disabled[string, string]{}
	if p.Cfg.InvoiceCacheTTL > 0 {
		memo = cache.NewTTLCache[string, string]()
	}
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("invoice.service"),
		clock: p.Clock,

		genID:    p.GenID,
		catalog:  p.Catalog,
		cache:    memo,
		cacheTTL: p.Cfg.InvoiceCacheTTL,
		tracer:   otel.Tracer("invoice.service"),
	}
}

func (s *Service) GenerateByName(ctx context.Context, req domain.GenerateByNameRequest) (string, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return "", fmt.Errorf("%w: customer name must not be blank", domain.ErrInvalidCustomer)
	}

	key := requestKey("name", name, req.Rentals)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	ctx, span := s.tracer.Start(ctx, "invoice.generate",
		trace.WithAttributes(attribute.String("customer.name", name)))
	defer span.End()

	customer, err := s.catalog.FindCustomerByName(ctx, name)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	rentals := req.Rentals
	if len(rentals) == 0 {
		rentals = storedRentals(customer)
	}

	invoiceText, err := s.generateWithRetry(ctx, customer.Name, rentals)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	s.cache.Set(key, invoiceText, s.cacheTTL)
	return invoiceText, nil
}

func (s *Service) GenerateByID(ctx context.Context, customerID int64) (string, error) {
	if customerID <= 0 {
		return "", fmt.Errorf("%w: customer id must be positive", domain.ErrInvalidCustomer)
	}

	key := requestKey("id", fmt.Sprintf("%d", customerID), nil)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	ctx, span := s.tracer.Start(ctx, "invoice.generate",
		trace.WithAttributes(attribute.Int64("customer.id", customerID)))
	defer span.End()

	customer, err := s.catalog.FindCustomerByID(ctx, customerID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	invoiceText, err := s.generateWithRetry(ctx, domain.CustomerIDLabel(customer.ID), storedRentals(customer))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	s.cache.Set(key, invoiceText, s.cacheTTL)
	return invoiceText, nil
}

func (s *Service) ParseText(ctx context.Context, raw string) (domain.Invoice, error) {
	return invoicetext.Parse(raw)
}

// generate resolves each rental against the catalog, prices it and renders
// the canonical text. Shape errors abort the whole invoice; per-item lookup
// faults are collected so the batch fails exactly once and stays retryable.
func (s *Service) generate(ctx context.Context, customerLabel string, rentals []domain.RentalLine) (string, error) {
	if len(rentals) == 0 {
		s.log.Warn("no rentals found for customer", zap.String("customer", customerLabel))
		return "", domain.ErrNoRentals
	}

	priced := make([]domain.PricedRental, 0, len(rentals))
	var itemErrors []string
	for _, rental := range rentals {
		if err := domain.ValidateRental(rental); err != nil {
			return "", err
		}

		movie, err := s.catalog.FindMovieByID(ctx, rental.MovieID)
		if err != nil {
			if errors.Is(err, catalogdomain.ErrMovieNotFound) {
				return "", err
			}
			itemErrors = append(itemErrors, fmt.Sprintf("rental for movie ID %s failed: %v", rental.MovieID, err))
			continue
		}

		category, err := pricing.ParseCategory(movie.MovieType)
		if err != nil {
			return "", err
		}
		rule, err := s.pricingRule(ctx, category, &itemErrors, rental.MovieID)
		if err != nil {
			return "", err
		}
		if rule == nil {
			continue
		}

		priced = append(priced, domain.PricedRental{
			Title:    movie.Title,
			Category: category,
			Rule:     *rule,
			Days:     rental.Days,
		})
	}

	if len(itemErrors) > 0 {
		s.log.Error("invoice generation failed",
			zap.String("customer", customerLabel),
			zap.Int("failed_items", len(itemErrors)),
		)
		return "", &domain.RentalProcessingError{Errors: itemErrors}
	}

	inv, err := domain.BuildInvoice(customerLabel, priced)
	if err != nil {
		return "", err
	}
	rendered := invoicetext.Render(inv)

	s.storeRecord(ctx, inv, rendered)

	s.log.Info("invoice generated",
		zap.String("customer", customerLabel),
		zap.String("total", inv.Total.StringFixed(2)),
		zap.Int("frequent_points", inv.FrequentPoints),
	)
	return rendered, nil
}

// pricingRule resolves a category's rule, preferring the catalog row and
// falling back to the built-in table. Returns a nil rule after recording a
// per-item error for transient lookup failures.
func (s *Service) pricingRule(ctx context.Context, category pricing.Category, itemErrors *[]string, movieID string) (*pricing.Rule, error) {
	row, err := s.catalog.FindPricingByCode(ctx, string(category))
	if err != nil {
		if errors.Is(err, catalogdomain.ErrPricingNotFound) {
			rule, ruleErr := pricing.RuleFor(category)
			if ruleErr != nil {
				return nil, ruleErr
			}
			return &rule, nil
		}
		*itemErrors = append(*itemErrors, fmt.Sprintf("rental for movie ID %s failed: %v", movieID, err))
		return nil, nil
	}

	builtin, err := pricing.RuleFor(category)
	if err != nil {
		return nil, err
	}
	rule := pricing.Rule{
		Code:         category,
		BaseAmount:   row.BasePrice,
		IncludedDays: row.BaseDays,
		ExtraPerDay:  row.ExtraPricePerDay,
		BonusPoints:  builtin.BonusPoints,
	}
	return &rule, nil
}

func (s *Service) storeRecord(ctx context.Context, inv domain.Invoice, rendered string) {
	record := domain.Record{
		ID:             s.genID.Generate(),
		CustomerLabel:  inv.Customer,
		TotalAmount:    inv.Total.StringFixed(2),
		FrequentPoints: inv.FrequentPoints,
		InvoiceText:    rendered,
		Metadata: datatypes.JSONMap{
			"item_count": len(inv.Items),
		},
		CreatedAt: s.clock.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		// The invoice itself is already computed; losing the audit row is
		// not a reason to fail the request.
		s.log.Warn("failed to store invoice record", zap.Error(err))
	}
}

func storedRentals(customer *catalogdomain.Customer) []domain.RentalLine {
	rentals := make([]domain.RentalLine, 0, len(customer.Rentals))
	for _, rental := range customer.Rentals {
		rentals = append(rentals, domain.RentalLine{MovieID: rental.MovieID, Days: rental.Days})
	}
	return rentals
}

// requestKey derives the memoization key from the logical request identity.
func requestKey(kind, id string, rentals []domain.RentalLine) string {
	payload := kind + "|" + id
	for _, rental := range rentals {
		payload += fmt.Sprintf("|%s:%d", rental.MovieID, rental.Days)
	}
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
