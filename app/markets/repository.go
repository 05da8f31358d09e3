package markets

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/joefazee/streaks/models"
)

const defaultPerPage = 20

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new market repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// GetAll returns markets with filters and pagination
func (r *repository) GetAll(ctx context.Context, filters *MarketFilters, maxPerPage int) ([]models.Market, int64, error) {
	var markets []models.Market
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Market{})
	query = r.applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = r.applySorting(query, filters)
	query = r.applyPagination(query, filters, maxPerPage)

	err := query.Find(&markets).Error
	return markets, total, err
}

// GetByID returns a market by ID
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Market, error) {
	var market models.Market
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&market).Error
	if err != nil {
		return nil, err
	}
	return &market, nil
}

// GetForUpdate returns a market by ID with its row locked
func (r *repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Market, error) {
	var market models.Market
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&market).Error
	if err != nil {
		return nil, err
	}
	return &market, nil
}

// Create creates a new market
func (r *repository) Create(ctx context.Context, market *models.Market) error {
	return r.db.WithContext(ctx).Create(market).Error
}

// Update updates an existing market
func (r *repository) Update(ctx context.Context, market *models.Market) error {
	return r.db.WithContext(ctx).Save(market).Error
}

func (r *repository) applyFilters(query *gorm.DB, filters *MarketFilters) *gorm.DB {
	if filters == nil {
		return query
	}
	if filters.CreatorID != nil {
		query = query.Where("creator_id = ?", *filters.CreatorID)
	}
	if filters.Resolved != nil {
		query = query.Where("resolved = ?", *filters.Resolved)
	}
	return query
}

func (r *repository) applySorting(query *gorm.DB, filters *MarketFilters) *gorm.DB {
	sortBy, sortOrder := "created_at", "desc"
	if filters != nil {
		if filters.SortBy == "resolution_time" {
			sortBy = filters.SortBy
		}
		if filters.SortOrder == "asc" {
			sortOrder = "asc"
		}
	}
	return query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).Order("id")
}

func (r *repository) applyPagination(query *gorm.DB, filters *MarketFilters, maxPerPage int) *gorm.DB {
	page, perPage := pageBounds(filters, maxPerPage)
	return query.Offset((page - 1) * perPage).Limit(perPage)
}

func pageBounds(filters *MarketFilters, maxPerPage int) (page, perPage int) {
	page, perPage = 1, defaultPerPage
	if filters != nil {
		if filters.Page > 1 {
			page = filters.Page
		}
		if filters.PerPage > 0 && filters.PerPage <= maxPerPage {
			perPage = filters.PerPage
		}
	}
	return page, perPage
}
