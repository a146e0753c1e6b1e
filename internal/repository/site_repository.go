package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"iamove/internal/domain"
	"iamove/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// SiteDatabaseAdapter implements domain.SiteRepository using sqlx.
type SiteDatabaseAdapter struct {
	db *sqlx.DB
}

// NewSiteDatabaseAdapter creates a new instance of SiteDatabaseAdapter
func NewSiteDatabaseAdapter(db *sqlx.DB) domain.SiteRepository {
	return &SiteDatabaseAdapter{db: db}
}

// GetSiteByID implements domain.SiteRepository
func (a *SiteDatabaseAdapter) GetSiteByID(ctx context.Context, id string) (*domain.Site, error) {
	var m models.Site
	query := `SELECT
		id "ID",
		name "NAME",
		base_language "BASE_LANGUAGE",
		is_published "IS_PUBLISHED",
		created_at "CREATED_AT",
		updated_at "UPDATED_AT",
		deleted_at "DELETED_AT"
	FROM sites
	WHERE id = :id AND deleted_at IS NULL`

	stmt, err := GetExecutor(ctx, a.db).PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetSiteByID: %w", err)
	}
	defer stmt.Close()

	if err := stmt.GetContext(ctx, &m, map[string]interface{}{"id": id}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get site by id: %w", err)
	}

	baseLanguage := m.BaseLanguage
	if baseLanguage == "" {
		baseLanguage = domain.DefaultBaseLanguage
	}
	return &domain.Site{
		ID:           m.ID,
		Name:         m.Name,
		BaseLanguage: baseLanguage,
		Published:    m.IsPublished == 1,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}
