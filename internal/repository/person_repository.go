package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"iamove/internal/domain"
	"iamove/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// PersonDatabaseAdapter implements domain.PersonRepository using sqlx.
type PersonDatabaseAdapter struct {
	db *sqlx.DB
}

// NewPersonDatabaseAdapter creates a new instance of PersonDatabaseAdapter
func NewPersonDatabaseAdapter(db *sqlx.DB) domain.PersonRepository {
	return &PersonDatabaseAdapter{db: db}
}

func toDomainPerson(m *models.Person) *domain.Person {
	if m == nil {
		return nil
	}
	return &domain.Person{
		ID:                  m.ID,
		SiteID:              m.SiteID,
		Email:               m.Email,
		Name:                m.Name.String,
		CurrentLevel:        m.CurrentLevel,
		ParticipationPoints: m.ParticipationPoints,
		Language:            m.Language.String,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// GetPersonByID implements domain.PersonRepository
func (a *PersonDatabaseAdapter) GetPersonByID(ctx context.Context, id string) (*domain.Person, error) {
	var m models.Person
	query := `SELECT
		id "ID",
		site_id "SITE_ID",
		email "EMAIL",
		name "NAME",
		current_level "CURRENT_LEVEL",
		participation_points "PARTICIPATION_POINTS",
		language_code "LANGUAGE_CODE",
		created_at "CREATED_AT",
		updated_at "UPDATED_AT",
		deleted_at "DELETED_AT"
	FROM persons
	WHERE id = :id AND deleted_at IS NULL`

	stmt, err := GetExecutor(ctx, a.db).PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetPersonByID: %w", err)
	}
	defer stmt.Close()

	if err := stmt.GetContext(ctx, &m, map[string]interface{}{"id": id}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get person by id: %w", err)
	}
	return toDomainPerson(&m), nil
}

// UpdateCurrentLevel implements domain.PersonRepository
func (a *PersonDatabaseAdapter) UpdateCurrentLevel(ctx context.Context, personID string, level int) error {
	query := `UPDATE persons SET current_level = :current_level, updated_at = :updated_at
	          WHERE id = :id AND deleted_at IS NULL`
	args := map[string]interface{}{
		"id":            personID,
		"current_level": level,
		"updated_at":    time.Now(),
	}

	result, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, args)
	if err != nil {
		return fmt.Errorf("failed to update current level: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// IncrementPoints adds delta in a single UPDATE so concurrent awards for the
// same person cannot lose updates, then reads the new total back.
func (a *PersonDatabaseAdapter) IncrementPoints(ctx context.Context, personID string, delta int) (int, error) {
	exec := GetExecutor(ctx, a.db)

	query := `UPDATE persons
	          SET participation_points = participation_points + :delta,
	              updated_at = :updated_at
	          WHERE id = :id AND deleted_at IS NULL`
	args := map[string]interface{}{
		"id":         personID,
		"delta":      delta,
		"updated_at": time.Now(),
	}

	result, err := exec.NamedExecContext(ctx, query, args)
	if err != nil {
		return 0, fmt.Errorf("failed to increment participation points: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return 0, sql.ErrNoRows
	}

	stmt, err := exec.PrepareNamedContext(ctx, `SELECT participation_points "PARTICIPATION_POINTS" FROM persons WHERE id = :id`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare total read-back: %w", err)
	}
	defer stmt.Close()

	var total int
	if err := stmt.GetContext(ctx, &total, map[string]interface{}{"id": personID}); err != nil {
		return 0, fmt.Errorf("failed to read participation points back: %w", err)
	}
	return total, nil
}

// GetRank computes the 1-based rank: persons with strictly more points, plus
// tied persons with a smaller ID, come first. Deterministic under recompute.
func (a *PersonDatabaseAdapter) GetRank(ctx context.Context, siteID, personID string) (int, error) {
	query := `SELECT COUNT(*) + 1 "RNK"
	FROM persons p, persons me
	WHERE me.id = :person_id
	  AND p.site_id = :site_id
	  AND p.deleted_at IS NULL
	  AND p.id <> me.id
	  AND (p.participation_points > me.participation_points
	       OR (p.participation_points = me.participation_points AND p.id < me.id))`

	stmt, err := GetExecutor(ctx, a.db).PrepareNamedContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare query for GetRank: %w", err)
	}
	defer stmt.Close()

	var rank int
	args := map[string]interface{}{"person_id": personID, "site_id": siteID}
	if err := stmt.GetContext(ctx, &rank, args); err != nil {
		return 0, fmt.Errorf("failed to compute rank for person %s: %w", personID, err)
	}
	return rank, nil
}

// ListRankedBySite returns the site scoreboard, best first.
func (a *PersonDatabaseAdapter) ListRankedBySite(ctx context.Context, siteID string, limit int) ([]domain.RankedPerson, error) {
	query := `SELECT
		id "ID",
		name "NAME",
		participation_points "PARTICIPATION_POINTS"
	FROM persons
	WHERE site_id = :site_id AND deleted_at IS NULL
	ORDER BY participation_points DESC, id ASC
	FETCH FIRST :row_count ROWS ONLY`

	stmt, err := GetExecutor(ctx, a.db).PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for ListRankedBySite: %w", err)
	}
	defer stmt.Close()

	var rows []struct {
		ID     string         `db:"ID"`
		Name   sql.NullString `db:"NAME"`
		Points int            `db:"PARTICIPATION_POINTS"`
	}
	args := map[string]interface{}{"site_id": siteID, "row_count": limit}
	if err := stmt.SelectContext(ctx, &rows, args); err != nil {
		return nil, fmt.Errorf("failed to list ranked persons for site %s: %w", siteID, err)
	}

	ranked := make([]domain.RankedPerson, 0, len(rows))
	for i, r := range rows {
		ranked = append(ranked, domain.RankedPerson{
			PersonID:            r.ID,
			Name:                r.Name.String,
			ParticipationPoints: r.Points,
			Rank:                i + 1,
		})
	}
	return ranked, nil
}
