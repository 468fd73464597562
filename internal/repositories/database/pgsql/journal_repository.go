package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindscribe/journal_ai_app/internal/apperrors"
	"github.com/mindscribe/journal_ai_app/internal/core/domain"
	portsrepo "github.com/mindscribe/journal_ai_app/internal/core/ports/repositories"
	"github.com/mindscribe/journal_ai_app/internal/models"
	"github.com/mindscribe/journal_ai_app/internal/utils/mapping"
	"github.com/mindscribe/journal_ai_app/internal/utils/pagination"
)

type PgxJournalRepository struct {
	db *pgxpool.Pool
}

func newPgxJournalRepository(db *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{db: db}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalColumns = `journal_id, user_id, title, content, template_id,
		ai_summary, ai_mood, ai_mood_score, ai_suggestion, ai_processed,
		created_at, last_updated_at`

func scanJournal(row pgx.Row) (models.Journal, error) {
	var m models.Journal
	err := row.Scan(
		&m.JournalID,
		&m.UserID,
		&m.Title,
		&m.Content,
		&m.TemplateID,
		&m.AISummary,
		&m.AIMood,
		&m.AIMoodScore,
		&m.AISuggestion,
		&m.AIProcessed,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	m := mapping.ToModelJournal(journal)
	query := `
        INSERT INTO journals (journal_id, user_id, title, content, template_id,
            ai_summary, ai_mood, ai_mood_score, ai_suggestion, ai_processed,
            created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.db.Exec(ctx, query,
		m.JournalID,
		m.UserID,
		m.Title,
		m.Content,
		m.TemplateID,
		m.AISummary,
		m.AIMood,
		m.AIMoodScore,
		m.AISuggestion,
		m.AIProcessed,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save journal: %w", err)
	}
	return nil
}

func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1;`
	m, err := scanJournal(r.db.QueryRow(ctx, query, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}

	domainJournal := mapping.ToDomainJournal(m)
	return &domainJournal, nil
}

// ListJournalsByUser retrieves a paginated list of a user's journals using token-based pagination.
// It returns the list of journals, a token for the next page (if any), and an error.
func (r *PgxJournalRepository) ListJournalsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Journal, *string, error) {
	// Default limit handling
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + journalColumns + ` FROM journals`
	filterClause := `WHERE user_id = $1`

	// Ordering is crucial and must be stable. We use created_at DESC with
	// journal_id DESC as a tie-breaker.
	orderByClause := `ORDER BY created_at DESC, journal_id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{userID}

	if nextToken != nil && *nextToken != "" {
		// Decode the token to get the cursor values
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, decodeErr)
		}

		// Add cursor condition to WHERE clause
		// Tuple comparison is concise and efficient in Postgres
		cursorClause := `AND (created_at, journal_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)

		query := baseQuery + " " + filterClause + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)

		rows, err = r.db.Query(ctx, query, args...)
	} else {
		// First page request (no token)
		query := baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.db.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, fmt.Errorf("failed to query journals for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelJournals := make([]models.Journal, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanJournal(rows)
		if scanErr != nil {
			return nil, nil, fmt.Errorf("failed to scan journal row for user %s: %w", userID, scanErr)
		}
		modelJournals = append(modelJournals, m)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal rows for user %s: %w", userID, err)
	}

	// Determine the next token
	var nextTokenVal *string
	results := modelJournals
	if len(modelJournals) > limit {
		// There is a next page; the token points at the last item of this page.
		lastJournal := modelJournals[limit-1]
		token := pagination.EncodeToken(lastJournal.CreatedAt, lastJournal.JournalID)
		nextTokenVal = &token
		results = modelJournals[:limit]
	}

	return mapping.ToDomainJournalSlice(results), nextTokenVal, nil
}

// UpdateJournal updates the user-editable fields of a journal entry. The AI
// columns stay as they are; metadata edits must not discard a paid analysis.
func (r *PgxJournalRepository) UpdateJournal(ctx context.Context, journal domain.Journal) error {
	m := mapping.ToModelJournal(journal)

	query := `
		UPDATE journals
		SET title = $2,
		    content = $3,
		    template_id = $4,
		    last_updated_at = $5
		WHERE journal_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.JournalID,
		m.Title,
		m.Content,
		m.TemplateID,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal %s: %w", m.JournalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// UpdateJournalAndClearInsights updates the user-editable fields and clears the
// AI columns in the same statement so stale analysis of the old content is
// never served.
func (r *PgxJournalRepository) UpdateJournalAndClearInsights(ctx context.Context, journal domain.Journal) error {
	m := mapping.ToModelJournal(journal)

	query := `
		UPDATE journals
		SET title = $2,
		    content = $3,
		    template_id = $4,
		    ai_summary = '',
		    ai_mood = '',
		    ai_mood_score = 0,
		    ai_suggestion = '',
		    ai_processed = FALSE,
		    last_updated_at = $5
		WHERE journal_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.JournalID,
		m.Title,
		m.Content,
		m.TemplateID,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal %s: %w", m.JournalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// SaveInsights stores the AI analysis results and marks the entry processed in one statement.
func (r *PgxJournalRepository) SaveInsights(ctx context.Context, journalID string, insight domain.Insight) error {
	query := `
		UPDATE journals
		SET ai_summary = $2,
		    ai_mood = $3,
		    ai_mood_score = $4,
		    ai_suggestion = $5,
		    ai_processed = TRUE,
		    last_updated_at = now()
		WHERE journal_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		journalID,
		insight.Summary,
		insight.Mood,
		insight.MoodScore,
		insight.Suggestion,
	)
	if err != nil {
		return fmt.Errorf("failed to save insights for journal %s: %w", journalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxJournalRepository) DeleteJournal(ctx context.Context, journalID string) error {
	query := `DELETE FROM journals WHERE journal_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, journalID)
	if err != nil {
		return fmt.Errorf("failed to delete journal %s: %w", journalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
