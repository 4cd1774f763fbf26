package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"HEYNOM_BACK-END/internal/database"
	"HEYNOM_BACK-END/internal/models"
)

const (
	// DefaultListLimit is used when the caller does not pass a limit
	DefaultListLimit = 200
	// MaxListLimit caps a single list response
	MaxListLimit = 1000
	// MaxMealTypeLength matches the meal_type column width
	MaxMealTypeLength = 20
)

var (
	// ErrValidation is returned for malformed input
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when no entry owned by the caller matches.
	// A foreign entry is reported the same way as a missing one.
	ErrNotFound = errors.New("entry not found")
)

// FoodEntryService performs ownership-scoped reads and writes of food entries.
// Every method runs in its own transaction.
type FoodEntryService interface {
	List(ctx context.Context, userID uuid.UUID, limit int) ([]models.FoodEntry, error)
	Create(ctx context.Context, userID uuid.UUID, in models.NewFoodEntry) (*models.FoodEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
}

type foodEntryService struct {
	db           *pgxpool.Pool
	table        string
	queryTimeout time.Duration
	now          func() time.Time
}

// NewFoodEntryService returns a FoodEntryService over the food table in schema
func NewFoodEntryService(db *pgxpool.Pool, schema string, queryTimeout time.Duration) FoodEntryService {
	return &foodEntryService{
		db:           db,
		table:        pgx.Identifier{schema, database.FoodEntriesTable}.Sanitize(),
		queryTimeout: queryTimeout,
		now:          time.Now,
	}
}

func (s *foodEntryService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

// List returns the newest entries of userID by logged_at, at most limit of them
func (s *foodEntryService) List(ctx context.Context, userID uuid.UUID, limit int) ([]models.FoodEntry, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be a positive integer", ErrValidation)
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	entries := []models.FoodEntry{}
	err := pgx.BeginTxFunc(ctx, s.db, pgx.TxOptions{AccessMode: pgx.ReadOnly}, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, fmt.Sprintf(
			`SELECT id, user_id, food_text, meal_type, logged_at, created_at
               FROM %s
              WHERE user_id = $1
              ORDER BY logged_at DESC, created_at DESC, id
              LIMIT $2`, s.table), userID, limit)
		if err != nil {
			return err
		}
		entries, err = pgx.CollectRows(rows, pgx.RowToStructByName[models.FoodEntry])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list food entries: %w", err)
	}
	return entries, nil
}

// Create persists a new entry owned by userID
func (s *foodEntryService) Create(ctx context.Context, userID uuid.UUID, in models.NewFoodEntry) (*models.FoodEntry, error) {
	entry, err := s.prepare(userID, in)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err = pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, fmt.Sprintf(
			`INSERT INTO %s (id, user_id, food_text, meal_type, logged_at, created_at)
             VALUES ($1, $2, $3, $4, $5, now())
             RETURNING logged_at, created_at`, s.table),
			entry.ID, entry.UserID, entry.FoodText, entry.MealType, entry.LoggedAt,
		).Scan(&entry.LoggedAt, &entry.CreatedAt)
	})
	if err != nil {
		return nil, fmt.Errorf("create food entry: %w", err)
	}
	return entry, nil
}

// prepare validates input and fills every field except created_at
func (s *foodEntryService) prepare(userID uuid.UUID, in models.NewFoodEntry) (*models.FoodEntry, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	if strings.TrimSpace(in.FoodText) == "" {
		return nil, fmt.Errorf("%w: food_text is required", ErrValidation)
	}

	mealType := strings.TrimSpace(in.MealType)
	if mealType == "" {
		mealType = models.DefaultMealType
	}
	if utf8.RuneCountInString(mealType) > MaxMealTypeLength {
		return nil, fmt.Errorf("%w: meal_type must be at most %d characters", ErrValidation, MaxMealTypeLength)
	}

	loggedAt := s.now().UTC()
	if in.LoggedAt != nil && !in.LoggedAt.IsZero() {
		loggedAt = in.LoggedAt.UTC()
	}

	return &models.FoodEntry{
		ID:       uuid.New(),
		UserID:   userID,
		FoodText: in.FoodText,
		MealType: mealType,
		LoggedAt: loggedAt,
	}, nil
}

// Delete removes entryID if and only if it belongs to userID
func (s *foodEntryService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	if userID == uuid.Nil || entryID == uuid.Nil {
		return ErrNotFound
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var affected int64
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND user_id = $2`, s.table), entryID, userID)
		if err != nil {
			return err
		}
		affected = cmd.RowsAffected()
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete food entry: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
