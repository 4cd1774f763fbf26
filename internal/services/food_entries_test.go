package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"HEYNOM_BACK-END/internal/models"
)

func newTestService(now time.Time) *foodEntryService {
	svc := NewFoodEntryService(nil, "heynom", time.Second).(*foodEntryService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestFoodEntryServiceValidation(t *testing.T) {
	t.Parallel()

	svc := newTestService(time.Now())
	ctx := context.Background()
	userID := uuid.New()

	t.Run("empty food_text is rejected before touching the store", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Create(ctx, userID, models.NewFoodEntry{FoodText: ""})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("Create() error = %v, want ErrValidation", err)
		}
	})

	t.Run("whitespace-only food_text is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Create(ctx, userID, models.NewFoodEntry{FoodText: " \t\n"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("Create() error = %v, want ErrValidation", err)
		}
	})

	t.Run("overlong meal_type is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Create(ctx, userID, models.NewFoodEntry{FoodText: "apple", MealType: strings.Repeat("x", MaxMealTypeLength+1)})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("Create() error = %v, want ErrValidation", err)
		}
	})

	t.Run("nil owner is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Create(ctx, uuid.Nil, models.NewFoodEntry{FoodText: "apple"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("Create() error = %v, want ErrValidation", err)
		}
	})

	t.Run("non-positive limit is rejected", func(t *testing.T) {
		t.Parallel()

		for _, limit := range []int{0, -5} {
			if _, err := svc.List(ctx, userID, limit); !errors.Is(err, ErrValidation) {
				t.Errorf("List(limit=%d) error = %v, want ErrValidation", limit, err)
			}
		}
	})

	t.Run("nil ids on delete report not found", func(t *testing.T) {
		t.Parallel()

		if err := svc.Delete(ctx, userID, uuid.Nil); !errors.Is(err, ErrNotFound) {
			t.Errorf("Delete(nil entry) error = %v, want ErrNotFound", err)
		}
		if err := svc.Delete(ctx, uuid.Nil, uuid.New()); !errors.Is(err, ErrNotFound) {
			t.Errorf("Delete(nil user) error = %v, want ErrNotFound", err)
		}
	})
}

func TestFoodEntryServicePrepare(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.FixedZone("ICT", 7*60*60))
	svc := newTestService(now)
	userID := uuid.New()

	t.Run("defaults meal_type and logged_at", func(t *testing.T) {
		t.Parallel()

		entry, err := svc.prepare(userID, models.NewFoodEntry{FoodText: "apple"})
		if err != nil {
			t.Fatalf("prepare() error = %v", err)
		}
		if entry.MealType != models.DefaultMealType {
			t.Errorf("MealType = %q, want %q", entry.MealType, models.DefaultMealType)
		}
		if !entry.LoggedAt.Equal(now) || entry.LoggedAt.Location() != time.UTC {
			t.Errorf("LoggedAt = %v, want %v in UTC", entry.LoggedAt, now.UTC())
		}
		if entry.UserID != userID {
			t.Errorf("UserID = %v, want %v", entry.UserID, userID)
		}
		if entry.ID == uuid.Nil {
			t.Error("ID was not generated")
		}
	})

	t.Run("keeps caller supplied values", func(t *testing.T) {
		t.Parallel()

		loggedAt := time.Date(2026, 10, 18, 7, 30, 0, 0, time.UTC)
		entry, err := svc.prepare(userID, models.NewFoodEntry{FoodText: "oatmeal", MealType: "breakfast", LoggedAt: &loggedAt})
		if err != nil {
			t.Fatalf("prepare() error = %v", err)
		}
		if entry.FoodText != "oatmeal" || entry.MealType != "breakfast" {
			t.Errorf("entry = %+v", entry)
		}
		if !entry.LoggedAt.Equal(loggedAt) {
			t.Errorf("LoggedAt = %v, want %v", entry.LoggedAt, loggedAt)
		}
	})

	t.Run("each entry gets a fresh id", func(t *testing.T) {
		t.Parallel()

		a, _ := svc.prepare(userID, models.NewFoodEntry{FoodText: "a"})
		b, _ := svc.prepare(userID, models.NewFoodEntry{FoodText: "b"})
		if a.ID == b.ID {
			t.Errorf("ids collide: %v", a.ID)
		}
	})
}
