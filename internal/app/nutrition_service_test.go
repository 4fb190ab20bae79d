package app_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"fitfusion/internal/adapter/memory"
	"fitfusion/internal/app"
)

func TestLogIntake_Validation(t *testing.T) {
	svc := app.NewNutritionService(memory.New())

	_, err := svc.Log(context.Background(), 1, app.LogIntakeInput{Calories: -10})
	if !errors.Is(err, app.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, err = svc.Log(context.Background(), 1, app.LogIntakeInput{WaterLiters: -0.5})
	if !errors.Is(err, app.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLogIntake_DefaultsDate(t *testing.T) {
	svc := app.NewNutritionService(memory.New())

	entry, err := svc.Log(context.Background(), 1, app.LogIntakeInput{Calories: 500})
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if entry.Date.IsZero() {
		t.Fatal("expected date to default to now")
	}
	if entry.ID == 0 {
		t.Fatal("expected id to be assigned")
	}
}

func TestDailySummary_SumsOnlyRequestedDay(t *testing.T) {
	svc := app.NewNutritionService(memory.New())
	ctx := context.Background()

	day := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	dayBefore := day.Add(-24 * time.Hour)

	entries := []app.LogIntakeInput{
		{Date: day, Calories: 400, Protein: 30, WaterLiters: 0.5},
		{Date: day.Add(6 * time.Hour), Calories: 600, Protein: 40, WaterLiters: 1.0},
		{Date: dayBefore, Calories: 999, Protein: 99, WaterLiters: 9},
	}
	for _, in := range entries {
		if _, err := svc.Log(ctx, 1, in); err != nil {
			t.Fatalf("log: %v", err)
		}
	}
	// Another user's entry on the same day must not leak in.
	if _, err := svc.Log(ctx, 2, app.LogIntakeInput{Date: day, Calories: 123}); err != nil {
		t.Fatalf("log: %v", err)
	}

	totals, err := svc.DailySummary(ctx, 1, day.Format("2006-01-02"))
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if totals.Calories != 1000 {
		t.Fatalf("expected 1000 calories, got %d", totals.Calories)
	}
	if math.Abs(totals.Protein-70) > 1e-9 || math.Abs(totals.WaterLiters-1.5) > 1e-9 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}

func TestListRecentNutrition(t *testing.T) {
	svc := app.NewNutritionService(memory.New())
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if _, err := svc.Log(ctx, 1, app.LogIntakeInput{
			Date: base.Add(time.Duration(i) * time.Hour), Calories: 100 + i,
		}); err != nil {
			t.Fatalf("log: %v", err)
		}
	}

	items, err := svc.ListRecent(ctx, 1, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Calories != 104 {
		t.Fatalf("expected newest first, got %+v", items[0])
	}
}
