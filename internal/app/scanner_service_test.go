package app_test

import (
	"context"
	"errors"
	"testing"

	"fitfusion/internal/adapter/memory"
	"fitfusion/internal/app"
)

func TestRecordScan_Validation(t *testing.T) {
	svc := app.NewScannerService(memory.New())

	tests := []struct {
		name string
		in   app.RecordScanInput
	}{
		{"missing food name", app.RecordScanInput{ConfidenceScore: 0.9}},
		{"confidence above one", app.RecordScanInput{FoodName: "apple", ConfidenceScore: 1.2}},
		{"negative confidence", app.RecordScanInput{FoodName: "apple", ConfidenceScore: -0.1}},
		{"negative calories", app.RecordScanInput{FoodName: "apple", ConfidenceScore: 0.9, Calories: -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), 1, tc.in)
			if !errors.Is(err, app.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestRecordScanAndListRecent(t *testing.T) {
	svc := app.NewScannerService(memory.New())
	ctx := context.Background()

	scan, err := svc.Record(ctx, 1, app.RecordScanInput{
		FoodName: "banana", ConfidenceScore: 0.94, Calories: 105,
		Protein: 1.3, Carbs: 27, NutritionGrade: "B",
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if scan.ID == 0 || scan.ScannedAt.IsZero() {
		t.Fatalf("unexpected scan: %+v", scan)
	}

	items, err := svc.ListRecent(ctx, 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].FoodName != "banana" {
		t.Fatalf("unexpected items: %+v", items)
	}

	// Other users see nothing.
	other, err := svc.ListRecent(ctx, 2, 10)
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected no scans for other user, got %d", len(other))
	}
}
