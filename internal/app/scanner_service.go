package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitfusion/internal/domain"
)

// ScannerService records the results of food-scanner analyses. The image
// analysis itself runs client side; this service only keeps the history.
type ScannerService struct {
	repo domain.FoodScanRepository
}

// NewScannerService creates a ScannerService backed by the given repository.
func NewScannerService(repo domain.FoodScanRepository) *ScannerService {
	return &ScannerService{repo: repo}
}

// RecordScanInput carries the outcome of one scan.
type RecordScanInput struct {
	FoodName        string
	ConfidenceScore float64
	Calories        int
	Protein         float64
	Carbs           float64
	Fat             float64
	Fiber           float64
	NutritionGrade  string
	ImagePath       string
}

// Record validates and stores a scan result.
func (s *ScannerService) Record(ctx context.Context, userID int64, in RecordScanInput) (*domain.FoodScanLog, error) {
	if strings.TrimSpace(in.FoodName) == "" {
		return nil, fmt.Errorf("%w: foodName is required", ErrValidation)
	}
	if in.ConfidenceScore < 0 || in.ConfidenceScore > 1 {
		return nil, fmt.Errorf("%w: confidenceScore must be between 0 and 1", ErrValidation)
	}
	if in.Calories < 0 || in.Protein < 0 || in.Carbs < 0 || in.Fat < 0 || in.Fiber < 0 {
		return nil, fmt.Errorf("%w: nutrition values must be >= 0", ErrValidation)
	}

	scan := domain.FoodScanLog{
		UserID:          userID,
		FoodName:        in.FoodName,
		ConfidenceScore: in.ConfidenceScore,
		Calories:        in.Calories,
		Protein:         in.Protein,
		Carbs:           in.Carbs,
		Fat:             in.Fat,
		Fiber:           in.Fiber,
		NutritionGrade:  in.NutritionGrade,
		ImagePath:       in.ImagePath,
		ScannedAt:       time.Now().UTC(),
	}
	return s.repo.AddFoodScan(ctx, scan)
}

// ListRecent returns the most recent scans up to limit.
func (s *ScannerService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.FoodScanLog, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.ListRecentFoodScans(ctx, userID, limit)
}
