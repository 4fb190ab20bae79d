package domain

import (
	"context"
	"time"
)

// FoodScanLog stores the outcome of one food-scanner analysis. The analysis
// itself happens outside this service; only its result is persisted.
type FoodScanLog struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	FoodName        string    `json:"foodName"`
	ConfidenceScore float64   `json:"confidenceScore"`
	Calories        int       `json:"calories"`
	Protein         float64   `json:"protein"`
	Carbs           float64   `json:"carbs"`
	Fat             float64   `json:"fat"`
	Fiber           float64   `json:"fiber"`
	NutritionGrade  string    `json:"nutritionGrade"`
	ImagePath       string    `json:"imagePath"`
	ScannedAt       time.Time `json:"scannedAt"`
}

// Chat message types as stored in ai_chat_logs.
const (
	ChatMessageUser = "user"
	ChatMessageAI   = "ai"
)

// ChatMessage is one entry of a user's AI-coach conversation.
type ChatMessage struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	MessageType string    `json:"messageType"`
	Content     string    `json:"content"`
	// ResponseTime is the reply latency in seconds; zero for user messages.
	ResponseTime float64   `json:"responseTime"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FoodScanRepository is the port for food-scan persistence.
type FoodScanRepository interface {
	AddFoodScan(ctx context.Context, scan FoodScanLog) (*FoodScanLog, error)
	ListRecentFoodScans(ctx context.Context, userID int64, limit int) ([]FoodScanLog, error)
}

// ChatRepository is the port for chat-log persistence.
type ChatRepository interface {
	AddChatMessage(ctx context.Context, msg ChatMessage) (*ChatMessage, error)
	ListRecentChatMessages(ctx context.Context, userID int64, limit int) ([]ChatMessage, error)
}
