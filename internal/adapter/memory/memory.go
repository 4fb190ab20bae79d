// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"fitfusion/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu        sync.Mutex
	users     []*domain.User
	workouts  []domain.Workout
	exercises []domain.Exercise
	meals     []domain.Meal
	nutrition []domain.NutritionLog
	goals     []domain.FitnessGoal
	scans     []domain.FoodScanLog
	chats     []domain.ChatMessage

	userIDCounter      int64
	workoutIDCounter   int64
	exerciseIDCounter  int64
	mealIDCounter      int64
	nutritionIDCounter int64
	goalIDCounter      int64
	scanIDCounter      int64
	chatIDCounter      int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.WorkoutRepository = (*DB)(nil)
var _ domain.MealRepository = (*DB)(nil)
var _ domain.NutritionRepository = (*DB)(nil)
var _ domain.GoalRepository = (*DB)(nil)
var _ domain.FoodScanRepository = (*DB)(nil)
var _ domain.ChatRepository = (*DB)(nil)

// --- UserRepository ---

// GetUserByID retrieves a user by ID.
func (db *DB) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetUserByUsername retrieves a user by username.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetUserByEmail retrieves a user by email.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// CreateUser creates a new active user.
func (db *DB) CreateUser(ctx context.Context, email, username, passwordHash, fullName string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email || u.Username == username {
			return nil, errors.New("user already exists")
		}
	}

	db.userIDCounter++
	now := time.Now().UTC()
	u := &domain.User{
		ID:           db.userIDCounter,
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		FullName:     fullName,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	db.users = append(db.users, u)
	cp := *u
	return &cp, nil
}

// --- WorkoutRepository ---

// CreateWorkout stores a workout and its exercises, assigning IDs.
func (db *DB) CreateWorkout(ctx context.Context, w domain.Workout) (*domain.Workout, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.workoutIDCounter++
	w.ID = db.workoutIDCounter
	for i := range w.Exercises {
		db.exerciseIDCounter++
		w.Exercises[i].ID = db.exerciseIDCounter
		w.Exercises[i].WorkoutID = w.ID
	}

	stored := w
	stored.Exercises = nil
	db.workouts = append(db.workouts, stored)
	db.exercises = append(db.exercises, w.Exercises...)
	return &w, nil
}

// GetWorkout returns the full workout with exercises in creation order.
func (db *DB) GetWorkout(ctx context.Context, userID, id int64) (*domain.Workout, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, w := range db.workouts {
		if w.ID == id && w.UserID == userID {
			cp := w
			cp.Exercises = make([]domain.Exercise, 0, 8)
			for _, e := range db.exercises {
				if e.WorkoutID == id {
					cp.Exercises = append(cp.Exercises, e)
				}
			}
			sort.Slice(cp.Exercises, func(i, j int) bool {
				return cp.Exercises[i].ID < cp.Exercises[j].ID
			})
			return &cp, nil
		}
	}
	return nil, nil
}

// ListWorkouts returns summaries ordered by creation time then ID.
func (db *DB) ListWorkouts(ctx context.Context, userID int64, offset, limit int) ([]domain.WorkoutSummary, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	owned := make([]domain.Workout, 0, len(db.workouts))
	for _, w := range db.workouts {
		if w.UserID == userID {
			owned = append(owned, w)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].ID < owned[j].ID
		}
		return owned[i].CreatedAt.Before(owned[j].CreatedAt)
	})

	if offset > len(owned) {
		offset = len(owned)
	}
	owned = owned[offset:]
	if len(owned) > limit {
		owned = owned[:limit]
	}

	out := make([]domain.WorkoutSummary, 0, len(owned))
	for _, w := range owned {
		out = append(out, domain.WorkoutSummary{
			ID:             w.ID,
			Name:           w.Name,
			DurationMin:    w.DurationMin,
			CaloriesBurned: w.CaloriesBurned,
			WorkoutType:    w.WorkoutType,
			Difficulty:     w.Difficulty,
			Completed:      w.Completed,
			CreatedAt:      w.CreatedAt,
		})
	}
	return out, nil
}

// SaveWorkout writes the mutable workout fields back.
func (db *DB) SaveWorkout(ctx context.Context, w domain.Workout) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.workouts {
		if db.workouts[i].ID == w.ID && db.workouts[i].UserID == w.UserID {
			db.workouts[i].Name = w.Name
			db.workouts[i].Description = w.Description
			db.workouts[i].DurationMin = w.DurationMin
			db.workouts[i].CaloriesBurned = w.CaloriesBurned
			db.workouts[i].WorkoutType = w.WorkoutType
			db.workouts[i].Difficulty = w.Difficulty
			db.workouts[i].Completed = w.Completed
			return nil
		}
	}
	return nil
}

// DeleteWorkout removes the workout together with its exercises.
func (db *DB) DeleteWorkout(ctx context.Context, userID, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, w := range db.workouts {
		if w.ID == id && w.UserID == userID {
			db.workouts = append(db.workouts[:i], db.workouts[i+1:]...)
			kept := db.exercises[:0]
			for _, e := range db.exercises {
				if e.WorkoutID != id {
					kept = append(kept, e)
				}
			}
			db.exercises = kept
			return true, nil
		}
	}
	return false, nil
}

// MarkWorkoutCompleted sets completed=true, reporting whether a row matched.
func (db *DB) MarkWorkoutCompleted(ctx context.Context, userID, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.workouts {
		if db.workouts[i].ID == id && db.workouts[i].UserID == userID {
			db.workouts[i].Completed = true
			return true, nil
		}
	}
	return false, nil
}

// WorkoutTotals aggregates the user's workouts.
func (db *DB) WorkoutTotals(ctx context.Context, userID int64) (domain.WorkoutTotals, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var t domain.WorkoutTotals
	for _, w := range db.workouts {
		if w.UserID != userID {
			continue
		}
		t.Total++
		if w.Completed {
			t.Completed++
			t.DurationMin += w.DurationMin
			t.CaloriesBurned += w.CaloriesBurned
		}
	}
	return t, nil
}

// --- MealRepository ---

// CreateMeal stores a meal, assigning an ID.
func (db *DB) CreateMeal(ctx context.Context, m domain.Meal) (*domain.Meal, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.mealIDCounter++
	m.ID = db.mealIDCounter
	db.meals = append(db.meals, m)
	return &m, nil
}

// GetMeal retrieves one meal scoped to a user.
func (db *DB) GetMeal(ctx context.Context, userID, id int64) (*domain.Meal, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, m := range db.meals {
		if m.ID == id && m.UserID == userID {
			cp := m
			return &cp, nil
		}
	}
	return nil, nil
}

// ListMeals returns the user's meals ordered by creation time then ID.
func (db *DB) ListMeals(ctx context.Context, userID int64, offset, limit int) ([]domain.Meal, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	owned := make([]domain.Meal, 0, len(db.meals))
	for _, m := range db.meals {
		if m.UserID == userID {
			owned = append(owned, m)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].ID < owned[j].ID
		}
		return owned[i].CreatedAt.Before(owned[j].CreatedAt)
	})

	if offset > len(owned) {
		offset = len(owned)
	}
	owned = owned[offset:]
	if len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, nil
}

// DeleteMeal removes one meal.
func (db *DB) DeleteMeal(ctx context.Context, userID, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, m := range db.meals {
		if m.ID == id && m.UserID == userID {
			db.meals = append(db.meals[:i], db.meals[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- NutritionRepository ---

// AddNutritionLog stores an intake entry, assigning an ID.
func (db *DB) AddNutritionLog(ctx context.Context, entry domain.NutritionLog) (*domain.NutritionLog, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.nutritionIDCounter++
	entry.ID = db.nutritionIDCounter
	entry.Date = entry.Date.UTC()
	db.nutrition = append(db.nutrition, entry)
	return &entry, nil
}

// ListRecentNutritionLogs lists the most recent entries.
func (db *DB) ListRecentNutritionLogs(ctx context.Context, userID int64, limit int) ([]domain.NutritionLog, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	owned := make([]domain.NutritionLog, 0, len(db.nutrition))
	for _, e := range db.nutrition {
		if e.UserID == userID {
			owned = append(owned, e)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].Date.Equal(owned[j].Date) {
			return owned[i].ID > owned[j].ID
		}
		return owned[i].Date.After(owned[j].Date)
	})
	if len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, nil
}

// NutritionTotalsForLocalDay aggregates intake for the given day.
func (db *DB) NutritionTotalsForLocalDay(ctx context.Context, userID int64, localDay string) (domain.NutritionTotals, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var t domain.NutritionTotals
	dayStart, err := time.ParseInLocation("2006-01-02", localDay, time.Local)
	if err != nil {
		return t, err
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	for _, e := range db.nutrition {
		if e.UserID != userID {
			continue
		}
		if !e.Date.Before(dayStart.UTC()) && e.Date.Before(dayEnd.UTC()) {
			t.Calories += e.Calories
			t.Protein += e.Protein
			t.Carbs += e.Carbs
			t.Fat += e.Fat
			t.Fiber += e.Fiber
			t.WaterLiters += e.WaterLiters
		}
	}
	return t, nil
}

// --- GoalRepository ---

// CreateGoal stores a goal, assigning an ID.
func (db *DB) CreateGoal(ctx context.Context, g domain.FitnessGoal) (*domain.FitnessGoal, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.goalIDCounter++
	g.ID = db.goalIDCounter
	db.goals = append(db.goals, g)
	return &g, nil
}

// GetGoal retrieves one goal scoped to a user.
func (db *DB) GetGoal(ctx context.Context, userID, id int64) (*domain.FitnessGoal, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, g := range db.goals {
		if g.ID == id && g.UserID == userID {
			cp := g
			return &cp, nil
		}
	}
	return nil, nil
}

// ListGoals returns all of the user's goals ordered by creation time then ID.
func (db *DB) ListGoals(ctx context.Context, userID int64) ([]domain.FitnessGoal, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	owned := make([]domain.FitnessGoal, 0, len(db.goals))
	for _, g := range db.goals {
		if g.UserID == userID {
			owned = append(owned, g)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].ID < owned[j].ID
		}
		return owned[i].CreatedAt.Before(owned[j].CreatedAt)
	})
	return owned, nil
}

// SaveGoalProgress writes current value and completion back.
func (db *DB) SaveGoalProgress(ctx context.Context, g domain.FitnessGoal) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.goals {
		if db.goals[i].ID == g.ID && db.goals[i].UserID == g.UserID {
			db.goals[i].CurrentValue = g.CurrentValue
			db.goals[i].IsCompleted = g.IsCompleted
			return nil
		}
	}
	return nil
}

// DeleteGoal removes one goal.
func (db *DB) DeleteGoal(ctx context.Context, userID, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, g := range db.goals {
		if g.ID == id && g.UserID == userID {
			db.goals = append(db.goals[:i], db.goals[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- FoodScanRepository ---

// AddFoodScan stores a scan result, assigning an ID.
func (db *DB) AddFoodScan(ctx context.Context, scan domain.FoodScanLog) (*domain.FoodScanLog, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.scanIDCounter++
	scan.ID = db.scanIDCounter
	db.scans = append(db.scans, scan)
	return &scan, nil
}

// ListRecentFoodScans lists the most recent scans.
func (db *DB) ListRecentFoodScans(ctx context.Context, userID int64, limit int) ([]domain.FoodScanLog, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	owned := make([]domain.FoodScanLog, 0, len(db.scans))
	for _, s := range db.scans {
		if s.UserID == userID {
			owned = append(owned, s)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].ScannedAt.Equal(owned[j].ScannedAt) {
			return owned[i].ID > owned[j].ID
		}
		return owned[i].ScannedAt.After(owned[j].ScannedAt)
	})
	if len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, nil
}

// --- ChatRepository ---

// AddChatMessage stores one conversation entry, assigning an ID.
func (db *DB) AddChatMessage(ctx context.Context, msg domain.ChatMessage) (*domain.ChatMessage, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.chatIDCounter++
	msg.ID = db.chatIDCounter
	db.chats = append(db.chats, msg)
	return &msg, nil
}

// ListRecentChatMessages returns the newest messages first.
func (db *DB) ListRecentChatMessages(ctx context.Context, userID int64, limit int) ([]domain.ChatMessage, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	owned := make([]domain.ChatMessage, 0, len(db.chats))
	for _, m := range db.chats {
		if m.UserID == userID {
			owned = append(owned, m)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].ID > owned[j].ID
		}
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	if len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, nil
}
