package repository

import (
	"context"
	"dietlog/internal/db"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrMealNotFound error = errors.New("meal not found")
var ErrSessionNotFound error = errors.New("session not found")
var ErrUsernameTaken error = errors.New("username already taken")

const mealListOrder = "eaten_at DESC"

type DietRepo struct {
	db Storage
}

func NewDietRepo(db Storage) *DietRepo {
	return &DietRepo{
		db: db,
	}
}

// MigrateAndSeed creates the tables and seeds a single admin account.
// Registration only ever produces role "user", so the admin role would be
// unreachable without a seeded account.
func (r *DietRepo) MigrateAndSeed(ctx context.Context, adminPassword string) error {

	err := r.db.MigrateTable(&User{}, &Meal{}, &Session{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	users := []User{
		{
			Username:     "admin",
			PasswordHash: string(hash),
			Role:         RoleAdmin,
		},
	}
	err = r.db.SaveToTable(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *DietRepo) CreateUser(ctx context.Context, user *User) error {
	err := r.db.CreateRecord(ctx, user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *DietRepo) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, map[string]any{"username": username}, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *DietRepo) GetUserByID(ctx context.Context, id uint) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, map[string]any{"id": id}, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (r *DietRepo) UpdateUser(ctx context.Context, user *User) error {
	err := r.db.UpdateRecord(ctx, user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *DietRepo) DeleteUser(ctx context.Context, id uint) error {
	affected, err := r.db.DeleteBy(ctx, map[string]any{"id": id}, &User{})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *DietRepo) CreateSession(ctx context.Context, session *Session) error {
	if err := r.db.CreateRecord(ctx, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *DietRepo) GetSession(ctx context.Context, id string) (Session, error) {
	var session Session

	err := r.db.GetOneBy(ctx, map[string]any{"id": id}, &session)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, fmt.Errorf("get session: %w", err)
	}

	return session, nil
}

func (r *DietRepo) DeleteSession(ctx context.Context, id string) error {
	affected, err := r.db.DeleteBy(ctx, map[string]any{"id": id}, &Session{})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *DietRepo) CreateMeal(ctx context.Context, meal *Meal) error {
	if err := r.db.CreateRecord(ctx, meal); err != nil {
		return fmt.Errorf("create meal: %w", err)
	}
	return nil
}

// GetMeal is always scoped to the owning user, so another user's meal is
// indistinguishable from a missing one.
func (r *DietRepo) GetMeal(ctx context.Context, id, userID uint) (Meal, error) {
	var meal Meal

	err := r.db.GetOneBy(ctx, map[string]any{"id": id, "user_id": userID}, &meal)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Meal{}, ErrMealNotFound
		}
		return Meal{}, fmt.Errorf("get meal: %w", err)
	}

	return meal, nil
}

func (r *DietRepo) ListMeals(ctx context.Context, userID uint) ([]Meal, error) {
	meals := []Meal{}

	err := r.db.GetAllBy(ctx, map[string]any{"user_id": userID}, mealListOrder, &meals)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}

	return meals, nil
}

func (r *DietRepo) UpdateMeal(ctx context.Context, meal *Meal) error {
	if err := r.db.UpdateRecord(ctx, meal); err != nil {
		return fmt.Errorf("update meal: %w", err)
	}
	return nil
}

func (r *DietRepo) DeleteMeal(ctx context.Context, id, userID uint) error {
	affected, err := r.db.DeleteBy(ctx, map[string]any{"id": id, "user_id": userID}, &Meal{})
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	if affected == 0 {
		return ErrMealNotFound
	}
	return nil
}
