package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"dietlog/internal/repository"
	tokenIssuer "dietlog/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials error = errors.New("invalid credentials")
var ErrUserNotFound error = errors.New("user not found")
var ErrMealNotFound error = errors.New("meal not found")
var ErrUsernameTaken error = errors.New("username already taken")
var ErrForbidden error = errors.New("operation not permitted")
var ErrNoSession error = errors.New("no active session")

var timeNow = time.Now

// Diary is the application service behind every endpoint: authentication,
// user accounts and the per-user meal diary.
type Diary struct {
	logs          *zap.SugaredLogger
	repo          Repository
	sessionIssuer SessionIssuer
	sessionTTL    time.Duration
}

func NewDiary(logger *zap.SugaredLogger, repo Repository, sessionIssuer SessionIssuer, sessionTTL time.Duration) *Diary {
	return &Diary{
		logs:          logger,
		repo:          repo,
		sessionIssuer: sessionIssuer,
		sessionTTL:    sessionTTL,
	}
}

// Login checks the credentials against the stored bcrypt hash and, on
// success, establishes a server-side session and returns its signed token.
func (d *Diary) Login(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := d.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user by username: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	session := &repository.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: timeNow().Add(d.sessionTTL),
	}

	tokenInfo := tokenIssuer.TokenInfo{
		SessionID:  session.ID,
		Subject:    strconv.FormatUint(uint64(user.ID), 10),
		Expiration: d.sessionTTL,
	}
	token := d.sessionIssuer.Generate(tokenInfo)
	signed, err := d.sessionIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	// the session row is written only once a returnable token exists, so a
	// signing failure cannot leave an orphaned session behind
	if err := d.repo.CreateSession(ctx, session); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	d.logs.Infow("session established", "userId", user.ID, "sessionId", session.ID)

	return signed, nil
}

// ResolveSession turns a session cookie token into the caller identity. The
// token signature, the live session row and its expiry are all checked.
func (d *Diary) ResolveSession(ctx context.Context, token string) (AuthUser, error) {
	claims, err := d.sessionIssuer.Validate(token)
	if err != nil {
		return AuthUser{}, ErrNoSession
	}

	sessionID, ok := claims["jti"].(string)
	if !ok || sessionID == "" {
		return AuthUser{}, ErrNoSession
	}

	session, err := d.repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return AuthUser{}, ErrNoSession
		}
		return AuthUser{}, fmt.Errorf("get session: %w", err)
	}

	if timeNow().After(session.ExpiresAt) {
		if delErr := d.repo.DeleteSession(ctx, session.ID); delErr != nil {
			d.logs.Errorw("failed to remove expired session", "error", delErr, "sessionId", session.ID)
		}
		return AuthUser{}, ErrNoSession
	}

	user, err := d.repo.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthUser{}, ErrNoSession
		}
		return AuthUser{}, fmt.Errorf("get session user: %w", err)
	}

	return AuthUser{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		SessionID: session.ID,
	}, nil
}

// Logout destroys the caller's server-side session.
func (d *Diary) Logout(ctx context.Context, sessionID string) error {
	err := d.repo.DeleteSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return ErrNoSession
		}
		return fmt.Errorf("delete session: %w", err)
	}

	d.logs.Infow("session terminated", "sessionId", sessionID)
	return nil
}

// Register creates a new account with role "user". The password is hashed
// with a fresh random salt; the plaintext is never stored.
func (d *Diary) Register(ctx context.Context, msg AuthMessage) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &repository.User{
		Username:     msg.Username,
		PasswordHash: string(hash),
		Role:         repository.RoleUser,
	}
	if err := d.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	d.logs.Infow("user registered", "userId", user.ID, "username", user.Username)
	return nil
}

func (d *Diary) GetUser(ctx context.Context, id uint) (UserRecord, error) {
	user, err := d.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user by id: %w", err)
	}

	return UserRecord{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

// UpdatePassword replaces the target user's password. Callers with role
// "user" may only target themselves; admins may target anyone. The new
// password is hashed the same way as on registration.
func (d *Diary) UpdatePassword(ctx context.Context, caller AuthUser, id uint, password string) error {
	if !caller.CanModifyUser(id) {
		return ErrForbidden
	}

	user, err := d.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user by id: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	if err := d.repo.UpdateUser(ctx, &user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	d.logs.Infow("user password updated", "userId", id, "callerId", caller.ID)
	return nil
}

// DeleteUser removes an account. Admin only, and self-deletion is always
// blocked, admins included.
func (d *Diary) DeleteUser(ctx context.Context, caller AuthUser, id uint) error {
	if caller.Role != repository.RoleAdmin {
		return ErrForbidden
	}
	if caller.ID == id {
		return ErrForbidden
	}

	err := d.repo.DeleteUser(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	d.logs.Infow("user deleted", "userId", id, "callerId", caller.ID)
	return nil
}

func (d *Diary) CreateMeal(ctx context.Context, caller AuthUser, msg MealMessage) (MealRecord, error) {
	meal := &repository.Meal{
		Name:        msg.Name,
		Description: msg.Description,
		EatenAt:     msg.EatenAt,
		InDiet:      msg.InDiet,
		UserID:      caller.ID,
	}
	if err := d.repo.CreateMeal(ctx, meal); err != nil {
		return MealRecord{}, fmt.Errorf("create meal: %w", err)
	}

	d.logs.Infow("meal created", "mealId", meal.ID, "userId", caller.ID)

	return mealToRecord(*meal), nil
}

func (d *Diary) ListMeals(ctx context.Context, caller AuthUser) ([]MealRecord, error) {
	meals, err := d.repo.ListMeals(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}

	records := make([]MealRecord, len(meals))
	for i, meal := range meals {
		records[i] = mealToRecord(meal)
	}
	return records, nil
}

func (d *Diary) GetMeal(ctx context.Context, caller AuthUser, id uint) (MealRecord, error) {
	meal, err := d.repo.GetMeal(ctx, id, caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return MealRecord{}, ErrMealNotFound
		}
		return MealRecord{}, fmt.Errorf("get meal: %w", err)
	}

	return mealToRecord(meal), nil
}

// UpdateMeal fully replaces the meal's fields. The lookup is scoped to the
// caller, so a foreign meal id behaves exactly like a missing one.
func (d *Diary) UpdateMeal(ctx context.Context, caller AuthUser, id uint, msg MealMessage) (MealRecord, error) {
	meal, err := d.repo.GetMeal(ctx, id, caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return MealRecord{}, ErrMealNotFound
		}
		return MealRecord{}, fmt.Errorf("get meal: %w", err)
	}

	meal.Name = msg.Name
	meal.Description = msg.Description
	meal.EatenAt = msg.EatenAt
	meal.InDiet = msg.InDiet

	if err := d.repo.UpdateMeal(ctx, &meal); err != nil {
		return MealRecord{}, fmt.Errorf("update meal: %w", err)
	}

	d.logs.Infow("meal updated", "mealId", meal.ID, "userId", caller.ID)

	return mealToRecord(meal), nil
}

func (d *Diary) DeleteMeal(ctx context.Context, caller AuthUser, id uint) error {
	err := d.repo.DeleteMeal(ctx, id, caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return ErrMealNotFound
		}
		return fmt.Errorf("delete meal: %w", err)
	}

	d.logs.Infow("meal deleted", "mealId", id, "userId", caller.ID)
	return nil
}

func mealToRecord(meal repository.Meal) MealRecord {
	return MealRecord{
		ID:          meal.ID,
		Name:        meal.Name,
		Description: meal.Description,
		EatenAt:     meal.EatenAt,
		InDiet:      meal.InDiet,
		UserID:      meal.UserID,
	}
}
