package core_test

import (
	"context"
	"errors"
	"time"

	"dietlog/internal/core"
	"dietlog/internal/core/fake"
	"dietlog/internal/repository"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Diary", func() {
	var (
		fakeRepo   *fake.Repository
		fakeIssuer *fake.SessionIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		diary *core.Diary

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeIssuer = new(fake.SessionIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		diary = core.NewDiary(fakeLogger, fakeRepo, fakeIssuer, 24*time.Hour)

		fakeErr = errors.New("fake error")
	})

	Describe("Login", func() {
		var (
			authMsg core.AuthMessage
			token   string
			err     error
		)

		BeforeEach(func() {
			hash, hashErr := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)
			Expect(hashErr).NotTo(HaveOccurred())

			authMsg = core.AuthMessage{Username: "alice", Password: "testpass"}
			fakeRepo.GetUserByUsernameReturns(repository.User{
				ID:           7,
				Username:     "alice",
				PasswordHash: string(hash),
				Role:         repository.RoleUser,
			}, nil)
			fakeIssuer.GenerateReturns(jwt.New(jwt.SigningMethodHS512))
			fakeIssuer.SignReturns("signed-token", nil)
		})

		JustBeforeEach(func() {
			token, err = diary.Login(ctx, authMsg)
		})

		When("the credentials are correct", func() {
			It("should establish a session and return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed-token"))

				Expect(fakeRepo.CreateSessionCallCount()).To(Equal(1))
				_, session := fakeRepo.CreateSessionArgsForCall(0)
				Expect(session.UserID).To(Equal(uint(7)))
				Expect(uuid.Validate(session.ID)).To(Succeed())
				Expect(session.ExpiresAt).To(BeTemporally(">", time.Now()))

				Expect(fakeIssuer.GenerateCallCount()).To(Equal(1))
				info := fakeIssuer.GenerateArgsForCall(0)
				Expect(info.SessionID).To(Equal(session.ID))
				Expect(info.Subject).To(Equal("7"))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				authMsg.Password = "wrongpass"
			})

			It("should return ErrInvalidCredentials", func() {
				Expect(err).To(Equal(core.ErrInvalidCredentials))
				Expect(fakeRepo.CreateSessionCallCount()).To(BeZero())
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return ErrInvalidCredentials", func() {
				Expect(err).To(Equal(core.ErrInvalidCredentials))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(ContainSubstring("get user by username")))
			})
		})

		When("signing the token fails", func() {
			BeforeEach(func() {
				fakeIssuer.SignReturns("", fakeErr)
			})

			It("should not leave a session behind", func() {
				Expect(err).To(MatchError(ContainSubstring("signing token")))
				Expect(fakeRepo.CreateSessionCallCount()).To(BeZero())
			})
		})
	})

	Describe("ResolveSession", func() {
		var (
			sessionID string
			caller    core.AuthUser
			err       error
		)

		BeforeEach(func() {
			sessionID = uuid.NewString()
			fakeIssuer.ValidateReturns(jwt.MapClaims{"jti": sessionID}, nil)
			fakeRepo.GetSessionReturns(repository.Session{
				ID:        sessionID,
				UserID:    7,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil)
			fakeRepo.GetUserByIDReturns(repository.User{
				ID:       7,
				Username: "alice",
				Role:     repository.RoleUser,
			}, nil)
		})

		JustBeforeEach(func() {
			caller, err = diary.ResolveSession(ctx, "some-token")
		})

		When("the token and session are valid", func() {
			It("should return the caller identity", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(caller).To(Equal(core.AuthUser{
					ID:        7,
					Username:  "alice",
					Role:      repository.RoleUser,
					SessionID: sessionID,
				}))
			})
		})

		When("the token signature is invalid", func() {
			BeforeEach(func() {
				fakeIssuer.ValidateReturns(nil, fakeErr)
			})

			It("should return ErrNoSession", func() {
				Expect(err).To(Equal(core.ErrNoSession))
				Expect(fakeRepo.GetSessionCallCount()).To(BeZero())
			})
		})

		When("the session record is gone", func() {
			BeforeEach(func() {
				fakeRepo.GetSessionReturns(repository.Session{}, repository.ErrSessionNotFound)
			})

			It("should return ErrNoSession", func() {
				Expect(err).To(Equal(core.ErrNoSession))
			})
		})

		When("the session has expired", func() {
			BeforeEach(func() {
				fakeRepo.GetSessionReturns(repository.Session{
					ID:        sessionID,
					UserID:    7,
					ExpiresAt: time.Now().Add(-time.Minute),
				}, nil)
			})

			It("should drop the session and return ErrNoSession", func() {
				Expect(err).To(Equal(core.ErrNoSession))
				Expect(fakeRepo.DeleteSessionCallCount()).To(Equal(1))
				_, deletedID := fakeRepo.DeleteSessionArgsForCall(0)
				Expect(deletedID).To(Equal(sessionID))
			})
		})
	})

	Describe("Logout", func() {
		When("the session exists", func() {
			BeforeEach(func() {
				fakeRepo.DeleteSessionReturns(nil)
			})

			It("should delete the session", func() {
				Expect(diary.Logout(ctx, "some-id")).To(Succeed())
				Expect(fakeRepo.DeleteSessionCallCount()).To(Equal(1))
			})
		})

		When("the session is already gone", func() {
			BeforeEach(func() {
				fakeRepo.DeleteSessionReturns(repository.ErrSessionNotFound)
			})

			It("should return ErrNoSession", func() {
				Expect(diary.Logout(ctx, "some-id")).To(Equal(core.ErrNoSession))
			})
		})
	})

	Describe("Register", func() {
		When("the username is free", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(nil)
			})

			It("should store a hashed password and role user", func() {
				err := diary.Register(ctx, core.AuthMessage{Username: "alice", Password: "pw1"})
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, user := fakeRepo.CreateUserArgsForCall(0)
				Expect(user.Username).To(Equal("alice"))
				Expect(user.Role).To(Equal(repository.RoleUser))
				Expect(user.PasswordHash).NotTo(Equal("pw1"))
				Expect(bcrypt.CompareHashAndPassword(
					[]byte(user.PasswordHash), []byte("pw1"))).To(Succeed())
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.ErrUsernameTaken)
			})

			It("should return ErrUsernameTaken", func() {
				err := diary.Register(ctx, core.AuthMessage{Username: "alice", Password: "pw1"})
				Expect(err).To(Equal(core.ErrUsernameTaken))
			})
		})
	})

	Describe("GetUser", func() {
		When("the user exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{ID: 7, Username: "alice"}, nil)
			})

			It("should return the record", func() {
				record, err := diary.GetUser(ctx, 7)
				Expect(err).NotTo(HaveOccurred())
				Expect(record).To(Equal(core.UserRecord{ID: 7, Username: "alice"}))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return ErrUserNotFound", func() {
				_, err := diary.GetUser(ctx, 7)
				Expect(err).To(Equal(core.ErrUserNotFound))
			})
		})
	})

	Describe("UpdatePassword", func() {
		var (
			caller core.AuthUser
			err    error
		)

		BeforeEach(func() {
			caller = core.AuthUser{ID: 7, Role: repository.RoleUser}
			fakeRepo.GetUserByIDReturns(repository.User{ID: 7, Username: "alice"}, nil)
			fakeRepo.UpdateUserReturns(nil)
		})

		When("a regular user targets another account", func() {
			It("should return ErrForbidden without touching the store", func() {
				err = diary.UpdatePassword(ctx, caller, 8, "newpass")
				Expect(err).To(Equal(core.ErrForbidden))
				Expect(fakeRepo.GetUserByIDCallCount()).To(BeZero())
			})
		})

		When("a regular user targets their own account", func() {
			It("should re-hash and store the new password", func() {
				err = diary.UpdatePassword(ctx, caller, 7, "newpass")
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.UpdateUserCallCount()).To(Equal(1))
				_, user := fakeRepo.UpdateUserArgsForCall(0)
				Expect(user.PasswordHash).NotTo(Equal("newpass"))
				Expect(bcrypt.CompareHashAndPassword(
					[]byte(user.PasswordHash), []byte("newpass"))).To(Succeed())
			})
		})

		When("an admin targets another account", func() {
			BeforeEach(func() {
				caller = core.AuthUser{ID: 1, Role: repository.RoleAdmin}
			})

			It("should be allowed", func() {
				err = diary.UpdatePassword(ctx, caller, 7, "newpass")
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("the target does not exist", func() {
			BeforeEach(func() {
				caller = core.AuthUser{ID: 1, Role: repository.RoleAdmin}
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return ErrUserNotFound", func() {
				err = diary.UpdatePassword(ctx, caller, 7, "newpass")
				Expect(err).To(Equal(core.ErrUserNotFound))
			})
		})
	})

	Describe("DeleteUser", func() {
		BeforeEach(func() {
			fakeRepo.DeleteUserReturns(nil)
		})

		When("the caller is not an admin", func() {
			It("should return ErrForbidden", func() {
				caller := core.AuthUser{ID: 7, Role: repository.RoleUser}
				Expect(diary.DeleteUser(ctx, caller, 8)).To(Equal(core.ErrForbidden))
				Expect(fakeRepo.DeleteUserCallCount()).To(BeZero())
			})
		})

		When("an admin targets themselves", func() {
			It("should return ErrForbidden", func() {
				caller := core.AuthUser{ID: 1, Role: repository.RoleAdmin}
				Expect(diary.DeleteUser(ctx, caller, 1)).To(Equal(core.ErrForbidden))
				Expect(fakeRepo.DeleteUserCallCount()).To(BeZero())
			})
		})

		When("an admin targets another user", func() {
			It("should delete the user", func() {
				caller := core.AuthUser{ID: 1, Role: repository.RoleAdmin}
				Expect(diary.DeleteUser(ctx, caller, 7)).To(Succeed())

				_, id := fakeRepo.DeleteUserArgsForCall(0)
				Expect(id).To(Equal(uint(7)))
			})
		})

		When("the target does not exist", func() {
			BeforeEach(func() {
				fakeRepo.DeleteUserReturns(repository.ErrUserNotFound)
			})

			It("should return ErrUserNotFound", func() {
				caller := core.AuthUser{ID: 1, Role: repository.RoleAdmin}
				Expect(diary.DeleteUser(ctx, caller, 7)).To(Equal(core.ErrUserNotFound))
			})
		})
	})

	Describe("CreateMeal", func() {
		var (
			caller  core.AuthUser
			msg     core.MealMessage
			eatenAt time.Time
		)

		BeforeEach(func() {
			caller = core.AuthUser{ID: 7, Role: repository.RoleUser}
			eatenAt = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
			msg = core.MealMessage{
				Name:        "Lunch",
				Description: "rice and beans",
				EatenAt:     eatenAt,
				InDiet:      true,
			}
			fakeRepo.CreateMealStub = func(_ context.Context, meal *repository.Meal) error {
				meal.ID = 3
				return nil
			}
		})

		It("should own the meal by the caller and return the record", func() {
			record, err := diary.CreateMeal(ctx, caller, msg)
			Expect(err).NotTo(HaveOccurred())

			_, meal := fakeRepo.CreateMealArgsForCall(0)
			Expect(meal.UserID).To(Equal(uint(7)))
			Expect(meal.Name).To(Equal("Lunch"))
			Expect(meal.InDiet).To(BeTrue())

			Expect(record).To(Equal(core.MealRecord{
				ID:          3,
				Name:        "Lunch",
				Description: "rice and beans",
				EatenAt:     eatenAt,
				InDiet:      true,
				UserID:      7,
			}))
		})
	})

	Describe("ListMeals", func() {
		var caller core.AuthUser

		BeforeEach(func() {
			caller = core.AuthUser{ID: 7}
		})

		It("should list only the caller's meals", func() {
			fakeRepo.ListMealsReturns([]repository.Meal{{ID: 3, UserID: 7}}, nil)

			records, err := diary.ListMeals(ctx, caller)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))

			_, userID := fakeRepo.ListMealsArgsForCall(0)
			Expect(userID).To(Equal(uint(7)))
		})

		It("should return an empty slice when there are no meals", func() {
			fakeRepo.ListMealsReturns([]repository.Meal{}, nil)

			records, err := diary.ListMeals(ctx, caller)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).NotTo(BeNil())
			Expect(records).To(BeEmpty())
		})
	})

	Describe("GetMeal", func() {
		var caller core.AuthUser

		BeforeEach(func() {
			caller = core.AuthUser{ID: 7}
		})

		It("should scope the lookup to the caller", func() {
			fakeRepo.GetMealReturns(repository.Meal{ID: 3, UserID: 7}, nil)

			_, err := diary.GetMeal(ctx, caller, 3)
			Expect(err).NotTo(HaveOccurred())

			_, id, userID := fakeRepo.GetMealArgsForCall(0)
			Expect(id).To(Equal(uint(3)))
			Expect(userID).To(Equal(uint(7)))
		})

		When("the meal belongs to someone else", func() {
			BeforeEach(func() {
				fakeRepo.GetMealReturns(repository.Meal{}, repository.ErrMealNotFound)
			})

			It("should return ErrMealNotFound", func() {
				_, err := diary.GetMeal(ctx, caller, 3)
				Expect(err).To(Equal(core.ErrMealNotFound))
			})
		})
	})

	Describe("UpdateMeal", func() {
		var (
			caller core.AuthUser
			msg    core.MealMessage
		)

		BeforeEach(func() {
			caller = core.AuthUser{ID: 7}
			msg = core.MealMessage{
				Name:    "Dinner",
				EatenAt: time.Date(2025, 1, 2, 19, 0, 0, 0, time.UTC),
				InDiet:  false,
			}
			fakeRepo.GetMealReturns(repository.Meal{
				ID:          3,
				Name:        "Lunch",
				Description: "old",
				InDiet:      true,
				UserID:      7,
			}, nil)
			fakeRepo.UpdateMealReturns(nil)
		})

		It("should fully replace the meal fields", func() {
			record, err := diary.UpdateMeal(ctx, caller, 3, msg)
			Expect(err).NotTo(HaveOccurred())

			_, meal := fakeRepo.UpdateMealArgsForCall(0)
			Expect(meal.Name).To(Equal("Dinner"))
			Expect(meal.Description).To(BeEmpty())
			Expect(meal.InDiet).To(BeFalse())
			Expect(meal.UserID).To(Equal(uint(7)))

			Expect(record.Name).To(Equal("Dinner"))
		})

		When("the meal is missing or foreign", func() {
			BeforeEach(func() {
				fakeRepo.GetMealReturns(repository.Meal{}, repository.ErrMealNotFound)
			})

			It("should return ErrMealNotFound", func() {
				_, err := diary.UpdateMeal(ctx, caller, 3, msg)
				Expect(err).To(Equal(core.ErrMealNotFound))
				Expect(fakeRepo.UpdateMealCallCount()).To(BeZero())
			})
		})
	})

	Describe("DeleteMeal", func() {
		var caller core.AuthUser

		BeforeEach(func() {
			caller = core.AuthUser{ID: 7}
		})

		It("should delete with the caller as owner", func() {
			fakeRepo.DeleteMealReturns(nil)

			Expect(diary.DeleteMeal(ctx, caller, 3)).To(Succeed())

			_, id, userID := fakeRepo.DeleteMealArgsForCall(0)
			Expect(id).To(Equal(uint(3)))
			Expect(userID).To(Equal(uint(7)))
		})

		When("the meal is missing or foreign", func() {
			BeforeEach(func() {
				fakeRepo.DeleteMealReturns(repository.ErrMealNotFound)
			})

			It("should return ErrMealNotFound", func() {
				Expect(diary.DeleteMeal(ctx, caller, 3)).To(Equal(core.ErrMealNotFound))
			})
		})
	})
})
