package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"dietlog/internal/core"
	"dietlog/internal/http/handler"
	"dietlog/internal/http/handler/fake"
	"dietlog/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("DietHandler", func() {
	var (
		dh            *handler.DietHandler
		fakeService   *fake.DiaryService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		caller        core.AuthUser
		fakeErr       error
	)

	authedRequest := func(method, target, body string) *http.Request {
		var r *http.Request
		if body == "" {
			r = httptest.NewRequest(method, target, nil)
		} else {
			r = httptest.NewRequest(method, target, strings.NewReader(body))
			r.Header.Set("Content-Type", "application/json")
		}
		return r.WithContext(middleware.WithCaller(r.Context(), caller))
	}

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.DiaryService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}
		caller = core.AuthUser{ID: 7, Username: "alice", Role: "user", SessionID: "sess-1"}

		w = httptest.NewRecorder()
		dh = handler.NewDietHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			fakeService.LoginReturns("signed-token", nil)
			req = httptest.NewRequest("POST", "/login", strings.NewReader(`{"username":"alice","password":"pw1"}`))
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			dh.HandleLogin(w, req)
		})

		When("the credentials are valid", func() {
			It("should set the session cookie and return 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				cookies := w.Result().Cookies()
				Expect(cookies).To(HaveLen(1))
				Expect(cookies[0].Name).To(Equal(middleware.SessionCookie))
				Expect(cookies[0].Value).To(Equal("signed-token"))
				Expect(cookies[0].HttpOnly).To(BeTrue())

				Expect(fakeService.LoginCallCount()).To(Equal(1))
				_, msg := fakeService.LoginArgsForCall(0)
				Expect(msg.Username).To(Equal("alice"))
			})
		})

		When("the credentials are wrong", func() {
			BeforeEach(func() {
				fakeService.LoginReturns("", core.ErrInvalidCredentials)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("invalid credentials"))
			})
		})

		When("a field is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/login", strings.NewReader(`{"username":"alice"}`))
			})

			It("should return 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.LoginCallCount()).To(BeZero())
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.LoginReturns("", fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleLogout", func() {
		BeforeEach(func() {
			fakeService.LogoutReturns(nil)
			req = authedRequest("GET", "/logout", "")
		})

		JustBeforeEach(func() {
			dh.HandleLogout(w, req)
		})

		It("should terminate the caller's session and clear the cookie", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			_, sessionID := fakeService.LogoutArgsForCall(0)
			Expect(sessionID).To(Equal("sess-1"))

			cookies := w.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].MaxAge).To(Equal(-1))
		})

		When("there is no caller in the context", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/logout", nil)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.LogoutCallCount()).To(BeZero())
			})
		})

		When("the session is already gone", func() {
			BeforeEach(func() {
				fakeService.LogoutReturns(core.ErrNoSession)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleCreateUser", func() {
		BeforeEach(func() {
			fakeService.RegisterReturns(nil)
			req = httptest.NewRequest("POST", "/user", strings.NewReader(`{"username":"alice","password":"pw1"}`))
		})

		JustBeforeEach(func() {
			dh.HandleCreateUser(w, req)
		})

		It("should register the user and return 200", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("user registered successfully"))

			_, msg := fakeService.RegisterArgsForCall(0)
			Expect(msg.Username).To(Equal("alice"))
			Expect(msg.Password).To(Equal("pw1"))
		})

		When("the password is empty", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/user", strings.NewReader(`{"username":"alice","password":""}`))
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.RegisterCallCount()).To(BeZero())
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.ErrUsernameTaken)
			})

			It("should return 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("HandleGetUser", func() {
		BeforeEach(func() {
			fakeService.GetUserReturns(core.UserRecord{ID: 8, Username: "bob"}, nil)
			req = authedRequest("GET", "/user/8", "")
			req.SetPathValue("id", "8")
		})

		JustBeforeEach(func() {
			dh.HandleGetUser(w, req)
		})

		It("should return the username", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp map[string]string
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp).To(Equal(map[string]string{"username": "bob"}))

			_, id := fakeService.GetUserArgsForCall(0)
			Expect(id).To(Equal(uint(8)))
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.GetUserReturns(core.UserRecord{}, core.ErrUserNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the id is not numeric", func() {
			BeforeEach(func() {
				req.SetPathValue("id", "abc")
			})

			It("should return 404 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(fakeService.GetUserCallCount()).To(BeZero())
			})
		})
	})

	Describe("HandleUpdateUser", func() {
		BeforeEach(func() {
			fakeService.UpdatePasswordReturns(nil)
			req = authedRequest("PUT", "/user/7", `{"password":"newpass"}`)
			req.SetPathValue("id", "7")
		})

		JustBeforeEach(func() {
			dh.HandleUpdateUser(w, req)
		})

		It("should update the password", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			_, argCaller, id, password := fakeService.UpdatePasswordArgsForCall(0)
			Expect(argCaller).To(Equal(caller))
			Expect(id).To(Equal(uint(7)))
			Expect(password).To(Equal("newpass"))
		})

		When("the password field is missing", func() {
			BeforeEach(func() {
				req = authedRequest("PUT", "/user/7", `{}`)
				req.SetPathValue("id", "7")
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.UpdatePasswordCallCount()).To(BeZero())
			})
		})

		When("the caller may not edit the target", func() {
			BeforeEach(func() {
				fakeService.UpdatePasswordReturns(core.ErrForbidden)
			})

			It("should return 403", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})

		When("a non-admin caller targets another user with an invalid body", func() {
			BeforeEach(func() {
				req = authedRequest("PUT", "/user/8", `{}`)
				req.SetPathValue("id", "8")
			})

			It("should return 403 without reading the body", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
				Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(BeZero())
				Expect(fakeService.UpdatePasswordCallCount()).To(BeZero())
			})
		})

		When("an admin targets another user", func() {
			BeforeEach(func() {
				caller = core.AuthUser{ID: 1, Username: "admin", Role: "admin", SessionID: "sess-adm"}
				req = authedRequest("PUT", "/user/8", `{"password":"newpass"}`)
				req.SetPathValue("id", "8")
			})

			It("should reach the service", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				_, argCaller, id, _ := fakeService.UpdatePasswordArgsForCall(0)
				Expect(argCaller).To(Equal(caller))
				Expect(id).To(Equal(uint(8)))
			})
		})

		When("the target does not exist", func() {
			BeforeEach(func() {
				fakeService.UpdatePasswordReturns(core.ErrUserNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleDeleteUser", func() {
		BeforeEach(func() {
			fakeService.DeleteUserReturns(nil)
			req = authedRequest("DELETE", "/user/8", "")
			req.SetPathValue("id", "8")
		})

		JustBeforeEach(func() {
			dh.HandleDeleteUser(w, req)
		})

		It("should delete the user", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			_, argCaller, id := fakeService.DeleteUserArgsForCall(0)
			Expect(argCaller).To(Equal(caller))
			Expect(id).To(Equal(uint(8)))
		})

		When("the caller is not allowed", func() {
			BeforeEach(func() {
				fakeService.DeleteUserReturns(core.ErrForbidden)
			})

			It("should return 403", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})

		When("the target does not exist", func() {
			BeforeEach(func() {
				fakeService.DeleteUserReturns(core.ErrUserNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleCreateMeal", func() {
		var record core.MealRecord

		BeforeEach(func() {
			record = core.MealRecord{
				ID:      3,
				Name:    "Lunch",
				EatenAt: time.Date(2025, 11, 15, 12, 30, 0, 0, time.UTC),
				InDiet:  true,
				UserID:  7,
			}
			fakeService.CreateMealReturns(record, nil)
			req = authedRequest("POST", "/meals",
				`{"name":"Lunch","datetime":"2025-11-15T12:30:00","in_diet":true}`)
		})

		JustBeforeEach(func() {
			dh.HandleCreateMeal(w, req)
		})

		It("should return 201 with the serialized meal", func() {
			Expect(w.Code).To(Equal(http.StatusCreated))

			var resp map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp["id"]).To(BeEquivalentTo(3))
			Expect(resp["name"]).To(Equal("Lunch"))
			Expect(resp["datetime"]).To(Equal("2025-11-15T12:30:00"))
			Expect(resp["in_diet"]).To(BeTrue())
			Expect(resp["user_id"]).To(BeEquivalentTo(7))

			_, argCaller, msg := fakeService.CreateMealArgsForCall(0)
			Expect(argCaller).To(Equal(caller))
			Expect(msg.EatenAt).To(Equal(record.EatenAt))
		})

		When("in_diet is explicitly false", func() {
			BeforeEach(func() {
				req = authedRequest("POST", "/meals",
					`{"name":"Snack","datetime":"2025-11-15T16:00:00","in_diet":false}`)
			})

			It("should pass validation", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				_, _, msg := fakeService.CreateMealArgsForCall(0)
				Expect(msg.InDiet).To(BeFalse())
			})
		})

		When("a required field is missing", func() {
			BeforeEach(func() {
				req = authedRequest("POST", "/meals", `{"name":"Lunch","datetime":"2025-11-15T12:30:00"}`)
			})

			It("should return 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("required fields"))
				Expect(fakeService.CreateMealCallCount()).To(BeZero())
			})
		})

		When("the datetime is not ISO 8601", func() {
			BeforeEach(func() {
				req = authedRequest("POST", "/meals", `{"name":"Lunch","datetime":"not-a-date","in_diet":true}`)
			})

			It("should return 400 with a date format message", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("ISO 8601"))
				Expect(fakeService.CreateMealCallCount()).To(BeZero())
			})
		})
	})

	Describe("HandleListMeals", func() {
		BeforeEach(func() {
			req = authedRequest("GET", "/meals", "")
		})

		JustBeforeEach(func() {
			dh.HandleListMeals(w, req)
		})

		When("the caller has meals", func() {
			BeforeEach(func() {
				fakeService.ListMealsReturns([]core.MealRecord{
					{ID: 4, Name: "Dinner", EatenAt: time.Date(2025, 1, 2, 19, 0, 0, 0, time.UTC), UserID: 7},
					{ID: 3, Name: "Lunch", EatenAt: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), UserID: 7},
				}, nil)
			})

			It("should return them in the order given by the service", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var resp []map[string]any
				Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
				Expect(resp).To(HaveLen(2))
				Expect(resp[0]["name"]).To(Equal("Dinner"))
				Expect(resp[1]["name"]).To(Equal("Lunch"))
			})
		})

		When("the caller has no meals", func() {
			BeforeEach(func() {
				fakeService.ListMealsReturns([]core.MealRecord{}, nil)
			})

			It("should return an empty JSON array", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(strings.TrimSpace(w.Body.String())).To(Equal("[]"))
			})
		})
	})

	Describe("HandleGetMeal", func() {
		BeforeEach(func() {
			fakeService.GetMealReturns(core.MealRecord{
				ID:      3,
				Name:    "Lunch",
				EatenAt: time.Date(2025, 11, 15, 12, 30, 0, 0, time.UTC),
				UserID:  7,
			}, nil)
			req = authedRequest("GET", "/meals/3", "")
			req.SetPathValue("id", "3")
		})

		JustBeforeEach(func() {
			dh.HandleGetMeal(w, req)
		})

		It("should return the meal", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			_, argCaller, id := fakeService.GetMealArgsForCall(0)
			Expect(argCaller).To(Equal(caller))
			Expect(id).To(Equal(uint(3)))
		})

		When("the meal is missing or belongs to another user", func() {
			BeforeEach(func() {
				fakeService.GetMealReturns(core.MealRecord{}, core.ErrMealNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleUpdateMeal", func() {
		BeforeEach(func() {
			fakeService.UpdateMealReturns(core.MealRecord{
				ID:      3,
				Name:    "Dinner",
				EatenAt: time.Date(2025, 1, 2, 19, 0, 0, 0, time.UTC),
				UserID:  7,
			}, nil)
			req = authedRequest("PUT", "/meals/3",
				`{"name":"Dinner","datetime":"2025-01-02T19:00:00","in_diet":false}`)
			req.SetPathValue("id", "3")
		})

		JustBeforeEach(func() {
			dh.HandleUpdateMeal(w, req)
		})

		It("should return the updated meal", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp["name"]).To(Equal("Dinner"))
			Expect(resp["datetime"]).To(Equal("2025-01-02T19:00:00"))

			_, _, id, msg := fakeService.UpdateMealArgsForCall(0)
			Expect(id).To(Equal(uint(3)))
			Expect(msg.Name).To(Equal("Dinner"))
		})

		When("the body is invalid", func() {
			BeforeEach(func() {
				req = authedRequest("PUT", "/meals/3", `{"name":"Dinner"}`)
				req.SetPathValue("id", "3")
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.UpdateMealCallCount()).To(BeZero())
			})
		})

		When("the meal is missing or foreign", func() {
			BeforeEach(func() {
				fakeService.GetMealReturns(core.MealRecord{}, core.ErrMealNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(fakeService.UpdateMealCallCount()).To(BeZero())
			})
		})

		When("the meal is foreign and the body is invalid", func() {
			BeforeEach(func() {
				fakeService.GetMealReturns(core.MealRecord{}, core.ErrMealNotFound)
				req = authedRequest("PUT", "/meals/9", `{"name":"Dinner"}`)
				req.SetPathValue("id", "9")
			})

			It("should answer 404 before validating the body", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(BeZero())
				Expect(fakeService.UpdateMealCallCount()).To(BeZero())
			})
		})
	})

	Describe("HandleDeleteMeal", func() {
		BeforeEach(func() {
			fakeService.DeleteMealReturns(nil)
			req = authedRequest("DELETE", "/meals/3", "")
			req.SetPathValue("id", "3")
		})

		JustBeforeEach(func() {
			dh.HandleDeleteMeal(w, req)
		})

		It("should delete the meal", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("meal deleted successfully"))

			_, argCaller, id := fakeService.DeleteMealArgsForCall(0)
			Expect(argCaller).To(Equal(caller))
			Expect(id).To(Equal(uint(3)))
		})

		When("the meal is missing or foreign", func() {
			BeforeEach(func() {
				fakeService.DeleteMealReturns(core.ErrMealNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
