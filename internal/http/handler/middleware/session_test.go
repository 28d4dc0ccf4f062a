package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"dietlog/internal/core"
	"dietlog/internal/http/handler/middleware"
	"dietlog/internal/http/handler/middleware/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("SessionMiddleware", func() {
	var (
		mw           *middleware.SessionMiddleware
		fakeResolver *fake.SessionResolver
		w            *httptest.ResponseRecorder
		req          *http.Request

		nextCalled bool
		nextCaller core.AuthUser
		nextOK     bool
	)

	BeforeEach(func() {
		fakeResolver = new(fake.SessionResolver)
		mw = middleware.NewSessionMiddleware(zap.NewNop().Sugar(), fakeResolver)

		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/meals", nil)

		nextCalled = false
	})

	JustBeforeEach(func() {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			nextCaller, nextOK = middleware.CallerFromContext(r.Context())
		})
		mw.Session(next).ServeHTTP(w, req)
	})

	When("the session cookie carries a live session", func() {
		var caller core.AuthUser

		BeforeEach(func() {
			caller = core.AuthUser{ID: 7, Username: "alice", Role: "user", SessionID: "sess-1"}
			fakeResolver.ResolveSessionReturns(caller, nil)
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "signed-token"})
		})

		It("should put the caller into the context and call next", func() {
			Expect(nextCalled).To(BeTrue())
			Expect(nextOK).To(BeTrue())
			Expect(nextCaller).To(Equal(caller))

			_, token := fakeResolver.ResolveSessionArgsForCall(0)
			Expect(token).To(Equal("signed-token"))
		})
	})

	When("the cookie is missing", func() {
		It("should reject with 401", func() {
			Expect(nextCalled).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("authentication required"))
			Expect(fakeResolver.ResolveSessionCallCount()).To(BeZero())
		})
	})

	When("the cookie value is empty", func() {
		BeforeEach(func() {
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: ""})
		})

		It("should reject with 401", func() {
			Expect(nextCalled).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	When("the session cannot be resolved", func() {
		BeforeEach(func() {
			fakeResolver.ResolveSessionReturns(core.AuthUser{}, errors.New("session expired"))
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "stale-token"})
		})

		It("should reject with 401", func() {
			Expect(nextCalled).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("authentication required"))
		})
	})
})
