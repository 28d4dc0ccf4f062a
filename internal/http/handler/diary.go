package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"dietlog/internal/core"
	"dietlog/internal/http/handler/middleware"
	"dietlog/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Login      = "POST /login"
	Logout     = "GET /logout"
	CreateUser = "POST /user"
	GetUser    = "GET /user/{id}"
	UpdateUser = "PUT /user/{id}"
	DeleteUser = "DELETE /user/{id}"
	CreateMeal = "POST /meals"
	ListMeals  = "GET /meals"
	GetMeal    = "GET /meals/{id}"
	UpdateMeal = "PUT /meals/{id}"
	DeleteMeal = "DELETE /meals/{id}"
)

type DietHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	diary            DiaryService
}

func NewDietHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, diaryService DiaryService) *DietHandler {
	return &DietHandler{
		logs:             logger,
		requestValidator: requestValidator,
		diary:            diaryService,
	}
}

func (h *DietHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	var body payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &body)
	if err == nil {
		err = body.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "invalid credentials",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestID)
		return
	}

	token, err := h.diary.Login(r.Context(), body.ToMessage())
	if err != nil {
		resp := Response{Message: "invalid credentials"}
		httpCode := http.StatusBadRequest
		if !errors.Is(err, core.ErrInvalidCredentials) {
			httpCode = http.StatusInternalServerError
			resp.Message = oopsErr
		}

		h.respond(w, resp, httpCode, requestID)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestID)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.respond(w, Response{Message: "authentication successful"}, http.StatusOK, requestID)
}

func (h *DietHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		h.respond(w, Response{Message: "authentication required"}, http.StatusUnauthorized, requestID)
		return
	}

	if err := h.diary.Logout(r.Context(), caller.SessionID); err != nil {
		resp := Response{Message: "authentication required"}
		httpCode := http.StatusUnauthorized
		if !errors.Is(err, core.ErrNoSession) {
			httpCode = http.StatusInternalServerError
			resp.Message = oopsErr
		}

		h.respond(w, resp, httpCode, requestID)
		h.logs.Errorw("logout failed",
			"error", err,
			"handler", Logout,
			"request_id", requestID)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	h.respond(w, Response{Message: "logout successful"}, http.StatusOK, requestID)
}

func (h *DietHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	var body payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &body)
	if err == nil {
		err = body.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "required fields: username, password",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateUser,
			"request_id", requestID)
		return
	}

	if err := h.diary.Register(r.Context(), body.ToMessage()); err != nil {
		resp := Response{Message: "username already taken"}
		httpCode := http.StatusConflict
		if !errors.Is(err, core.ErrUsernameTaken) {
			httpCode = http.StatusInternalServerError
			resp.Message = oopsErr
		}

		h.respond(w, resp, httpCode, requestID)
		h.logs.Errorw("user registration failed",
			"error", err,
			"handler", CreateUser,
			"request_id", requestID)
		return
	}

	h.respond(w, Response{Message: "user registered successfully"}, http.StatusOK, requestID)
}

func (h *DietHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	id, ok := h.pathID(w, r, "user not found", requestID)
	if !ok {
		return
	}

	user, err := h.diary.GetUser(r.Context(), id)
	if err != nil {
		resp := Response{Message: "user not found"}
		httpCode := http.StatusNotFound
		if !errors.Is(err, core.ErrUserNotFound) {
			httpCode = http.StatusInternalServerError
			resp.Message = oopsErr
		}

		h.respond(w, resp, httpCode, requestID)
		h.logs.Errorw("failed to get user",
			"error", err,
			"handler", GetUser,
			"request_id", requestID)
		return
	}

	h.respond(w, UserResponse{Username: user.Username}, http.StatusOK, requestID)
}

func (h *DietHandler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		h.respond(w, Response{Message: "authentication required"}, http.StatusUnauthorized, requestID)
		return
	}

	id, ok := h.pathID(w, r, "user not found", requestID)
	if !ok {
		return
	}

	// the authorization rule comes before any look at the body, so a
	// forbidden caller gets 403 even with an invalid payload
	if !caller.CanModifyUser(id) {
		h.respond(w, Response{Message: "operation not permitted"}, http.StatusForbidden, requestID)
		h.logs.Infow("forbidden user update rejected",
			"handler", UpdateUser,
			"callerId", caller.ID,
			"userId", id,
			"request_id", requestID)
		return
	}

	var body payload.PasswordRequest
	err := h.requestValidator.DecodeJSONPayload(r, &body)
	if err == nil {
		err = body.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "required fields: password",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateUser,
			"request_id", requestID)
		return
	}

	if err := h.diary.UpdatePassword(r.Context(), caller, id, body.Password); err != nil {
		var resp Response
		var httpCode int
		switch {
		case errors.Is(err, core.ErrForbidden):
			httpCode = http.StatusForbidden
			resp.Message = "operation not permitted"
		case errors.Is(err, core.ErrUserNotFound):
			httpCode = http.StatusNotFound
			resp.Message = "user not found"
		default:
			httpCode = http.StatusInternalServerError
			resp.Message = oopsErr
		}

		h.respond(w, resp, httpCode, requestID)
		h.logs.Errorw("failed to update user",
			"error", err,
			"handler", UpdateUser,
			"request_id", requestID)
		return
	}

	h.respond(w, Response{Message: fmt.Sprintf("user %d updated successfully", id)}, http.StatusOK, requestID)
}

func (h *DietHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		h.respond(w, Response{Message: "authentication required"}, http.StatusUnauthorized, requestID)
		return
	}

	id, ok := h.pathID(w, r, "user not found", requestID)
	if !ok {
		return
	}

	if err := h.diary.DeleteUser(r.Context(), caller, id); err != nil {
		var resp Response
		var httpCode int
		switch {
		case errors.Is(err, core.ErrForbidden):
			httpCode = http.StatusForbidden
			resp.Message = "operation not permitted"
		case errors.Is(err, core.ErrUserNotFound):
			httpCode = http.StatusNotFound
			resp.Message = "user not found"
		default:
			httpCode = http.StatusInternalServerError
			resp.Message = oopsErr
		}

		h.respond(w, resp, httpCode, requestID)
		h.logs.Errorw("failed to delete user",
			"error", err,
			"handler", DeleteUser,
			"request_id", requestID)
		return
	}

	h.respond(w, Response{Message: fmt.Sprintf("user %d deleted successfully", id)}, http.StatusOK, requestID)
}

func (h *DietHandler) HandleCreateMeal(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		h.respond(w, Response{Message: "authentication required"}, http.StatusUnauthorized, requestID)
		return
	}

	msg, ok := h.decodeMealRequest(w, r, CreateMeal, requestID)
	if !ok {
		return
	}

	meal, err := h.diary.CreateMeal(r.Context(), caller, msg)
	if err != nil {
		h.respond(w, Response{Message: oopsErr}, http.StatusInternalServerError, requestID)
		h.logs.Errorw("failed to create meal",
			"error", err,
			"handler", CreateMeal,
			"request_id", requestID)
		return
	}

	h.respond(w, newMealResponse(meal), http.StatusCreated, requestID)
}

func (h *DietHandler) HandleListMeals(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		h.respond(w, Response{Message: "authentication required"}, http.StatusUnauthorized, requestID)
		return
	}

	meals, err := h.diary.ListMeals(r.Context(), caller)
	if err != nil {
		h.respond(w, Response{Message: oopsErr}, http.StatusInternalServerError, requestID)
		h.logs.Errorw("failed to list meals",
			"error", err,
			"handler", ListMeals,
			"request_id", requestID)
		return
	}

	resp := make([]MealResponse, len(meals))
	for i, meal := range meals {
		resp[i] = newMealResponse(meal)
	}

	h.respond(w, resp, http.StatusOK, requestID)
}

func (h *DietHandler) HandleGetMeal(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		h.respond(w, Response{Message: "authentication required"}, http.StatusUnauthorized, requestID)
		return
	}

	id, ok := h.pathID(w, r, "meal not found", requestID)
	if !ok {
		return
	}

	meal, err := h.diary.GetMeal(r.Context(), caller, id)
	if err != nil {
		resp := Response{Message: "meal not found"}
		httpCode := http.StatusNotFound
		if !errors.Is(err, core.ErrMealNotFound) {
			httpCode = http.StatusInternalServerError
			resp.Message = oopsErr
		}

		h.respond(w, resp, httpCode, requestID)
		h.logs.Errorw("failed to get meal",
			"error", err,
			"handler", GetMeal,
			"request_id", requestID)
		return
	}

	h.respond(w, newMealResponse(meal), http.StatusOK, requestID)
}

func (h *DietHandler) HandleUpdateMeal(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		h.respond(w, Response{Message: "authentication required"}, http.StatusUnauthorized, requestID)
		return
	}

	id, ok := h.pathID(w, r, "meal not found", requestID)
	if !ok {
		return
	}

	// the ownership lookup comes before body validation, so a foreign or
	// missing meal id answers 404 even with an invalid payload
	if _, err := h.diary.GetMeal(r.Context(), caller, id); err != nil {
		resp := Response{Message: "meal not found"}
		httpCode := http.StatusNotFound
		if !errors.Is(err, core.ErrMealNotFound) {
			httpCode = http.StatusInternalServerError
			resp.Message = oopsErr
		}

		h.respond(w, resp, httpCode, requestID)
		h.logs.Errorw("failed to get meal for update",
			"error", err,
			"handler", UpdateMeal,
			"request_id", requestID)
		return
	}

	msg, ok := h.decodeMealRequest(w, r, UpdateMeal, requestID)
	if !ok {
		return
	}

	meal, err := h.diary.UpdateMeal(r.Context(), caller, id, msg)
	if err != nil {
		resp := Response{Message: "meal not found"}
		httpCode := http.StatusNotFound
		if !errors.Is(err, core.ErrMealNotFound) {
			httpCode = http.StatusInternalServerError
			resp.Message = oopsErr
		}

		h.respond(w, resp, httpCode, requestID)
		h.logs.Errorw("failed to update meal",
			"error", err,
			"handler", UpdateMeal,
			"request_id", requestID)
		return
	}

	h.respond(w, newMealResponse(meal), http.StatusOK, requestID)
}

func (h *DietHandler) HandleDeleteMeal(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		h.respond(w, Response{Message: "authentication required"}, http.StatusUnauthorized, requestID)
		return
	}

	id, ok := h.pathID(w, r, "meal not found", requestID)
	if !ok {
		return
	}

	if err := h.diary.DeleteMeal(r.Context(), caller, id); err != nil {
		resp := Response{Message: "meal not found"}
		httpCode := http.StatusNotFound
		if !errors.Is(err, core.ErrMealNotFound) {
			httpCode = http.StatusInternalServerError
			resp.Message = oopsErr
		}

		h.respond(w, resp, httpCode, requestID)
		h.logs.Errorw("failed to delete meal",
			"error", err,
			"handler", DeleteMeal,
			"request_id", requestID)
		return
	}

	h.respond(w, Response{Message: "meal deleted successfully"}, http.StatusOK, requestID)
}

// decodeMealRequest reads and validates a meal body, writing the error
// response itself. Missing fields and a malformed datetime are both 400 but
// carry distinct messages.
func (h *DietHandler) decodeMealRequest(w http.ResponseWriter, r *http.Request, handlerName, requestID string) (core.MealMessage, bool) {
	var body payload.MealRequest
	err := h.requestValidator.DecodeJSONPayload(r, &body)
	if err == nil {
		err = body.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "required fields: name, datetime, in_diet",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", handlerName,
			"request_id", requestID)
		return core.MealMessage{}, false
	}

	msg, err := body.ToMessage()
	if err != nil {
		h.respond(w, Response{
			Message: "invalid datetime format, use ISO 8601, e.g. 2025-11-15T12:30:00",
			Error:   err.Error(),
		}, http.StatusBadRequest, requestID)
		h.logs.Errorw("failed to parse meal datetime",
			"error", err,
			"handler", handlerName,
			"request_id", requestID)
		return core.MealMessage{}, false
	}

	return msg, true
}

// pathID parses the {id} path segment. A non-numeric id is a 404, the same
// as a missing record.
func (h *DietHandler) pathID(w http.ResponseWriter, r *http.Request, notFoundMsg, requestID string) (uint, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		h.respond(w, Response{Message: notFoundMsg}, http.StatusNotFound, requestID)
		return 0, false
	}
	return uint(id), true
}

func (h *DietHandler) respond(w http.ResponseWriter, resp any, code int, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	if requestID != "" {
		w.Header().Set("X-Request-Id", requestID)
	}
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response", "error", err, "request_id", requestID)
	}
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(middleware.RequestIDKey).(string)
	return id
}
