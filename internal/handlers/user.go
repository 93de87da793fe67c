package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"digital_store/internal/events"
	"digital_store/internal/hash"
	"digital_store/internal/logging"
	"digital_store/internal/models"
	"digital_store/internal/repo"
	"digital_store/internal/tokens"
	"digital_store/internal/transport"
)

type UserHandler struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	Producer  events.Publisher
}

func (h *UserHandler) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	user, err := h.Repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		l.Error("user_get_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, transport.UserResponse{
		ID:        user.ID,
		Firstname: user.Firstname,
		Surname:   user.Surname,
		Email:     user.Email,
	})
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Password != req.ConfirmPassword {
		return echo.NewHTTPError(http.StatusBadRequest, "Passwords do not match")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("user_create_failed", "status", 500, "reason", "cannot hash the password", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	user := models.User{
		Firstname:    req.Firstname,
		Surname:      req.Surname,
		Email:        req.Email,
		PasswordHash: pwHash,
	}
	if err := h.Repo.CreateUser(ctx, &user); err != nil {
		l.Error("user_create_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	publish(c, h.Producer, events.TopicUsers, fmt.Sprint(user.ID), map[string]any{
		"type":   "user_created",
		"userID": user.ID,
	})
	l.Info("user_created", "user_id", user.ID)
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	var req transport.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Repo.UpdateUser(ctx, id, req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		l.Error("user_update_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	publish(c, h.Producer, events.TopicUsers, fmt.Sprint(id), map[string]any{
		"type":   "user_updated",
		"userID": id,
	})
	l.Info("user_updated", "user_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	if err := h.Repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		l.Error("user_delete_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	publish(c, h.Producer, events.TopicUsers, fmt.Sprint(id), map[string]any{
		"type":   "user_deleted",
		"userID": id,
	})
	l.Info("user_deleted", "user_id", id)
	return c.NoContent(http.StatusNoContent)
}

// Login verifies the credentials and issues the signed bearer token that
// the auth guard accepts for the following two hours.
func (h *UserHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User Unauthorized")
	}

	user, err := h.Repo.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidCredentials) {
			l.Warn("login_failed", "status", 401, "email", req.Email)
			return echo.NewHTTPError(http.StatusUnauthorized, "User Unauthorized")
		}
		l.Error("login_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server error")
	}

	token, err := tokens.CreateToken(user.ID, h.JWTSecret)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server error")
	}

	l.Info("login_successful", "user_id", user.ID)
	return c.JSON(http.StatusOK, transport.LoginResponse{
		ID:    user.ID,
		Name:  user.Firstname + " " + user.Surname,
		Token: token,
	})
}
