package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/example/storefront/internal/events"
	"github.com/example/storefront/internal/logging"
	"github.com/example/storefront/internal/service"
	"github.com/example/storefront/internal/transport"
)

type AuthHTTP struct {
	Auth     *service.AuthService
	Users    *service.UserService
	Producer *events.Producer
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Users.Register(ctx, req)
	if err != nil {
		l.Warn("register_error", "error", err)
		return toHTTPError(err)
	}

	publish(c, h.Producer, user.ID.String(), map[string]any{
		"type": "user_registered",
		"id":   user.ID,
	})

	l.Info("register_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, transport.NewUserPublic(user))
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	token, err := h.Auth.Login(ctx, req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, token)
}

// RecoverPassword acknowledges with the same message whether or not
// the email exists, so the endpoint leaks nothing.
func (h *AuthHTTP) RecoverPassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.recover_password")

	email := c.Param("email")
	if _, err := h.Auth.RecoverPassword(ctx, email); err != nil {
		l.Warn("recover_password_error", "error", err)
	}

	return c.JSON(http.StatusOK, transport.Message{Message: "password recovery email sent"})
}

func (h *AuthHTTP) ResetPassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.reset_password")

	var req transport.NewPassword
	if err := c.Bind(&req); err != nil {
		l.Warn("reset_password_error", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Auth.ResetPassword(ctx, req); err != nil {
		l.Warn("reset_password_error", "error", err)
		return toHTTPError(err)
	}

	l.Info("reset_password_success")
	return c.JSON(http.StatusOK, transport.Message{Message: "password updated successfully"})
}
