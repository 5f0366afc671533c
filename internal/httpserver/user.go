package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/example/storefront/internal/events"
	"github.com/example/storefront/internal/logging"
	"github.com/example/storefront/internal/service"
	"github.com/example/storefront/internal/transport"
)

type UserHTTP struct {
	Svc      *service.UserService
	Producer *events.Producer
}

func (h *UserHTTP) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_user_error", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.CreateUser(ctx, req)
	if err != nil {
		l.Warn("create_user_error", "error", err)
		return toHTTPError(err)
	}

	publish(c, h.Producer, user.ID.String(), map[string]any{
		"type": "user_created",
		"id":   user.ID,
	})

	return c.JSON(http.StatusCreated, transport.NewUserPublic(user))
}

func (h *UserHTTP) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.Svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, transport.NewUserPublic(user))
}

func (h *UserHTTP) ListUsers(c echo.Context) error {
	offset, limit := pageWindow(c)

	total, users, err := h.Svc.ListUsers(c.Request().Context(), offset, limit)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, transport.NewUsersPublic(users, total))
}

func (h *UserHTTP) PatchUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.patch")

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req transport.PatchUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_user_error", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.PatchUser(ctx, req, id)
	if err != nil {
		l.Warn("patch_user_error", "error", err)
		return toHTTPError(err)
	}

	publish(c, h.Producer, user.ID.String(), map[string]any{
		"type": "user_updated",
		"id":   user.ID,
	})

	return c.JSON(http.StatusOK, transport.NewUserPublic(user))
}

func (h *UserHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete")

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteUser(ctx, id); err != nil {
		l.Warn("delete_user_error", "error", err)
		return toHTTPError(err)
	}

	publish(c, h.Producer, id.String(), map[string]any{
		"type": "user_deleted",
		"id":   id,
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *UserHTTP) GetMe(c echo.Context) error {
	id, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.Svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, transport.NewUserPublic(user))
}

func (h *UserHTTP) PatchMe(c echo.Context) error {
	id, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req transport.PatchMeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.PatchMe(c.Request().Context(), req, id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, transport.NewUserPublic(user))
}

func (h *UserHTTP) UpdateMyPassword(c echo.Context) error {
	id, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req transport.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.UpdatePassword(c.Request().Context(), req, id); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, transport.Message{Message: "password updated successfully"})
}
