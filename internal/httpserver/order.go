package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/example/storefront/internal/events"
	"github.com/example/storefront/internal/logging"
	"github.com/example/storefront/internal/service"
	"github.com/example/storefront/internal/transport"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *events.Producer
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	// Non-superusers order for themselves only.
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	if !isSuperuser(c) {
		req.UserID = userID
	}

	order, err := h.Svc.CreateOrder(ctx, req)
	if err != nil {
		l.Warn("create_order_error", "error", err)
		return toHTTPError(err)
	}

	publish(c, h.Producer, order.ID.String(), map[string]any{
		"type": "order_created",
		"id":   order.ID,
	})

	l.Info("create_order_success", "order_id", order.ID)
	return c.JSON(http.StatusCreated, transport.NewOrderPublic(order))
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	order, err := h.Svc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	if !isSuperuser(c) && order.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "not enough permissions")
	}

	return c.JSON(http.StatusOK, transport.NewOrderPublic(order))
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	offset, limit := pageWindow(c)

	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	scope := &userID
	if isSuperuser(c) {
		scope = nil
	}

	total, orders, err := h.Svc.ListOrders(c.Request().Context(), scope, offset, limit)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, transport.NewOrdersPublic(orders, total))
}

func (h *OrderHTTP) PatchOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.patch")

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req transport.PatchOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_order_error", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.PatchOrder(ctx, req, id)
	if err != nil {
		l.Warn("patch_order_error", "error", err)
		return toHTTPError(err)
	}

	publish(c, h.Producer, order.ID.String(), map[string]any{
		"type": "order_updated",
		"id":   order.ID,
	})

	return c.JSON(http.StatusOK, transport.NewOrderPublic(order))
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete")

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteOrder(ctx, id); err != nil {
		l.Warn("delete_order_error", "error", err)
		return toHTTPError(err)
	}

	publish(c, h.Producer, id.String(), map[string]any{
		"type": "order_deleted",
		"id":   id,
	})

	return c.NoContent(http.StatusNoContent)
}

// authorizeOrderAccess loads the parent order and rejects callers who
// neither own it nor hold the superuser flag.
func (h *OrderHTTP) authorizeOrderAccess(c echo.Context, orderID uuid.UUID) error {
	order, err := h.Svc.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return toHTTPError(err)
	}
	if isSuperuser(c) {
		return nil
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "not enough permissions")
	}
	return nil
}

func (h *OrderHTTP) CreateOrderDetail(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_detail.create")

	var req transport.CreateOrderDetailRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_detail_error", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.authorizeOrderAccess(c, req.OrderID); err != nil {
		return err
	}

	detail, err := h.Svc.CreateOrderDetail(ctx, req)
	if err != nil {
		l.Warn("create_order_detail_error", "error", err)
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, transport.NewOrderDetailPublic(detail))
}

func (h *OrderHTTP) GetOrderDetail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := h.Svc.GetOrderDetail(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	if err := h.authorizeOrderAccess(c, detail.OrderID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, transport.NewOrderDetailPublic(detail))
}

func (h *OrderHTTP) ListOrderDetails(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.authorizeOrderAccess(c, orderID); err != nil {
		return err
	}
	offset, limit := pageWindow(c)

	total, details, err := h.Svc.ListOrderDetails(c.Request().Context(), orderID, offset, limit)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, transport.NewOrderDetailsPublic(details, total))
}

func (h *OrderHTTP) PatchOrderDetail(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_detail.patch")

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req transport.PatchOrderDetailRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_order_detail_error", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	existing, err := h.Svc.GetOrderDetail(ctx, id)
	if err != nil {
		return toHTTPError(err)
	}
	if err := h.authorizeOrderAccess(c, existing.OrderID); err != nil {
		return err
	}
	if req.OrderID != nil && *req.OrderID != existing.OrderID {
		if err := h.authorizeOrderAccess(c, *req.OrderID); err != nil {
			return err
		}
	}

	detail, err := h.Svc.PatchOrderDetail(ctx, req, id)
	if err != nil {
		l.Warn("patch_order_detail_error", "error", err)
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, transport.NewOrderDetailPublic(detail))
}

func (h *OrderHTTP) DeleteOrderDetail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := h.Svc.GetOrderDetail(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	if err := h.authorizeOrderAccess(c, detail.OrderID); err != nil {
		return err
	}

	if err := h.Svc.DeleteOrderDetail(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
