package httpserver

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/example/storefront/internal/events"
	"github.com/example/storefront/internal/logging"
	"github.com/example/storefront/internal/search"
	"github.com/example/storefront/internal/service"
	"github.com/example/storefront/internal/transport"
)

type BeverageHTTP struct {
	Svc      *service.BeverageService
	Producer *events.Producer
	ES       *elasticsearch.Client
}

func (h *BeverageHTTP) indexBeverage(c echo.Context, pub transport.BeveragePublic) {
	if h.ES == nil {
		return
	}
	doc := search.Document{
		ID:   pub.ID.String(),
		Kind: "beverage",
		Name: pub.Name,
	}
	if pub.Description != nil {
		doc.Description = *pub.Description
	}
	if err := search.IndexDocument(c.Request().Context(), h.ES, search.Index, doc); err != nil {
		logging.FromContext(c.Request().Context()).Warn("index_beverage_failed", "error", err)
	}
}

func (h *BeverageHTTP) CreateBeverage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "beverage.create")

	var req transport.CreateBeverageRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_beverage_error", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	bev, err := h.Svc.CreateBeverage(ctx, req)
	if err != nil {
		l.Warn("create_beverage_error", "error", err)
		return toHTTPError(err)
	}

	pub := transport.NewBeveragePublic(bev)
	h.indexBeverage(c, pub)
	publish(c, h.Producer, bev.ID.String(), map[string]any{
		"type": "beverage_created",
		"id":   bev.ID,
	})

	l.Info("create_beverage_success", "beverage_id", bev.ID)
	return c.JSON(http.StatusCreated, pub)
}

func (h *BeverageHTTP) GetBeverage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	bev, err := h.Svc.GetBeverage(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, transport.NewBeveragePublic(bev))
}

func (h *BeverageHTTP) ListBeverages(c echo.Context) error {
	offset, limit := pageWindow(c)

	total, bevs, err := h.Svc.ListBeverages(c.Request().Context(), offset, limit)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, transport.NewBeveragesPublic(bevs, total))
}

func (h *BeverageHTTP) PatchBeverage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "beverage.patch")

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req transport.PatchBeverageRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_beverage_error", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	bev, err := h.Svc.PatchBeverage(ctx, req, id)
	if err != nil {
		l.Warn("patch_beverage_error", "error", err)
		return toHTTPError(err)
	}

	pub := transport.NewBeveragePublic(bev)
	h.indexBeverage(c, pub)
	publish(c, h.Producer, bev.ID.String(), map[string]any{
		"type": "beverage_updated",
		"id":   bev.ID,
	})

	return c.JSON(http.StatusOK, pub)
}

func (h *BeverageHTTP) DeleteBeverage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "beverage.delete")

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteBeverage(ctx, id); err != nil {
		l.Warn("delete_beverage_error", "error", err)
		return toHTTPError(err)
	}

	if h.ES != nil {
		if err := search.DeleteDocument(ctx, h.ES, search.Index, id.String()); err != nil {
			l.Warn("deindex_beverage_failed", "error", err)
		}
	}
	publish(c, h.Producer, id.String(), map[string]any{
		"type": "beverage_deleted",
		"id":   id,
	})

	return c.NoContent(http.StatusNoContent)
}
