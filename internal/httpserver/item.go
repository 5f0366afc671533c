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

type ItemHTTP struct {
	Svc      *service.ItemService
	Producer *events.Producer
	ES       *elasticsearch.Client
}

func (h *ItemHTTP) indexItem(c echo.Context, pub transport.ItemPublic) {
	if h.ES == nil {
		return
	}
	doc := search.Document{
		ID:   pub.ID.String(),
		Kind: "item",
		Name: pub.Title,
	}
	if pub.Description != nil {
		doc.Description = *pub.Description
	}
	if err := search.IndexDocument(c.Request().Context(), h.ES, search.Index, doc); err != nil {
		logging.FromContext(c.Request().Context()).Warn("index_item_failed", "error", err)
	}
}

func (h *ItemHTTP) CreateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "item.create")

	ownerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req transport.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_item_error", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.CreateItem(ctx, req, ownerID)
	if err != nil {
		l.Warn("create_item_error", "error", err)
		return toHTTPError(err)
	}

	pub := transport.NewItemPublic(item)
	h.indexItem(c, pub)
	publish(c, h.Producer, item.ID.String(), map[string]any{
		"type": "item_created",
		"id":   item.ID,
	})

	l.Info("create_item_success", "item_id", item.ID)
	return c.JSON(http.StatusCreated, pub)
}

func (h *ItemHTTP) GetItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	item, err := h.Svc.GetItem(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	if !isSuperuser(c) && item.OwnerID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "not enough permissions")
	}

	return c.JSON(http.StatusOK, transport.NewItemPublic(item))
}

// ListItems returns the caller's items; superusers see everything.
func (h *ItemHTTP) ListItems(c echo.Context) error {
	offset, limit := pageWindow(c)

	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	owner := &userID
	if isSuperuser(c) {
		owner = nil
	}

	total, items, err := h.Svc.ListItems(c.Request().Context(), owner, offset, limit)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, transport.NewItemsPublic(items, total))
}

func (h *ItemHTTP) PatchItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "item.patch")

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req transport.PatchItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_item_error", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	existing, err := h.Svc.GetItem(ctx, id)
	if err != nil {
		return toHTTPError(err)
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	if !isSuperuser(c) && existing.OwnerID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "not enough permissions")
	}

	item, err := h.Svc.PatchItem(ctx, req, id)
	if err != nil {
		l.Warn("patch_item_error", "error", err)
		return toHTTPError(err)
	}

	pub := transport.NewItemPublic(item)
	h.indexItem(c, pub)
	publish(c, h.Producer, item.ID.String(), map[string]any{
		"type": "item_updated",
		"id":   item.ID,
	})

	return c.JSON(http.StatusOK, pub)
}

func (h *ItemHTTP) DeleteItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "item.delete")

	id, err := pathID(c)
	if err != nil {
		return err
	}

	existing, err := h.Svc.GetItem(ctx, id)
	if err != nil {
		return toHTTPError(err)
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	if !isSuperuser(c) && existing.OwnerID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "not enough permissions")
	}

	if err := h.Svc.DeleteItem(ctx, id); err != nil {
		l.Warn("delete_item_error", "error", err)
		return toHTTPError(err)
	}

	if h.ES != nil {
		if err := search.DeleteDocument(ctx, h.ES, search.Index, id.String()); err != nil {
			l.Warn("deindex_item_failed", "error", err)
		}
	}
	publish(c, h.Producer, id.String(), map[string]any{
		"type": "item_deleted",
		"id":   id,
	})

	return c.NoContent(http.StatusNoContent)
}
