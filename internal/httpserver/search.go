package httpserver

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/example/storefront/internal/logging"
	"github.com/example/storefront/internal/search"
)

type SearchHTTP struct {
	ES *elasticsearch.Client
}

func (h *SearchHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "search")

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}
	if h.ES == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "search is not configured")
	}

	offset, limit := pageWindow(c)

	total, docs, err := search.Search(ctx, h.ES, search.Index, q, offset, limit)
	if err != nil {
		l.Error("search_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data":  docs,
		"count": total,
	})
}
