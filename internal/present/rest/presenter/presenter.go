package presenter

import (
	"fmt"
	"html"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ProfileHTML serves a fully rendered profile page.
func ProfileHTML(c echo.Context, page []byte) error {
	return c.HTMLBlob(http.StatusOK, page)
}

// MemberNotFound serves the 404 fragment, echoing the requested identifier.
func MemberNotFound(c echo.Context, memberID string) error {
	slog.Debug("member not found", slog.String("member", memberID))
	body := fmt.Sprintf("<h1>No user found with ID: %s</h1>", html.EscapeString(memberID))
	return c.HTML(http.StatusNotFound, body)
}

// InternalError serves the 500 fragment without leaking error details.
func InternalError(c echo.Context, err error) error {
	slog.Error("internal error", slog.String("error", err.Error()))
	return c.HTML(http.StatusInternalServerError, "<h1>Error loading profile.</h1>")
}
