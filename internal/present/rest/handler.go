package rest

import (
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/userrate/userrate/internal/domain"
	"github.com/userrate/userrate/internal/infra/pagecache"
	"github.com/userrate/userrate/internal/present/rest/presenter"
	"github.com/userrate/userrate/internal/usecase"
	"github.com/userrate/userrate/web"
)

type Handler struct {
	profile  *usecase.ProfileUsecase
	renderer *Renderer
	pages    pagecache.Cache
}

func NewHandler(profile *usecase.ProfileUsecase, renderer *Renderer, pages pagecache.Cache) *Handler {
	return &Handler{
		profile:  profile,
		renderer: renderer,
		pages:    pages,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
	e.GET("/:memberId", h.handleProfile)
}

func (h *Handler) handleProfile(c echo.Context) error {
	ctx := c.Request().Context()
	memberID := c.Param("memberId")

	if page, ok := h.pages.Get(memberID); ok {
		return presenter.ProfileHTML(c, page)
	}

	model, err := h.profile.Resolve(ctx, memberID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.MemberNotFound(c, memberID)
		}
		return presenter.InternalError(c, err)
	}

	page, err := h.renderer.Render(model)
	if err != nil {
		return presenter.InternalError(c, err)
	}

	slog.Info("visited profile",
		slog.String("member", memberID),
		slog.String("username", model.Username),
	)

	h.pages.Set(memberID, page)
	return presenter.ProfileHTML(c, page)
}
