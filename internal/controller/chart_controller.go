package controller

import (
	"errors"
	"unicode/utf8"

	"chartly-be/internal/dto"
	"chartly-be/internal/pkg/serverutils"
	"chartly-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChartController interface {
	RegisterRoutes(r fiber.Router)
	Suggest(ctx *fiber.Ctx) error
	Render(ctx *fiber.Ctx) error
}

type chartController struct {
	suggestionService service.ISuggestionService
	renderService     service.IRenderService
}

func NewChartController(
	suggestionService service.ISuggestionService,
	renderService service.IRenderService,
) IChartController {
	return &chartController{
		suggestionService: suggestionService,
		renderService:     renderService,
	}
}

func (c *chartController) RegisterRoutes(r fiber.Router) {
	r.Post("/suggest-charts", c.Suggest)
	r.Post("/render-chart", c.Render)
}

func (c *chartController) Suggest(ctx *fiber.Ctx) error {
	var req dto.SuggestChartsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.suggestionService.Suggest(ctx.Context(), &req)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(res)
}

func (c *chartController) Render(ctx *fiber.Ctx) error {
	var req dto.RenderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.renderService.Render(ctx.Context(), &req)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(res)
}

// mapServiceError translates service sentinels into transport errors. Render
// failures carry the underlying builder message, truncated, to preserve
// diagnosability.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return fiber.NewError(fiber.StatusNotFound, service.ErrSessionNotFound.Error())
	case errors.Is(err, service.ErrInvalidRender):
		return fiber.NewError(fiber.StatusBadRequest, truncateMessage(err.Error(), 200))
	}
	return err
}

func truncateMessage(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
