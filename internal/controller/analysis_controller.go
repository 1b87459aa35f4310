package controller

import (
	"errors"
	"io"

	"chartly-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAnalysisController interface {
	RegisterRoutes(r fiber.Router)
	AnalyzeImage(ctx *fiber.Ctx) error
}

type analysisController struct {
	analysisService service.IAnalysisService
}

func NewAnalysisController(analysisService service.IAnalysisService) IAnalysisController {
	return &analysisController{analysisService: analysisService}
}

func (c *analysisController) RegisterRoutes(r fiber.Router) {
	r.Post("/analyze-chart-image", c.AnalyzeImage)
}

// AnalyzeImage always answers 200 with a ChartAnalysisResult; failures live
// in its error_code field. The one exception is an unknown session, which is
// a transport-level 404.
func (c *analysisController) AnalyzeImage(ctx *fiber.Ctx) error {
	sessionID := ctx.FormValue("session_id")
	if sessionID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session_id is required")
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	res, err := c.analysisService.AnalyzeImage(ctx.Context(), sessionID, content)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, service.ErrSessionNotFound.Error())
		}
		return err
	}
	return ctx.JSON(res)
}
