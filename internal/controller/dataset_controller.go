package controller

import (
	"errors"
	"io"

	"chartly-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDatasetController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
}

type datasetController struct {
	sessionService service.ISessionService
}

func NewDatasetController(sessionService service.ISessionService) IDatasetController {
	return &datasetController{sessionService: sessionService}
}

func (c *datasetController) RegisterRoutes(r fiber.Router) {
	r.Post("/upload-csv", c.Upload)
}

func (c *datasetController) Upload(ctx *fiber.Ctx) error {
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

	res, err := c.sessionService.Upload(ctx.Context(), fileHeader.Filename, content)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedFormat) {
			return fiber.NewError(fiber.StatusBadRequest, service.ErrUnsupportedFormat.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return ctx.JSON(res)
}
