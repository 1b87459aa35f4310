package controller

import (
	"strings"

	"chartly-be/internal/dto"
	"chartly-be/pkg/gemini"

	"github.com/gofiber/fiber/v2"
)

// IDebugController exposes read-only introspection endpoints: whether a model
// credential is configured (never its value) and a live model ping.
type IDebugController interface {
	RegisterRoutes(r fiber.Router)
	GeminiEnv(ctx *fiber.Ctx) error
	GeminiPing(ctx *fiber.Ctx) error
}

type debugController struct {
	apiKey string
	model  *gemini.Client
}

func NewDebugController(apiKey string, model *gemini.Client) IDebugController {
	return &debugController{apiKey: apiKey, model: model}
}

func (c *debugController) RegisterRoutes(r fiber.Router) {
	r.Get("/debug-gemini-env", c.GeminiEnv)
	r.Get("/test-gemini-simple", c.GeminiPing)
}

func (c *debugController) GeminiEnv(ctx *fiber.Ctx) error {
	hasKey := len(c.apiKey) > 0
	keyLength := 0
	if hasKey {
		keyLength = len(c.apiKey)
	}
	return ctx.JSON(dto.DebugEnvResponse{
		HasKey:    hasKey,
		KeyLength: keyLength,
		DemoMode:  !hasKey,
	})
}

func (c *debugController) GeminiPing(ctx *fiber.Ctx) error {
	if c.apiKey == "" {
		return ctx.JSON(dto.GeminiPingResponse{OK: false, ErrorCode: "NO_API_KEY"})
	}

	text, err := c.model.GenerateText(ctx.Context(), "Return OK.")
	if err != nil {
		return ctx.JSON(dto.GeminiPingResponse{
			OK:           false,
			ErrorCode:    "EXCEPTION",
			ErrorMessage: err.Error(),
		})
	}
	return ctx.JSON(dto.GeminiPingResponse{OK: true, ModelResponse: strings.TrimSpace(text)})
}
