package bootstrap

import (
	"chartly-be/internal/config"
	"chartly-be/internal/controller"
	"chartly-be/internal/pkg/logger"
	"chartly-be/internal/repository/memory"
	"chartly-be/internal/service"
	"chartly-be/pkg/gemini"
)

type Container struct {
	// Controllers
	DatasetController  controller.IDatasetController
	ChartController    controller.IChartController
	AnalysisController controller.IAnalysisController
	DebugController    controller.IDebugController

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// In-memory session storage; sessions live for the process lifetime.
	sessionRepo := memory.NewSessionRepository()

	geminiClient := gemini.NewClient(cfg.Keys.GoogleGemini, cfg.Ai.GeminiModel, cfg.Ai.GeminiEndpoint)

	sessionService := service.NewSessionService(sessionRepo, sysLogger)
	suggestionService := service.NewSuggestionService(sessionService)
	renderService := service.NewRenderService(sessionService)
	analysisService := service.NewAnalysisService(sessionService, geminiClient, cfg.Keys.GoogleGemini, sysLogger)

	return &Container{
		DatasetController:  controller.NewDatasetController(sessionService),
		ChartController:    controller.NewChartController(suggestionService, renderService),
		AnalysisController: controller.NewAnalysisController(analysisService),
		DebugController:    controller.NewDebugController(cfg.Keys.GoogleGemini, geminiClient),
		Logger:             sysLogger,
	}
}
