package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"strings"
	"unicode/utf8"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"chartly-be/internal/dataset"
	"chartly-be/internal/dto"
	"chartly-be/internal/pkg/logger"
	"chartly-be/pkg/gemini"
)

// Error codes embedded in ChartAnalysisResult. These are data, not transport
// failures: a quota hit is an expected business outcome.
const (
	ErrCodeNoAPIKey      = "NO_API_KEY"
	ErrCodeInvalidImage  = "INVALID_IMAGE"
	ErrCodeQuota         = "GEMINI_QUOTA"
	ErrCodeAuth          = "GEMINI_AUTH"
	ErrCodePermission    = "GEMINI_PERMISSION"
	ErrCodeModelNotFound = "GEMINI_MODEL_NOT_FOUND"
	ErrCodeGeneric       = "GEMINI_ERROR"
	ErrCodeServer        = "SERVER_ERROR"
)

// allowedChartTypes is the closed keyword set the model may answer with.
var allowedChartTypes = []string{
	"bar", "line", "pie", "radar", "scatter",
	"heatmap", "boxplot", "histogram", "area", "bubble",
}

// VisionModel is the external-model contract the workflow depends on.
type VisionModel interface {
	GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string, safety []gemini.SafetySetting) (string, error)
}

type IAnalysisService interface {
	AnalyzeImage(ctx context.Context, sessionID string, content []byte) (*dto.ChartAnalysisResult, error)
}

type analysisService struct {
	sessions ISessionService
	model    VisionModel
	apiKey   string
	log      logger.ILogger
}

func NewAnalysisService(sessions ISessionService, model VisionModel, apiKey string, log logger.ILogger) IAnalysisService {
	return &analysisService{
		sessions: sessions,
		model:    model,
		apiKey:   apiKey,
		log:      log,
	}
}

// AnalyzeImage asks the external model to identify the chart in the uploaded
// image and judge its fit against the session's schema. Only an unknown
// session is an error; every other failure, a handler fault included, is
// returned as a well-formed result with an error code.
func (s *analysisService) AnalyzeImage(ctx context.Context, sessionID string, content []byte) (res *dto.ChartAnalysisResult, err error) {
	frame, err := s.sessions.GetFrame(sessionID)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			s.log.Error("analysis", "handler fault", map[string]interface{}{"panic": fmt.Sprint(r)})
			res = failureResult(ErrCodeServer, "Server error.", truncate(fmt.Sprint(r), 100))
			err = nil
		}
	}()

	if s.apiKey == "" {
		return failureResult(ErrCodeNoAPIKey,
			"Gemini API key is not configured.",
			"API configuration is missing."), nil
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		return failureResult(ErrCodeInvalidImage,
			"Invalid image file.",
			"The file could not be decoded."), nil
	}

	prompt := buildDetectionPrompt(dataset.Describe(frame))
	raw, err := s.model.GenerateVision(ctx, prompt, content, "image/"+format, gemini.PermissiveSafetySettings())
	if err != nil {
		s.log.Warn("analysis", "model call failed", map[string]interface{}{"error": err.Error()})
		return s.classifyFailure(err), nil
	}

	result, err := parseDetectionReply(raw)
	if err != nil {
		s.log.Warn("analysis", "model reply unparseable", map[string]interface{}{"error": err.Error()})
		return s.classifyFailure(err), nil
	}
	return result, nil
}

func buildDetectionPrompt(schemaContext string) string {
	return fmt.Sprintf(`You are an expert data visualization assistant.

Your Task:
1. Analyze the provided image and identify the chart type.
2. Check compatibility with the user's dataset schema provided below.

User Dataset Schema:
%s

ALLOWED CHART TYPES:
%s

INSTRUCTIONS:
- If the image is NOT a chart, set 'detected_chart_type' to "other".
- 'confidence' must be a float between 0.0 and 1.0.
- 'is_compatible' is boolean: true if the dataset has the columns this chart needs (e.g. numeric+categorical for bar).

RESPONSE FORMAT (Strict JSON):
{
    "detected_chart_type": "one of allowed types or 'other'",
    "raw_label": "your descriptive label",
    "confidence": 0.95,
    "explanation": "what the chart shows",
    "is_compatible": true,
    "compatibility_reason": "why it fits the dataset or not"
}`, schemaContext, strings.Join(allowedChartTypes, ", "))
}

type detectionReply struct {
	DetectedChartType   string  `json:"detected_chart_type"`
	RawLabel            string  `json:"raw_label"`
	Confidence          float64 `json:"confidence"`
	Explanation         string  `json:"explanation"`
	IsCompatible        bool    `json:"is_compatible"`
	CompatibilityReason string  `json:"compatibility_reason"`
}

// parseDetectionReply strips code fences, parses the strict-JSON contract and
// normalizes the detected type. Missing fields fall back to safe defaults.
func parseDetectionReply(raw string) (*dto.ChartAnalysisResult, error) {
	clean := gemini.StripCodeFences(raw)

	var reply detectionReply
	if err := json.Unmarshal([]byte(clean), &reply); err != nil {
		return nil, fmt.Errorf("parse error: %w | raw: %s", err, truncate(clean, 100))
	}

	detected := strings.ToLower(reply.DetectedChartType)
	if !isAllowedChartType(detected) {
		detected = "other"
	}

	if reply.RawLabel == "" {
		reply.RawLabel = "Unknown"
	}
	if reply.Explanation == "" {
		reply.Explanation = "No explanation provided."
	}
	if reply.CompatibilityReason == "" {
		reply.CompatibilityReason = "No reason given."
	}

	return &dto.ChartAnalysisResult{
		DetectedChartType:   &detected,
		RawLabel:            reply.RawLabel,
		Confidence:          reply.Confidence,
		Explanation:         reply.Explanation,
		IsCompatible:        reply.IsCompatible,
		CompatibilityReason: reply.CompatibilityReason,
	}, nil
}

func isAllowedChartType(t string) bool {
	for _, allowed := range allowedChartTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

// classifyFailure maps a provider failure onto the closed error-code set.
// Status codes from the provider map deterministically; the substring match
// on the error text is kept only as a best-effort fallback for transport and
// parse failures.
func (s *analysisService) classifyFailure(err error) *dto.ChartAnalysisResult {
	code := ErrCodeGeneric
	msg := "Unexpected model error."

	status := 0
	var statusErr *gemini.StatusError
	if errors.As(err, &statusErr) {
		status = statusErr.Code
	} else {
		status = statusFromText(err.Error())
	}

	switch status {
	case 429:
		code, msg = ErrCodeQuota, "Google API quota exceeded (429)."
	case 401:
		code, msg = ErrCodeAuth, "Authorization failed (401)."
	case 403:
		code, msg = ErrCodePermission, "Access denied (403)."
	case 404:
		code, msg = ErrCodeModelNotFound, "Model not found."
	}

	return failureResult(code, msg, "Error detail: "+truncate(err.Error(), 100))
}

func statusFromText(text string) int {
	for _, status := range []int{429, 401, 403, 404} {
		if strings.Contains(text, fmt.Sprintf("%d", status)) {
			return status
		}
	}
	return 0
}

func failureResult(code, explanation, reason string) *dto.ChartAnalysisResult {
	return &dto.ChartAnalysisResult{
		Explanation:         explanation,
		IsCompatible:        false,
		CompatibilityReason: reason,
		ErrorCode:           &code,
	}
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
