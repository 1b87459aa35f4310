package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"chartly-be/internal/dto"
)

func TestRenderBar(t *testing.T) {
	sessions, sessionID := irisSession(t)
	svc := NewRenderService(sessions)

	res, err := svc.Render(context.Background(), &dto.RenderRequest{
		SessionID: sessionID,
		ChartType: "bar",
		X:         "species",
		Y:         "sepal_length",
	})
	assert.NoError(t, err)
	assert.Equal(t, "bar", res.ChartType)

	var fig map[string]interface{}
	assert.NoError(t, json.Unmarshal([]byte(res.FigureJSON), &fig))
	assert.Equal(t, "bar", fig["chart_type"])
	assert.NotEmpty(t, fig["series"])
}

func TestRenderUnknownTypeDegradesToScatter(t *testing.T) {
	sessions, sessionID := irisSession(t)
	svc := NewRenderService(sessions)

	res, err := svc.Render(context.Background(), &dto.RenderRequest{
		SessionID: sessionID,
		ChartType: "sunburst",
		X:         "sepal_width",
		Y:         "sepal_length",
	})
	assert.NoError(t, err)
	assert.Equal(t, "sunburst", res.ChartType)

	var fig map[string]interface{}
	assert.NoError(t, json.Unmarshal([]byte(res.FigureJSON), &fig))
	assert.Equal(t, "scatter", fig["chart_type"])
}

func TestRenderMissingColumn(t *testing.T) {
	sessions, sessionID := irisSession(t)
	svc := NewRenderService(sessions)

	_, err := svc.Render(context.Background(), &dto.RenderRequest{
		SessionID: sessionID,
		ChartType: "bar",
		X:         "petal_length",
	})
	assert.True(t, errors.Is(err, ErrInvalidRender))
	assert.Contains(t, err.Error(), "petal_length")
}

func TestRenderTypeMismatch(t *testing.T) {
	sessions, sessionID := irisSession(t)
	svc := NewRenderService(sessions)

	_, err := svc.Render(context.Background(), &dto.RenderRequest{
		SessionID: sessionID,
		ChartType: "line",
		X:         "sepal_length",
		Y:         "species",
	})
	assert.True(t, errors.Is(err, ErrInvalidRender))
	assert.Contains(t, err.Error(), "not numeric")
}

func TestRenderUnknownSession(t *testing.T) {
	sessions, _ := irisSession(t)
	svc := NewRenderService(sessions)

	_, err := svc.Render(context.Background(), &dto.RenderRequest{
		SessionID: "missing",
		ChartType: "bar",
		X:         "species",
	})
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}
