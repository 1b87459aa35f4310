package service

import (
	"context"
	"fmt"

	"chartly-be/internal/dto"
	"chartly-be/pkg/figure"
)

type IRenderService interface {
	Render(ctx context.Context, req *dto.RenderRequest) (*dto.RenderResponse, error)
}

type renderService struct {
	sessions ISessionService
}

func NewRenderService(sessions ISessionService) IRenderService {
	return &renderService{sessions: sessions}
}

// Render dispatches the chart type to the figure builder and serializes the
// result. Builder failures are surfaced as client errors carrying the
// underlying message; unknown chart types degrade to scatter inside the
// builder rather than failing.
func (s *renderService) Render(ctx context.Context, req *dto.RenderRequest) (*dto.RenderResponse, error) {
	frame, err := s.sessions.GetFrame(req.SessionID)
	if err != nil {
		return nil, err
	}

	if req.X != "" && !frame.HasColumn(req.X) {
		return nil, fmt.Errorf("%w: column %q not found", ErrInvalidRender, req.X)
	}
	if req.Y != "" && !frame.HasColumn(req.Y) {
		return nil, fmt.Errorf("%w: column %q not found", ErrInvalidRender, req.Y)
	}

	fig, err := figure.Build(frame, req.ChartType, req.X, req.Y)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRender, err.Error())
	}

	figureJSON, err := fig.JSON()
	if err != nil {
		return nil, err
	}

	return &dto.RenderResponse{
		ChartType:  req.ChartType,
		FigureJSON: figureJSON,
	}, nil
}
