package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"chartly-be/internal/dataset"
	"chartly-be/internal/dto"
	"chartly-be/internal/pkg/logger"
	"chartly-be/internal/repository/memory"
)

const previewRows = 20

type ISessionService interface {
	Upload(ctx context.Context, filename string, content []byte) (*dto.SessionResponse, error)
	GetFrame(sessionID string) (*dataset.Frame, error)
}

type sessionService struct {
	sessions *memory.SessionRepository
	log      logger.ILogger
}

func NewSessionService(sessions *memory.SessionRepository, log logger.ILogger) ISessionService {
	return &sessionService{
		sessions: sessions,
		log:      log,
	}
}

// Upload parses the file, drops fully-empty rows and columns, stores the
// frame under a fresh session id and returns the column metadata plus a row
// preview.
func (s *sessionService) Upload(ctx context.Context, filename string, content []byte) (*dto.SessionResponse, error) {
	var (
		frame *dataset.Frame
		err   error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		frame, err = dataset.ParseCSV(content)
	case ".xlsx":
		frame, err = dataset.ParseXLSX(content)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, fmt.Errorf("Error parsing %s: %w", filename, err)
	}

	sessionID := s.sessions.Save(frame)
	s.log.Info("session", "dataset uploaded", map[string]interface{}{
		"session_id": sessionID,
		"rows":       frame.RowCount(),
		"columns":    frame.ColumnCount(),
	})

	return &dto.SessionResponse{
		SessionID: sessionID,
		Columns:   dataset.Columns(frame),
		Preview:   frame.Preview(previewRows),
	}, nil
}

// GetFrame resolves a session identifier. Every other service depends on
// this lookup and surfaces the same failure.
func (s *sessionService) GetFrame(sessionID string) (*dataset.Frame, error) {
	frame, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return frame, nil
}
