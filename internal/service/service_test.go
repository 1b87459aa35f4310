package service

import (
	"testing"

	"chartly-be/internal/dataset"
	"chartly-be/internal/repository/memory"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestSession(t *testing.T, headers []string, rows [][]string) (ISessionService, string) {
	t.Helper()
	frame, err := dataset.NewFrame(headers, rows)
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	repo := memory.NewSessionRepository()
	sessionID := repo.Save(frame)
	return NewSessionService(repo, nopLogger{}), sessionID
}

func irisSession(t *testing.T) (ISessionService, string) {
	t.Helper()
	return newTestSession(t,
		[]string{"date", "species", "sepal_length", "sepal_width"},
		[][]string{
			{"2024-01-01", "setosa", "5.1", "3.5"},
			{"2024-01-02", "setosa", "4.9", "3.0"},
			{"2024-01-03", "versicolor", "6.4", "3.2"},
			{"2024-01-04", "versicolor", "6.9", "3.1"},
			{"2024-01-05", "virginica", "6.3", "3.3"},
		},
	)
}
