package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"chartly-be/internal/dto"
)

func suggest(t *testing.T, sessions ISessionService, sessionID, x, y string) []dto.Suggestion {
	t.Helper()
	svc := NewSuggestionService(sessions)
	res, err := svc.Suggest(context.Background(), &dto.SuggestChartsRequest{
		SessionID: sessionID,
		X:         x,
		Y:         y,
	})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	return res.Suggestions
}

func TestSuggestAutoSelectPrefersTimeSeries(t *testing.T) {
	sessions, sessionID := irisSession(t)

	// No columns given: the datetime column pairs with the first numeric one,
	// so line leads the list.
	suggestions := suggest(t, sessions, sessionID, "", "")
	assert.Equal(t, "line", suggestions[0].ChartType)
	assert.True(t, suggestions[0].Recommended)
	assert.Equal(t, "scatter", suggestions[1].ChartType)
	assert.False(t, suggestions[1].Recommended)
}

func TestSuggestCategoricalNumeric(t *testing.T) {
	sessions, sessionID := irisSession(t)

	suggestions := suggest(t, sessions, sessionID, "species", "sepal_length")
	assert.Len(t, suggestions, 2)
	assert.Equal(t, "bar", suggestions[0].ChartType)
	assert.True(t, suggestions[0].Recommended)
	assert.Equal(t, "box", suggestions[1].ChartType)
	assert.False(t, suggestions[1].Recommended)
}

func TestSuggestNumericNumericUnsorted(t *testing.T) {
	sessions, sessionID := irisSession(t)

	suggestions := suggest(t, sessions, sessionID, "sepal_width", "sepal_length")
	assert.Len(t, suggestions, 3)
	assert.Equal(t, "scatter", suggestions[0].ChartType)
	assert.True(t, suggestions[0].Recommended)
	assert.Equal(t, "line", suggestions[1].ChartType)
	assert.False(t, suggestions[1].Recommended)
	assert.False(t, suggestions[2].Recommended)
}

func TestSuggestNumericNumericSortedX(t *testing.T) {
	sessions, sessionID := newTestSession(t,
		[]string{"step", "value"},
		[][]string{{"1", "9"}, {"2", "4"}, {"3", "7"}},
	)

	suggestions := suggest(t, sessions, sessionID, "step", "value")
	assert.Equal(t, "scatter", suggestions[0].ChartType)
	assert.False(t, suggestions[0].Recommended)
	assert.Equal(t, "line", suggestions[1].ChartType)
	assert.True(t, suggestions[1].Recommended)
}

func TestSuggestSingleNumeric(t *testing.T) {
	sessions, sessionID := irisSession(t)

	suggestions := suggest(t, sessions, sessionID, "sepal_length", "")
	assert.Equal(t, "histogram", suggestions[0].ChartType)
	assert.True(t, suggestions[0].Recommended)
}

func TestSuggestCategoricalPair(t *testing.T) {
	sessions, sessionID := newTestSession(t,
		[]string{"a", "b"},
		[][]string{{"x", "p"}, {"y", "q"}, {"x", "q"}},
	)

	suggestions := suggest(t, sessions, sessionID, "a", "b")
	assert.Len(t, suggestions, 1)
	assert.Equal(t, "heatmap", suggestions[0].ChartType)
}

func TestSuggestCapAtThree(t *testing.T) {
	sessions, sessionID := irisSession(t)

	for _, pair := range [][2]string{
		{"", ""},
		{"species", "sepal_length"},
		{"sepal_width", "sepal_length"},
		{"date", "sepal_length"},
	} {
		suggestions := suggest(t, sessions, sessionID, pair[0], pair[1])
		assert.LessOrEqual(t, len(suggestions), 3)
	}
}

func TestSuggestUnknownColumnEmpty(t *testing.T) {
	sessions, sessionID := irisSession(t)

	suggestions := suggest(t, sessions, sessionID, "petal_length", "")
	assert.Empty(t, suggestions)
}

func TestSuggestUnknownSession(t *testing.T) {
	sessions, _ := irisSession(t)
	svc := NewSuggestionService(sessions)

	_, err := svc.Suggest(context.Background(), &dto.SuggestChartsRequest{SessionID: "missing"})
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}
