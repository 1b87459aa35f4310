package service

import (
	"context"

	"chartly-be/internal/dataset"
	"chartly-be/internal/dto"
)

const maxSuggestions = 3

type ISuggestionService interface {
	Suggest(ctx context.Context, req *dto.SuggestChartsRequest) (*dto.SuggestionsResponse, error)
}

type suggestionService struct {
	sessions ISessionService
}

func NewSuggestionService(sessions ISessionService) ISuggestionService {
	return &suggestionService{sessions: sessions}
}

// Suggest ranks chart-type candidates for the (x, y) column pair, auto-
// selecting a pair when neither is given. The list is capped at 3 and
// ordered by rule relevance.
func (s *suggestionService) Suggest(ctx context.Context, req *dto.SuggestChartsRequest) (*dto.SuggestionsResponse, error) {
	frame, err := s.sessions.GetFrame(req.SessionID)
	if err != nil {
		return nil, err
	}

	x, y := req.X, req.Y
	if x == "" && y == "" {
		x, y = autoSelect(frame)
	}
	if x == "" {
		return &dto.SuggestionsResponse{Suggestions: []dto.Suggestion{}}, nil
	}

	suggestions := rankSuggestions(frame, x, y)
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return &dto.SuggestionsResponse{Suggestions: suggestions}, nil
}

// autoSelect encodes the default-pair prior: temporal trends first, then
// categorical comparisons, then numeric correlation, then single columns.
func autoSelect(frame *dataset.Frame) (x, y string) {
	var nums, cats, dates []string
	for _, info := range dataset.Columns(frame) {
		switch info.DType {
		case dataset.DTypeNumeric:
			nums = append(nums, info.Name)
		case dataset.DTypeCategorical:
			cats = append(cats, info.Name)
		case dataset.DTypeDatetime:
			dates = append(dates, info.Name)
		}
	}

	switch {
	case len(dates) > 0 && len(nums) > 0:
		return dates[0], nums[0]
	case len(cats) > 0 && len(nums) > 0:
		return cats[0], nums[0]
	case len(nums) >= 2:
		return nums[0], nums[1]
	case len(nums) == 1:
		return nums[0], ""
	case len(cats) > 0:
		return cats[0], ""
	}
	return "", ""
}

func rankSuggestions(frame *dataset.Frame, x, y string) []dto.Suggestion {
	xVals, ok := frame.Column(x)
	if !ok {
		return []dto.Suggestion{}
	}
	xType := dataset.Classify(xVals)

	if y == "" {
		switch xType {
		case dataset.DTypeNumeric:
			return []dto.Suggestion{
				{ChartType: "histogram", Reason: "Distribution of a single numeric variable.", Recommended: true},
				{ChartType: "box", Reason: "Numeric five-number summary.", Recommended: false},
			}
		case dataset.DTypeCategorical:
			return []dto.Suggestion{
				{ChartType: "bar", Reason: "Category counts.", Recommended: true},
				{ChartType: "pie", Reason: "Proportional share.", Recommended: false},
			}
		}
		return []dto.Suggestion{}
	}

	yVals, ok := frame.Column(y)
	if !ok {
		return []dto.Suggestion{}
	}
	yType := dataset.Classify(yVals)

	switch {
	case xType == dataset.DTypeNumeric && yType == dataset.DTypeNumeric:
		// The one data-dependent rule: a naturally ordered x axis implies a
		// trend rather than a point cloud.
		sorted := dataset.IsMonotonicIncreasing(xVals)
		return []dto.Suggestion{
			{ChartType: "scatter", Reason: "Correlation analysis.", Recommended: !sorted},
			{ChartType: "line", Reason: "Trend tracking.", Recommended: sorted},
			{ChartType: "heatmap", Reason: "Point density.", Recommended: false},
		}

	case (xType == dataset.DTypeCategorical && yType == dataset.DTypeNumeric) ||
		(xType == dataset.DTypeNumeric && yType == dataset.DTypeCategorical):
		return []dto.Suggestion{
			{ChartType: "bar", Reason: "Categorical comparison.", Recommended: true},
			{ChartType: "box", Reason: "Within-category distribution.", Recommended: false},
		}

	case (xType == dataset.DTypeDatetime && yType == dataset.DTypeNumeric) ||
		(xType == dataset.DTypeNumeric && yType == dataset.DTypeDatetime):
		return []dto.Suggestion{
			{ChartType: "line", Reason: "Time series.", Recommended: true},
			{ChartType: "scatter", Reason: "Raw data points.", Recommended: false},
		}

	case xType == dataset.DTypeCategorical && yType == dataset.DTypeCategorical:
		return []dto.Suggestion{
			{ChartType: "heatmap", Reason: "Category intersection.", Recommended: true},
		}
	}

	return []dto.Suggestion{}
}
