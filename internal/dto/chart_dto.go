package dto

type SuggestChartsRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	X         string `json:"x"`
	Y         string `json:"y"`
}

type Suggestion struct {
	ChartType   string `json:"chart_type"`
	Reason      string `json:"reason"`
	Recommended bool   `json:"recommended"`
}

type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

type RenderRequest struct {
	SessionID string                 `json:"session_id" validate:"required"`
	ChartType string                 `json:"chart_type" validate:"required"`
	X         string                 `json:"x"`
	Y         string                 `json:"y"`
	Options   map[string]interface{} `json:"options"` // reserved for per-chart options
}

type RenderResponse struct {
	ChartType  string `json:"chart_type"`
	FigureJSON string `json:"figure_json"`
}
