package dto

// ChartAnalysisResult is the single return shape for image analysis, success
// or failure. Callers branch on ErrorCode being present, never on HTTP
// status.
type ChartAnalysisResult struct {
	DetectedChartType   *string `json:"detected_chart_type"`
	RawLabel            string  `json:"raw_label,omitempty"`
	Confidence          float64 `json:"confidence"`
	Explanation         string  `json:"explanation"`
	IsCompatible        bool    `json:"is_compatible"`
	CompatibilityReason string  `json:"compatibility_reason"`
	ErrorCode           *string `json:"error_code"`
}
