package dto

import "chartly-be/internal/dataset"

type SessionResponse struct {
	SessionID string                   `json:"session_id"`
	Columns   []dataset.ColumnInfo     `json:"columns"`
	Preview   []map[string]interface{} `json:"preview"`
}
