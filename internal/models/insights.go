package models

// InsightsRequest carries caller-supplied clinic stats to summarize
type InsightsRequest struct {
	Stats map[string]interface{} `json:"stats" binding:"required"`
}

// InsightsResponse carries the AI analytics summary
type InsightsResponse struct {
	Summary string `json:"summary" example:"Your clinic is performing well!"`
}
