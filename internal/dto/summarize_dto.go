package dto

type SummarizeRequest struct {
	Content string `json:"content"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}
