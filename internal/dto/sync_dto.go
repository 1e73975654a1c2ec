package dto

// SyncSummaryResponse reports the outcome of one full sync pass.
type SyncSummaryResponse struct {
	TotalFetched      int      `json:"total_fetched"`
	StudentsProcessed int      `json:"students_processed"`
	Errors            []string `json:"errors"`
	Message           string   `json:"message"`
}
