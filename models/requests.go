package models

type AcknowledgeAlertRequest struct {
	AcknowledgedBy string `json:"acknowledged_by"`
	Notes          string `json:"notes"`
}

type ResolveAlertRequest struct {
	ResolvedBy       string `json:"resolved_by"`
	ResolutionAction string `json:"resolution_action"`
	ResolutionNotes  string `json:"resolution_notes"`
}

type CloseAlertRequest struct {
	ClosedBy string `json:"closed_by"`
}
