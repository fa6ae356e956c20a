package dto

// SendEmailRequest payload for the mail relay endpoint.
type SendEmailRequest struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendEmailResponse carries the provider message id.
type SendEmailResponse struct {
	MessageID string `json:"messageId"`
}

// AutomationAssetResponse carries the discovered changelog asset link.
type AutomationAssetResponse struct {
	WorkflowID string `json:"workflow_id"`
	AssetURL   string `json:"asset_url"`
}
