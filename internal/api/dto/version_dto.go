package dto

import "time"

// VersionRequest payload for create/update.
type VersionRequest struct {
	Versao       string `json:"versao"`
	Descricao    string `json:"descricao"`
	LinkDownload string `json:"link_download"`
}

// VersionResponse is one changelog entry.
type VersionResponse struct {
	ID           string    `json:"id"`
	Versao       string    `json:"versao"`
	Descricao    string    `json:"descricao"`
	LinkDownload string    `json:"link_download"`
	ShareToken   string    `json:"share_token,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NextVersionResponse carries the version-bump suggestion.
type NextVersionResponse struct {
	Suggestion string `json:"suggestion"`
}
