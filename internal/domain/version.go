package domain

import "time"

// Version is one software release entry in the changelog.
type Version struct {
	ID           string
	Versao       string
	Descricao    string
	LinkDownload string
	ShareToken   string
	CreatedAt    time.Time
}
