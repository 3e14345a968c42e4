package dto

import (
	"unicode/utf8"

	"github.com/django-nerd/ulin/internal/domain"
	"github.com/django-nerd/ulin/internal/validation"
)

const (
	BackendRunning        = "✅ Running"
	DatabaseConnected     = "✅ Connected"
	DatabaseNotConfigured = "❌ Not Configured"
	DatabaseNotAvailable  = "❌ Not Available"
	databaseErrorPrefix   = "⚠️ Error: "

	ReadyMessage = "Ulin Backend Ready"

	// MaxErrorSummary caps the error text shown by the status endpoint, in characters.
	MaxErrorSummary = 80
)

type MessageResponse struct {
	Message string `json:"message"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type ValidationErrorResponse struct {
	Detail []validation.Violation `json:"detail"`
}

// StatusResponse is rendered as a map: the collections key must be present
// (possibly empty) when connected and absent otherwise.
type StatusResponse map[string]any

func ToStatusResponse(s domain.StorageStatus) StatusResponse {
	resp := StatusResponse{"backend": BackendRunning}

	switch s.State {
	case domain.StorageConnected:
		resp["database"] = DatabaseConnected
		collections := s.Collections
		if collections == nil {
			collections = []string{}
		}
		resp["collections"] = collections
	case domain.StorageNotConfigured:
		resp["database"] = DatabaseNotConfigured
	case domain.StorageFailing:
		resp["database"] = databaseErrorPrefix + Truncate(s.Error, MaxErrorSummary)
	default:
		resp["database"] = DatabaseNotAvailable
	}

	return resp
}

func ToRecordsResponse(records []domain.Record) []domain.Record {
	if records == nil {
		return []domain.Record{}
	}
	return records
}

// Truncate returns at most n characters of s.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
