package models

// AutocompleteRequest is the decoded body of POST /autocomplete.
type AutocompleteRequest struct {
	Code       string
	CursorLine int
	Language   string
}

type AutocompleteResponse struct {
	SuggestedCode string `json:"suggested_code"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}
