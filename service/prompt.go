package service

import (
	"fmt"
	"github.com/codesync/autocomplete-server/models"
)

const promptTemplate = `You are a careful code assistant. You are given a piece of code and the line the cursor is on.
Reply with only the single next line of code that logically follows.
Do not add explanations, comments, markdown, or any other text.
Language of the code:
%s

Code:
%s

Cursor is at line %d. Predict the next line of code:
`

// BuildPrompt substitutes the request fields into the fixed instruction
// template. cursor_line is passed through as-is.
func BuildPrompt(req models.AutocompleteRequest) string {
	return fmt.Sprintf(promptTemplate, req.Language, req.Code, req.CursorLine)
}
