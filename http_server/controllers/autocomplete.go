package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/codesync/autocomplete-server/models"
	"github.com/codesync/autocomplete-server/service"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/thedevsaddam/govalidator"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

type AutocompleteSerializer struct {
	Code       string          `json:"code"`
	CursorLine govalidator.Int `json:"cursor_line"`
	Language   string          `json:"language"`
}

func Autocomplete(s *service.Service) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		// 1.0 parse and validate request body
		serializer, err := decodeAutocomplete(r)
		if err != nil {
			ReturnHttpErrorResponse(rw, r, service.Malformed(err))
			return
		}

		req := models.AutocompleteRequest{
			Code:       serializer.Code,
			CursorLine: int(serializer.CursorLine.Value),
			Language:   serializer.Language,
		}
		zerolog.Ctx(r.Context()).Debug().
			Str("language", req.Language).
			Int("cursor_line", req.CursorLine).
			Str("code_size", humanize.Bytes(uint64(len(req.Code)))).
			Msg("autocomplete request")

		// 2.0 one upstream call
		suggested, err := s.Autocomplete(r.Context(), req)
		if err != nil {
			ReturnHttpErrorResponse(rw, r, err)
			return
		}

		ReturnJson(rw, http.StatusOK, models.AutocompleteResponse{SuggestedCode: suggested})
	}
}

// decodeAutocomplete reads the whole body, rejects anything after the first
// JSON value, and checks field presence. code and language may be empty
// strings; only absence or null counts as missing.
func decodeAutocomplete(r *http.Request) (AutocompleteSerializer, error) {
	var serializer AutocompleteSerializer

	raw, err := io.ReadAll(r.Body)
	r.Body.Close()
	if err != nil {
		return serializer, fmt.Errorf("invalid request body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return serializer, errors.New("request body is empty")
	}

	// 1.1 syntax, trailing data and presence of the string fields
	var fields map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&fields); err != nil {
		return serializer, fmt.Errorf("invalid request body: %v", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return serializer, errors.New("invalid request body: unexpected data after JSON object")
	}
	missing := url.Values{}
	for _, name := range []string{"code", "language"} {
		if v, ok := fields[name]; !ok || string(v) == "null" {
			missing.Add(name, fmt.Sprintf("The %s field is required", name))
		}
	}

	// 1.2 types, and cursor_line presence via govalidator.Int
	r.Body = io.NopCloser(bytes.NewReader(raw))
	opts := govalidator.Options{
		Request: r,
		Data:    &serializer,
		Rules: govalidator.MapData{
			"cursor_line": []string{"required"},
		},
	}
	e := govalidator.New(opts).ValidateJSON()
	if e == nil {
		e = url.Values{}
	}
	if _, decodeFailed := e["_error"]; !decodeFailed {
		for field, msgs := range missing {
			e[field] = append(e[field], msgs...)
		}
	}
	if len(e) != 0 {
		return serializer, validationError(e)
	}
	return serializer, nil
}

// validationError flattens a govalidator bag into one stable message. A body
// that could not be decoded at all is reported under the "_error" key.
func validationError(e url.Values) error {
	if msgs, ok := e["_error"]; ok && len(msgs) > 0 {
		if msgs[0] == "EOF" {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid request body: %s", msgs[0])
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], ", ")))
	}
	return errors.New(strings.Join(parts, "; "))
}
