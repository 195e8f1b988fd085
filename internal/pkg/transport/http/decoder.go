package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/exception"
)

// MaxUploadSize bounds the size of an uploaded import file.
const MaxUploadSize = 32 << 20

var ErrMissingFile = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    `multipart field "file" is required`,
}

var ErrInvalidOverrides = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    `field "overrides" must be a JSON object of flight number to HH:MM`,
}

var ErrFileTooLarge = exception.ApplicationError{
	StatusCode: http.StatusRequestEntityTooLarge,
	Message:    "import file too large",
}

// DecodeImportRequest reads a multipart upload: the file under "file" and an
// optional JSON object under "overrides".
func DecodeImportRequest(_ context.Context, r *http.Request) (interface{}, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, MaxUploadSize+1<<20)

	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrFileTooLarge
		}
		return nil, ErrMissingFile.WithCause(err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, ErrMissingFile.WithCause(err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(content) > MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	req := &dto.ImportRequest{
		FileName: header.Filename,
		Content:  content,
	}

	if raw := strings.TrimSpace(r.FormValue("overrides")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Overrides); err != nil {
			return nil, ErrInvalidOverrides.WithCause(err)
		}
	}

	if err := req.Bind(r); err != nil {
		return nil, err
	}

	return req, nil
}

func DecodeExportRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return &dto.ExportRequest{
		Format: dto.ParseExportFormat(r.URL.Query().Get("format")),
	}, nil
}

// DecodeListRecordsRequest reads the {kind} path segment ("arrivals" or
// "departures") and the optional filter query.
func DecodeListRecordsRequest(_ context.Context, r *http.Request) (interface{}, error) {
	req := &dto.ListRecordsRequest{}

	switch kind := chi.URLParam(r, "kind"); kind {
	case "arrivals":
		req.Kind = dto.KindArrival
	case "departures":
		req.Kind = dto.KindDeparture
	default:
		req.Kind = dto.RecordKind(kind)
	}

	query := r.URL.Query()
	filter := dto.FilterOption{
		Companhia: queryValue(query, "companhia"),
		TimeStart: queryValue(query, "time_start"),
		TimeEnd:   queryValue(query, "time_end"),
	}
	if filter.Companhia != nil || filter.TimeStart != nil || filter.TimeEnd != nil {
		req.FilterOption = &filter
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("error validate request: %w", err)
	}

	return req, nil
}

func queryValue(query map[string][]string, key string) *string {
	values, ok := query[key]
	if !ok || len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return nil
	}

	value := strings.TrimSpace(values[0])

	return &value
}
