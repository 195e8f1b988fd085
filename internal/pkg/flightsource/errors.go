package flightsource

import (
	"net/http"

	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/exception"
)

var ErrUnsupportedFormat = exception.ApplicationError{
	StatusCode: http.StatusUnsupportedMediaType,
	Message:    "unsupported file format",
}

var ErrInvalidShape = exception.ApplicationError{
	StatusCode: http.StatusUnprocessableEntity,
	Message:    `invalid file: "chegadas" property not found or data is not an array`,
}

var ErrMalformedContent = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    "malformed file content",
}

var ErrUnreadableFile = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    "file could not be read",
}
