package service

import (
	"net/http"

	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/exception"
)

var ErrStoreFailure = exception.ApplicationError{
	Message:    "record store failure",
	StatusCode: http.StatusInternalServerError,
}

var ErrExportFailed = exception.ApplicationError{
	Message:    "export failed",
	StatusCode: http.StatusInternalServerError,
}
