package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/fc-labs/store-management-service/internal/app/product/domain"
)

// jsonError is the JSON error payload.
type jsonError struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error payload with the given status code.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, jsonError{Error: message})
}

// writeDomainError translates a domain error kind to its HTTP status and
// message. The mapping is fixed; note that a zero price maps to 404, a
// long-standing quirk of this API that is preserved on purpose.
func writeDomainError(w http.ResponseWriter, logger *logrus.Logger, err error) {
	var (
		notFound  *domain.NotFoundError
		conflict  *domain.NameConflictError
		zeroPrice *domain.ZeroPriceError
	)

	switch {
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, notFound.Error())

	case errors.As(err, &zeroPrice):
		writeError(w, http.StatusNotFound, zeroPrice.Error())

	case errors.As(err, &conflict):
		writeError(w, http.StatusBadRequest, conflict.Error())

	case errors.Is(err, domain.ErrNameMissing):
		writeError(w, http.StatusBadRequest, domain.ErrNameMissing.Error())

	case errors.Is(err, domain.ErrPriceMissing):
		writeError(w, http.StatusBadRequest, domain.ErrPriceMissing.Error())

	default:
		logger.WithError(err).Error("unhandled error")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
