package common

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"charity-app-go/internal/domain/common"
	"charity-app-go/internal/domain/existence"
	"charity-app-go/pkg/logger"
)

// WriteSharedError answers the failures every area has in common: a broken
// ownership chain (404), a validation error (400) and anything else (500).
func WriteSharedError(w http.ResponseWriter, log logger.Logger, op string, err error, kv ...any) {
	if WriteClientError(w, log, op, err, kv...) {
		return
	}
	WriteInternalError(w, log, op, "internal error", err, kv...)
}

// WriteClientError handles broken ownership chains and validation errors and
// reports whether it wrote a response.
func WriteClientError(w http.ResponseWriter, log logger.Logger, op string, err error, kv ...any) bool {
	if missing, ok := existence.AsMissing(err); ok {
		log.BusinessError(op+": parent not found", err, kv...)
		writeError(w, http.StatusNotFound, NotFoundCode(missing.Kind), missingMessage(missing))
		return true
	}
	if errors.Is(err, common.ErrInvalidInput) {
		log.BusinessError(op+": invalid input", err, kv...)
		writeError(w, http.StatusBadRequest, "invalid_request", strings.TrimPrefix(err.Error(), common.ErrInvalidInput.Error()+": "))
		return true
	}
	return false
}

func WriteInternalError(w http.ResponseWriter, log logger.Logger, op, message string, err error, kv ...any) {
	log.InternalError(op+": failed", err, kv...)
	writeError(w, http.StatusInternalServerError, "internal_error", message)
}

// NotFoundCode turns FamilyMember into family_member_not_found.
func NotFoundCode(kind existence.Kind) string {
	var b strings.Builder
	for i, r := range string(kind) {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String() + "_not_found"
}

func missingMessage(missing *existence.MissingEntityError) string {
	if missing.ID == 0 {
		return fmt.Sprintf("%s not found", missing.Kind)
	}
	return missing.Error()
}

func WriteInvalidJSON(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body: "+err.Error())
}
