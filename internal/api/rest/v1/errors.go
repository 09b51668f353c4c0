package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/MGTheTrain/crypto-workbench/internal/app"
	"github.com/MGTheTrain/crypto-workbench/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-workbench/internal/domain/workbench"

	"github.com/gin-gonic/gin"
)

// statusForError maps workbench failures onto HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, cryptoalg.ErrAuthentication),
		errors.Is(err, cryptoalg.ErrDecryption):
		return http.StatusUnprocessableEntity
	case errors.Is(err, cryptoalg.ErrKeyImport),
		errors.Is(err, cryptoalg.ErrMalformedInput),
		errors.Is(err, cryptoalg.ErrPlaintextTooLarge),
		errors.Is(err, cryptoalg.ErrUnsupportedKeySize),
		errors.Is(err, cryptoalg.ErrInvalidPolicy),
		errors.Is(err, cryptoalg.ErrUnsupportedAlgorithm):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(ctx *gin.Context, op workbench.Operation, err error) {
	ctx.AbortWithStatusJSON(statusForError(err), ErrorResponse{Message: app.Describe(op, err)})
}

func abortWithBadRequest(ctx *gin.Context, format string, err error) {
	var errorResponse ErrorResponse
	errorResponse.Message = format + err.Error()
	ctx.AbortWithStatusJSON(http.StatusBadRequest, errorResponse)
}
