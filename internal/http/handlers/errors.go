package handlers

import (
	"net/http"

	"voxia/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err), domain.IsInvalidID(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsAuth(err):
		RespondError(c, http.StatusUnauthorized, err.Error(), nil)
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error(), nil)
	case domain.IsRender(err):
		RespondError(c, http.StatusInternalServerError, "an error occurred while generating the PDF", err)
	case domain.IsMailTransport(err):
		RespondError(c, http.StatusInternalServerError, "failed to send email", err)
	case domain.IsStorage(err):
		RespondError(c, http.StatusInternalServerError, "storage failure", err)
	default:
		RespondError(c, http.StatusInternalServerError, "something went wrong", err)
	}
}
