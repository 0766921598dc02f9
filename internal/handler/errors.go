package handler

import (
	"net/http"

	"hospital-bed-management/internal/apperrors"
	"hospital-bed-management/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps the business-error taxonomy onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case apperrors.IsConflict(err):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case apperrors.IsInvalidState(err):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}
