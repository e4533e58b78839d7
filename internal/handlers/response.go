// internal/handlers/response.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/services"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/utils"
)

var showErrorDetails bool

// ShowErrorDetails controls whether 5xx responses carry the underlying
// error text. Enabled outside production only.
func ShowErrorDetails(show bool) {
	showErrorDetails = show
}

// respondError maps a typed service outcome to its HTTP status. Raw
// backend error text never reaches the client in production mode.
func respondError(c *gin.Context, err error) {
	var svcErr *services.Error
	if !errors.As(err, &svcErr) {
		logrus.WithError(err).Error("Unexpected error")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch svcErr.Kind {
	case services.KindValidation, services.KindConflict:
		utils.ErrorResponse(c, http.StatusBadRequest, svcErr.Message)
	case services.KindNotFound:
		utils.ErrorResponse(c, http.StatusNotFound, svcErr.Message)
	case services.KindUnauthorized:
		utils.ErrorResponse(c, http.StatusUnauthorized, svcErr.Message)
	case services.KindForbidden:
		utils.ErrorResponse(c, http.StatusForbidden, svcErr.Message)
	case services.KindConfiguration:
		logrus.Error(svcErr.Message)
		utils.ErrorResponse(c, http.StatusInternalServerError, svcErr.Message)
	default:
		logrus.WithError(svcErr.Err).Error(svcErr.Message)
		if showErrorDetails && svcErr.Err != nil {
			utils.ErrorResponseWithDetail(c, http.StatusInternalServerError, svcErr.Message, svcErr.Err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, svcErr.Message)
		}
	}
}

// parseIDParam reads a uuid path parameter, answering 400 on garbage.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid identifier")
		return uuid.Nil, false
	}
	return id, true
}

func bindError(c *gin.Context, err error) {
	utils.ErrorResponse(c, http.StatusBadRequest, "Invalid payload: "+err.Error())
}
