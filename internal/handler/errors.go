package handler

import (
	"errors"
	"log"
	"net/http"

	"clinic-appointments-api/internal/repository"
	"clinic-appointments-api/internal/service"
	"clinic-appointments-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses. Rule rejections
// and field errors carry their reason to the client; anything else is
// reported generically and logged with its cause.
func respondError(c *gin.Context, err error, failureMessage string) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.ErrorResponse(c, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, repository.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "not found")
	default:
		log.Printf("%s: %v", failureMessage, err)
		utils.ErrorResponse(c, http.StatusInternalServerError, failureMessage)
	}
}
