package handler

import (
	"errors"

	"wallet-settlement/internal/adapter/http/middleware"
	"wallet-settlement/pkg/apperror"
	"wallet-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// bindError maps a binding failure to the error the service layer would
// have returned for the same input.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Tag() {
		case "tx_hash":
			return apperror.ErrInvalidHash()
		case "pay_method":
			return apperror.ErrInvalidPayMethod()
		}
		return apperror.ErrInvalidRequest(verrs[0].Field() + " is " + verrs[0].Tag())
	}
	return apperror.ErrInvalidRequest("malformed request")
}

// currentUser returns the authenticated user or writes AUTH_003.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	return id, true
}
