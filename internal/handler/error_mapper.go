package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hostel-admin-svc/internal/service"
	"hostel-admin-svc/pkg/utils"
)

// RespondError translates a service error into the matching HTTP response.
// This centralizes the error taxonomy so every handler maps conflicts,
// missing records, and validation failures consistently.
func RespondError(c *gin.Context, message string, err error) {
	switch {
	// Conflict errors -> 409
	case errors.Is(err, service.ErrRoomUnavailable),
		errors.Is(err, service.ErrAlreadyAssigned),
		errors.Is(err, service.ErrNotAssigned),
		errors.Is(err, service.ErrRoomNotEmpty),
		errors.Is(err, service.ErrCapacityBelowOccupancy),
		errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrRoomNumberExists):
		utils.ConflictResponse(c, message, err)

	// Not found errors -> 404
	case errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrBookNotFound),
		errors.Is(err, service.ErrPlacementNotFound):
		utils.NotFoundResponse(c, err.Error())

	// Validation errors -> 400
	case errors.Is(err, service.ErrInvalidCapacity),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrNotAStudent):
		utils.BadRequestResponse(c, message, err)

	// Auth errors -> 401
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.UnauthorizedResponse(c, err.Error())

	default:
		utils.InternalServerErrorResponse(c, message, err)
	}
}
