package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/services/pricing"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorFromRequest builds the acting identity from the request headers.
func actorFromRequest(ctx echo.Context) (actor.Actor, error) {
	role, err := actor.RoleFromString(ctx.Request().Header.Get(headerActorRole))
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(role, ctx.Request().Header.Get(headerActorName))
}

// badRequest writes a 400 response with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps application errors to HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrPermissionDenied):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.Is(err, commands.ErrParcelBusy):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: err.Error(),
	})
}

// toCostBreakdown maps a pricing breakdown to its wire representation.
func toCostBreakdown(b pricing.Breakdown) servers.CostBreakdown {
	return servers.CostBreakdown{
		ActualWeight:     b.ActualWeight,
		VolumetricWeight: b.VolumetricWeight,
		ChargeableWeight: b.ChargeableWeight,
		DistanceKm:       b.DistanceKm,
		WeightCost:       b.WeightCost,
		DistanceCost:     b.DistanceCost,
		Surcharge:        b.Surcharge,
		BaseFee:          b.BaseFee,
		Total:            b.Total,
	}
}

// optional returns a pointer for non-empty strings and nil otherwise,
// so empty fields are omitted from JSON responses.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// deref returns the value of an optional request field.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
