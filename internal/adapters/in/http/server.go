package http

import (
	"errors"
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/ports"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Actor identity headers. Authentication happens upstream; these headers
// carry the already-authenticated identity into the service.
const (
	headerActorRole = "X-Actor-Role"
	headerActorName = "X-Actor-Name"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler       commands.CreateParcelCommandHandler
	updateAttributesHandler   commands.UpdateParcelAttributesCommandHandler
	addSpecialMarkerHandler   commands.AddSpecialMarkerCommandHandler
	changeParcelStatusHandler commands.ChangeParcelStatusCommandHandler
	deleteParcelHandler       commands.DeleteParcelCommandHandler

	// Query handlers
	getParcelsHandler         queries.GetParcelsQueryHandler
	getCurrentStatusHandler   queries.GetCurrentStatusQueryHandler
	getTrackingHistoryHandler queries.GetTrackingHistoryQueryHandler
	calculateCostHandler      queries.CalculateCostQueryHandler
	getMonthlyReportHandler   queries.GetMonthlyReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	updateAttributesHandler commands.UpdateParcelAttributesCommandHandler,
	addSpecialMarkerHandler commands.AddSpecialMarkerCommandHandler,
	changeParcelStatusHandler commands.ChangeParcelStatusCommandHandler,
	deleteParcelHandler commands.DeleteParcelCommandHandler,
	getParcelsHandler queries.GetParcelsQueryHandler,
	getCurrentStatusHandler queries.GetCurrentStatusQueryHandler,
	getTrackingHistoryHandler queries.GetTrackingHistoryQueryHandler,
	calculateCostHandler queries.CalculateCostQueryHandler,
	getMonthlyReportHandler queries.GetMonthlyReportQueryHandler,
) *Server {
	return &Server{
		createParcelHandler:       createParcelHandler,
		updateAttributesHandler:   updateAttributesHandler,
		addSpecialMarkerHandler:   addSpecialMarkerHandler,
		changeParcelStatusHandler: changeParcelStatusHandler,
		deleteParcelHandler:       deleteParcelHandler,
		getParcelsHandler:         getParcelsHandler,
		getCurrentStatusHandler:   getCurrentStatusHandler,
		getTrackingHistoryHandler: getTrackingHistoryHandler,
		calculateCostHandler:      calculateCostHandler,
		getMonthlyReportHandler:   getMonthlyReportHandler,
	}
}

// CreateParcel handles POST /api/v1/parcels - registers a new parcel.
// The tracking number is generated server side. A collision with an existing
// number is retried once with a fresh number before giving up.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var newParcel servers.NewParcel
	if err := ctx.Bind(&newParcel); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tier, err := parcel.TierFromString(string(newParcel.ServiceTier))
	if err != nil {
		return badRequest(ctx, "Invalid service tier: "+string(newParcel.ServiceTier))
	}

	createdAt := time.Now().UTC()

	for attempt := 0; ; attempt++ {
		trackingNumber := kernel.NewTrackingNumber(time.Now())

		cmd, cmdErr := commands.NewCreateParcelCommand(
			trackingNumber,
			newParcel.SenderId,
			newParcel.RecipientName,
			newParcel.RecipientAddress,
			tier,
			createdAt,
		)
		if cmdErr != nil {
			return badRequest(ctx, "Invalid parcel data: "+cmdErr.Error())
		}

		handleErr := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
		if handleErr == nil {
			return ctx.JSON(http.StatusCreated, servers.Parcel{
				TrackingNumber:   trackingNumber.String(),
				SenderId:         newParcel.SenderId,
				RecipientName:    newParcel.RecipientName,
				RecipientAddress: newParcel.RecipientAddress,
				ServiceTier:      tier.String(),
				Status:           parcel.Created.String(),
				CreatedAt:        createdAt,
			})
		}
		if attempt == 0 && errors.Is(handleErr, ports.ErrTrackingNumberTaken) {
			// Tracking number collision, try again with a fresh one.
			continue
		}
		return errorResponse(ctx, handleErr)
	}
}

// GetParcels handles GET /api/v1/parcels - lists parcels visible to the actor.
func (s *Server) GetParcels(ctx echo.Context) error {
	requester, err := actorFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid actor headers: "+err.Error())
	}

	query, err := queries.NewGetParcelsQuery(requester)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	parcels, err := s.getParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Parcel, len(parcels))
	for i, p := range parcels {
		response[i] = servers.Parcel{
			TrackingNumber:   p.TrackingNumber.String(),
			SenderId:         p.SenderID,
			RecipientName:    p.RecipientName,
			RecipientAddress: p.RecipientAddress,
			ServiceTier:      p.ServiceTier.String(),
			Status:           p.Status.String(),
			CreatedAt:        p.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteParcel handles DELETE /api/v1/parcels/{trackingNumber}.
func (s *Server) DeleteParcel(ctx echo.Context, trackingNumber string) error {
	requester, err := actorFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid actor headers: "+err.Error())
	}

	tn, err := kernel.TrackingNumberFromString(trackingNumber)
	if err != nil {
		return badRequest(ctx, "Invalid tracking number: "+trackingNumber)
	}

	cmd, err := commands.NewDeleteParcelCommand(tn, requester)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.deleteParcelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateParcelAttributes handles PUT /api/v1/parcels/{trackingNumber}/attributes.
func (s *Server) UpdateParcelAttributes(ctx echo.Context, trackingNumber string) error {
	var attributes servers.ParcelAttributes
	if err := ctx.Bind(&attributes); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tn, err := kernel.TrackingNumberFromString(trackingNumber)
	if err != nil {
		return badRequest(ctx, "Invalid tracking number: "+trackingNumber)
	}

	cmd, err := commands.NewUpdateParcelAttributesCommand(
		tn,
		attributes.WeightKg,
		attributes.LengthCm,
		attributes.WidthCm,
		attributes.HeightCm,
		attributes.DeclaredValue,
		attributes.DistanceKm,
		attributes.ContentDescription,
	)
	if err != nil {
		return badRequest(ctx, "Invalid attributes: "+err.Error())
	}

	if handleErr := s.updateAttributesHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddSpecialMarker handles POST /api/v1/parcels/{trackingNumber}/markers.
func (s *Server) AddSpecialMarker(ctx echo.Context, trackingNumber string) error {
	var newMarker servers.NewMarker
	if err := ctx.Bind(&newMarker); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tn, err := kernel.TrackingNumberFromString(trackingNumber)
	if err != nil {
		return badRequest(ctx, "Invalid tracking number: "+trackingNumber)
	}

	marker, err := parcel.MarkerFromString(string(newMarker.Marker))
	if err != nil {
		return badRequest(ctx, "Invalid marker: "+string(newMarker.Marker))
	}

	cmd, err := commands.NewAddSpecialMarkerCommand(tn, marker)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.addSpecialMarkerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeParcelStatus handles POST /api/v1/parcels/{trackingNumber}/status.
func (s *Server) ChangeParcelStatus(ctx echo.Context, trackingNumber string) error {
	requester, err := actorFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid actor headers: "+err.Error())
	}

	var change servers.StatusChange
	if err = ctx.Bind(&change); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tn, err := kernel.TrackingNumberFromString(trackingNumber)
	if err != nil {
		return badRequest(ctx, "Invalid tracking number: "+trackingNumber)
	}

	newStatus, err := parcel.StatusFromString(change.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+change.Status)
	}

	cmd, err := commands.NewChangeParcelStatusCommand(
		tn,
		requester,
		newStatus,
		deref(change.Location),
		deref(change.VehicleId),
		deref(change.WarehouseId),
		deref(change.Notes),
	)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.changeParcelStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCurrentStatus handles GET /api/v1/parcels/{trackingNumber}/status.
func (s *Server) GetCurrentStatus(ctx echo.Context, trackingNumber string) error {
	tn, err := kernel.TrackingNumberFromString(trackingNumber)
	if err != nil {
		return badRequest(ctx, "Invalid tracking number: "+trackingNumber)
	}

	query, err := queries.NewGetCurrentStatusQuery(tn)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	current, err := s.getCurrentStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.CurrentStatus{
		Status:    current.Status.String(),
		Location:  optional(current.Location),
		Notes:     optional(current.Notes),
		Timestamp: current.Timestamp,
	})
}

// GetTrackingHistory handles GET /api/v1/parcels/{trackingNumber}/history.
func (s *Server) GetTrackingHistory(ctx echo.Context, trackingNumber string) error {
	tn, err := kernel.TrackingNumberFromString(trackingNumber)
	if err != nil {
		return badRequest(ctx, "Invalid tracking number: "+trackingNumber)
	}

	query, err := queries.NewGetTrackingHistoryQuery(tn)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	events, err := s.getTrackingHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.TrackingEventItem, len(events))
	for i, event := range events {
		response[i] = servers.TrackingEventItem{
			Id:          event.ID.Bytes(),
			Status:      event.Status.String(),
			Location:    optional(event.Location),
			VehicleId:   optional(event.VehicleID),
			WarehouseId: optional(event.WarehouseID),
			Operator:    event.Operator,
			Notes:       optional(event.Notes),
			Timestamp:   event.Timestamp,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CalculateCost handles GET /api/v1/parcels/{trackingNumber}/cost.
func (s *Server) CalculateCost(ctx echo.Context, trackingNumber string) error {
	tn, err := kernel.TrackingNumberFromString(trackingNumber)
	if err != nil {
		return badRequest(ctx, "Invalid tracking number: "+trackingNumber)
	}

	query, err := queries.NewCalculateCostQuery(tn)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	breakdown, err := s.calculateCostHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCostBreakdown(breakdown))
}

// GetMonthlyReport handles GET /api/v1/customers/{customerId}/report.
func (s *Server) GetMonthlyReport(
	ctx echo.Context,
	customerId string,
	params servers.GetMonthlyReportParams,
) error {
	requester, err := actorFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid actor headers: "+err.Error())
	}

	query, err := queries.NewGetMonthlyReportQuery(requester, customerId, params.Month)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	report, err := s.getMonthlyReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	parcels := make([]servers.ParcelCost, len(report.Parcels))
	for i, cost := range report.Parcels {
		parcels[i] = servers.ParcelCost{
			TrackingNumber: cost.TrackingNumber,
			Breakdown:      toCostBreakdown(cost.Breakdown),
		}
	}

	return ctx.JSON(http.StatusOK, servers.MonthlyReport{
		CustomerId:  report.CustomerID,
		Month:       report.Month,
		ParcelCount: report.ParcelCount,
		TotalCost:   report.TotalCost,
		Parcels:     parcels,
	})
}
