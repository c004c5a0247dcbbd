package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/guard"
)

var ErrGetParcelsQueryIsNotConstructed = errors.New(
	"GetParcelsQuery must be created via NewGetParcelsQuery constructor",
)

// GetParcelsQuery retrieves parcels visible to the requesting actor.
// Customers see only their own shipments; every other role sees all.
//
// Example:
//
//	a, _ := actor.NewActor(actor.Customer, "jane")
//	query, _ := NewGetParcelsQuery(a)
//	handler := NewGetParcelsQueryHandler(db)
//
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list parcels: %w", err)
//	}
type GetParcelsQuery struct {
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewGetParcelsQuery creates a query listing parcels on behalf of an actor.
func NewGetParcelsQuery(a actor.Actor) (GetParcelsQuery, error) {
	if err := a.Validate(); err != nil {
		return GetParcelsQuery{}, err
	}

	return GetParcelsQuery{
		actor: a,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsQueryIsNotConstructed)
}

// Actor returns the identity requesting the listing.
func (q GetParcelsQuery) Actor() actor.Actor {
	return q.actor
}

// GetParcelsQueryResponse represents one parcel in a listing.
type GetParcelsQueryResponse struct {
	TrackingNumber   kernel.TrackingNumber
	SenderID         string
	RecipientName    string
	RecipientAddress string
	ServiceTier      parcel.Tier
	Status           parcel.Status
	CreatedAt        time.Time
}
