package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrSenderIDIsRequired         = errors.New("sender id is required")
	ErrRecipientNameIsRequired    = errors.New("recipient name is required")
	ErrRecipientAddressIsRequired = errors.New("recipient address is required")
	ErrCreatedAtIsRequired        = errors.New("created at is required")
)

// CreateParcelCommand represents a request to register a new parcel.
// The caller supplies the tracking number so that it can retry with a fresh
// one when the generated number collides with an existing parcel, and the
// creation timestamp so that responses can echo the persisted value.
//
// Example:
//
//	tn := kernel.NewTrackingNumber(time.Now())
//	cmd, err := NewCreateParcelCommand(tn, "cust-1", "Jane Doe", "1 Main St", parcel.Express, time.Now().UTC())
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create parcel: %w", err)
//	}
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	trackingNumber   kernel.TrackingNumber
	senderID         string
	recipientName    string
	recipientAddress string
	serviceTier      parcel.Tier
	createdAt        time.Time

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates the tracking number and service tier and requires sender and
// recipient details to be non-empty and the creation timestamp to be set.
func NewCreateParcelCommand(
	trackingNumber kernel.TrackingNumber,
	senderID string,
	recipientName string,
	recipientAddress string,
	serviceTier parcel.Tier,
	createdAt time.Time,
) (CreateParcelCommand, error) {
	parcelCommand := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcelCommand.setTrackingNumber(trackingNumber),
		parcelCommand.setSenderID(senderID),
		parcelCommand.setRecipient(recipientName, recipientAddress),
		parcelCommand.setServiceTier(serviceTier),
		parcelCommand.setCreatedAt(createdAt),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return parcelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// TrackingNumber returns the tracking number for the new parcel.
func (c CreateParcelCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

// SenderID returns the identifier of the sending customer.
func (c CreateParcelCommand) SenderID() string {
	return c.senderID
}

// RecipientName returns the recipient's name.
func (c CreateParcelCommand) RecipientName() string {
	return c.recipientName
}

// RecipientAddress returns the recipient's delivery address.
func (c CreateParcelCommand) RecipientAddress() string {
	return c.recipientAddress
}

// ServiceTier returns the requested service tier.
func (c CreateParcelCommand) ServiceTier() parcel.Tier {
	return c.serviceTier
}

// CreatedAt returns the creation timestamp to persist with the parcel.
func (c CreateParcelCommand) CreatedAt() time.Time {
	return c.createdAt
}

func (c *CreateParcelCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *CreateParcelCommand) setSenderID(senderID string) error {
	if senderID == "" {
		return ErrSenderIDIsRequired
	}

	c.senderID = senderID
	return nil
}

func (c *CreateParcelCommand) setRecipient(name, address string) error {
	if name == "" {
		return ErrRecipientNameIsRequired
	}
	if address == "" {
		return ErrRecipientAddressIsRequired
	}

	c.recipientName = name
	c.recipientAddress = address
	return nil
}

func (c *CreateParcelCommand) setServiceTier(serviceTier parcel.Tier) error {
	if err := serviceTier.Validate(); err != nil {
		return err
	}

	c.serviceTier = serviceTier
	return nil
}

func (c *CreateParcelCommand) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}

	c.createdAt = createdAt
	return nil
}
