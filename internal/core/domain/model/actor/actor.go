// Package actor provides the identity value object supplied by the calling
// layer on every mutating operation. Authentication mechanics (tokens,
// sessions) are entirely the caller's concern; the domain only sees a
// validated role and username.
package actor

import (
	"errors"

	"logistics/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not
// created through the NewActor factory method.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor identifies who is performing an operation: a validated role and a
// username for the event trail. Actor is immutable.
type Actor struct {
	role     Role
	username string

	isConstructed bool
}

// NewActor creates a validated actor identity.
// The role must be one of the closed role set and the username must be
// non-empty (it becomes the operator recorded on tracking events).
func NewActor(role Role, username string) (Actor, error) {
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if username == "" {
		return Actor{}, errs.NewValueIsRequiredError("username")
	}

	return Actor{
		role:          role,
		username:      username,
		isConstructed: true,
	}, nil
}

// Validate ensures the Actor instance was properly constructed.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// Username returns the actor's username.
func (a Actor) Username() string {
	return a.username
}
