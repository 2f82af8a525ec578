package service

import "github.com/google/uuid"

// guardOwner is the ownership check applied before any place mutation.
// Identities are compared as uuid.UUID values; this is the single canonical
// representation, used identically whether the owner was loaded as a scalar
// column or through the expanded user relation. A denial carries no
// information beyond "not owned".
func guardOwner(ownerID, callerID uuid.UUID) error {
	if ownerID != callerID {
		return ErrPlaceNotOwned
	}
	return nil
}
