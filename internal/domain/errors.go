package domain

import "errors"

// Sentinel errors shared across services. Handlers map these onto HTTP
// statuses: not-found -> 404, forbidden -> 403, conflict/invalid state -> 409,
// validation -> 400.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrProfileExists      = errors.New("profile already exists for this user")
	ErrProfileNotPending  = errors.New("profile is not pending review")
	ErrProposalNotFound   = errors.New("proposal not found")
	ErrDuplicateProposal  = errors.New("an outstanding proposal already exists between these users")
	ErrProposalNotPending = errors.New("proposal is not pending")
	ErrNotReceiver        = errors.New("only the receiver may respond to a proposal")
	ErrNotSender          = errors.New("only the sender may withdraw a proposal")
	ErrSelfProposal       = errors.New("cannot send a proposal to yourself")
	ErrNotAdmin           = errors.New("admin role required")
	ErrPhotoNotFound      = errors.New("photo not found")
	ErrNotPhotoOwner      = errors.New("photo belongs to another profile")
	ErrSelfMessage        = errors.New("cannot send a message to yourself")
	ErrNotMatched         = errors.New("messaging requires an accepted proposal between the users")

	ErrNotificationNotFound = errors.New("notification not found")
)
