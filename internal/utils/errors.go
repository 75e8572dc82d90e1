package utils

import "errors"

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrEmailExists     = errors.New("email_exists")
	ErrInvalidRole     = errors.New("invalid_role")
	ErrUnknownCategory = errors.New("unknown_category")
	ErrCardInUse       = errors.New("card_in_use")
	ErrCardNotOwned    = errors.New("card_not_owned")
	ErrNotFound        = errors.New("not_found")
)
