package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the request lacks valid authentication credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the authenticated user may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrInsufficientCredits indicates that the user has no AI credits left to spend.
var ErrInsufficientCredits = errors.New("insufficient credits")

// ErrSignatureInvalid indicates that a webhook payload failed signature verification.
var ErrSignatureInvalid = errors.New("invalid webhook signature")

// ErrUpstreamFailure indicates that an upstream provider (AI or payment) returned an error.
var ErrUpstreamFailure = errors.New("upstream provider failure")

// ErrMissingPrimaryEmail indicates that an identity payload carried no usable primary email.
var ErrMissingPrimaryEmail = errors.New("missing primary email address")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
