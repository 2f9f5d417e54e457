// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("state changed concurrently")
	ErrStorage      = errors.New("storage failure")

	// Account-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	// Company-related errors
	ErrMissingFields     = errors.New("required fields are missing")
	ErrCodeFormat        = errors.New("enrollment code must be 8 characters")
	ErrCodeExhausted     = errors.New("could not generate a unique enrollment code")
	ErrCompanyNotFound   = errors.New("company not found")
	ErrNotCompanyAdmin   = errors.New("actor does not administer this company")
	ErrProviderNotFound  = errors.New("provider not found")
	ErrProviderExists    = errors.New("provider profile already exists for this user")
	ErrNoApprovedCompany = errors.New("provider has no approved company affiliation")
	ErrAmbiguousCompany  = errors.New("provider belongs to multiple companies; one must be chosen")

	// Affiliation-related errors
	ErrLinkNotFound    = errors.New("affiliation link not found")
	ErrDuplicateLink   = errors.New("affiliation link already exists")
	ErrLinkNotPending  = errors.New("affiliation link is not pending")
	ErrLinkNotApproved = errors.New("affiliation link is not approved")

	// Credential-related errors
	ErrDocumentNotFound    = errors.New("document not found")
	ErrDocumentNotReviewed = errors.New("document has not been reviewed")
	ErrLicenseNotFound     = errors.New("license not found")
	ErrLicenseNotReverted  = errors.New("license verification is not revertible")
	ErrVerifierUnavailable = errors.New("board verifier failed")
)
