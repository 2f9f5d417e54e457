// internal/domain/kind.go
package domain

import "errors"

// Kind is the stable, machine-readable classification of a failure. Handlers
// send it alongside the human message so callers can branch on it without
// parsing text.
type Kind string

const (
	KindMissingFields     Kind = "MISSING_FIELDS"
	KindInvalidFormat     Kind = "INVALID_FORMAT"
	KindNotFound          Kind = "NOT_FOUND"
	KindDuplicateLink     Kind = "DUPLICATE_LINK"
	KindUnauthorized      Kind = "UNAUTHORIZED"
	KindForbidden         Kind = "FORBIDDEN"
	KindConflict          Kind = "CONFLICT"
	KindStorageError      Kind = "STORAGE_ERROR"
	KindVerificationError Kind = "VERIFICATION_ERROR"
)

// KindOf maps an error to its Kind. Unrecognized errors classify as
// STORAGE_ERROR: anything the taxonomy does not name is an internal failure
// whose details must not reach the caller.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidInput):
		return KindMissingFields
	case errors.Is(err, ErrCodeFormat):
		return KindInvalidFormat
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrCompanyNotFound),
		errors.Is(err, ErrProviderNotFound),
		errors.Is(err, ErrLinkNotFound),
		errors.Is(err, ErrDocumentNotFound),
		errors.Is(err, ErrLicenseNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicateLink):
		return KindDuplicateLink
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCredentials):
		return KindUnauthorized
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrNotCompanyAdmin):
		return KindForbidden
	case errors.Is(err, ErrConflict),
		errors.Is(err, ErrLinkNotPending),
		errors.Is(err, ErrLinkNotApproved),
		errors.Is(err, ErrDocumentNotReviewed),
		errors.Is(err, ErrLicenseNotReverted),
		errors.Is(err, ErrProviderExists),
		errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrNoApprovedCompany),
		errors.Is(err, ErrAmbiguousCompany):
		return KindConflict
	case errors.Is(err, ErrVerifierUnavailable):
		return KindVerificationError
	default:
		return KindStorageError
	}
}

// HTTPStatus returns the response status for a Kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindMissingFields, KindInvalidFormat, KindDuplicateLink:
		return 400
	case KindUnauthorized:
		return 401
	case KindForbidden:
		return 403
	case KindNotFound:
		return 404
	case KindConflict:
		return 409
	case KindVerificationError:
		return 502
	default:
		return 500
	}
}
