// internal/service/board_verifier.go
package service

import (
	"context"
	"time"

	"github.com/verifield/credplane/internal/model"
)

// VerificationResult is what a board check reports back. Verified is the
// clean outcome of the check; an error from the verifier itself means no
// outcome at all and leaves the license untouched.
type VerificationResult struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
}

// BoardVerifier checks a license against an external licensing authority.
// Implementations integrate with state board APIs; the workflow only needs
// the result recorded.
type BoardVerifier interface {
	Verify(ctx context.Context, license *model.License) (VerificationResult, error)
}

// ExpirationBoardVerifier is the stand-in policy until a real board
// integration is wired: a license verifies iff it is not expired right now.
type ExpirationBoardVerifier struct{}

func (ExpirationBoardVerifier) Verify(ctx context.Context, license *model.License) (VerificationResult, error) {
	if license.ExpirationDate.Before(time.Now().UTC()) {
		return VerificationResult{Verified: false, Message: "License has expired"}, nil
	}
	return VerificationResult{Verified: true, Message: "License verified successfully with state board"}, nil
}
