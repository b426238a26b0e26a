package scope

import "errors"

var (
	// ErrStateChange is returned when the initial attempt to apply the target
	// session state fails. The scope body is never entered and no restoration
	// is attempted.
	ErrStateChange = errors.New("failed to change session state")
	// ErrRestoration is returned when restoring the previous session state
	// fails after the scope body has run. It is joined with the body error,
	// if any, so neither failure is lost.
	ErrRestoration = errors.New("failed to restore session state")
	// ErrRole is returned when a role switch targets a role that does not
	// exist or that the session user is not permitted to assume.
	ErrRole = errors.New("role does not exist or is not permitted")
)
