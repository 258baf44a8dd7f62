package wallet

import "github.com/pkg/errors"

// Rejection errors returned by the wallet operations. Each is a synchronous
// rejection of the requested operation; the wallet never retries on its
// own. Match with errors.Is.
var (
	ErrInvalidConfig    = errors.New("invalid wallet configuration")
	ErrUnauthorized     = errors.New("caller is not an owner")
	ErrUnknownAction    = errors.New("unknown action")
	ErrAlreadyConfirmed = errors.New("action already confirmed by caller")
	ErrNotConfirmed     = errors.New("action not confirmed by caller")
	ErrAlreadyExecuted  = errors.New("action already executed")
)
