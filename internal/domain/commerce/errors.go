package commerce

import (
	"errors"
	"fmt"
)

// ErrRemoteCall is the sentinel all platform call failures match via
// errors.Is.
var ErrRemoteCall = errors.New("commerce: remote call failed")

// ErrPlatformNotConfigured is returned when a call is attempted without
// usable credentials.
var ErrPlatformNotConfigured = errors.New("commerce: platform credentials not configured")

// RemoteCallError describes a failed call to the commerce platform. For
// transport failures StatusCode is zero and Err carries the cause; for
// HTTP-level failures Body holds a capped copy of the response payload.
type RemoteCallError struct {
	Operation  string
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface
func (e *RemoteCallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("commerce: %s failed: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("commerce: %s failed: HTTP %d: %s", e.Operation, e.StatusCode, e.Body)
}

// Unwrap exposes the underlying transport error, if any
func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

// Is matches the ErrRemoteCall sentinel
func (e *RemoteCallError) Is(target error) bool {
	return target == ErrRemoteCall
}

// ProvisioningError marks which step of the provisioning sequence failed.
// Earlier steps' remote effects are not rolled back; callers log what was
// left behind.
type ProvisioningError struct {
	Step int
	Op   string
	Err  error
}

// Error implements the error interface
func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("provisioning step %d (%s): %v", e.Step, e.Op, e.Err)
}

// Unwrap exposes the step's underlying error
func (e *ProvisioningError) Unwrap() error {
	return e.Err
}
