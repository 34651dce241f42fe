package api

import "fmt"

// NetworkError wraps a transport failure: the request never completed and
// the backend state is unknown.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthError reports an expired or invalid session. Callers surface it to
// force re-authentication.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication failed, run 'lifetrack login'"
	}
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// ValidationError reports input the backend rejected.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Message)
}

// NotFoundError reports a referenced habit or log that no longer exists.
type NotFoundError struct {
	Resource string
	Message  string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.Message)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// StatusError covers backend responses outside the mapped taxonomy.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}
