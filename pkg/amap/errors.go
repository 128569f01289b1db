package amap

import "fmt"

// TransportError reports an HTTP-level failure: a timeout, a connection
// fault, a non-200 status or an unparseable body. Transport failures
// are never retried.
type TransportError struct {
	StatusCode int    // zero when the request never got a response
	Detail     string
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream HTTP %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("upstream request failed: %s", e.Detail)
}

// BusinessError reports an envelope-level failure: a v3 response with
// status != "1" or a v4 response with errcode != 0. Message carries the
// upstream error text verbatim.
type BusinessError struct {
	Message string
}

// Error implements the error interface.
func (e *BusinessError) Error() string {
	return fmt.Sprintf("upstream API error: %s", e.Message)
}

// UnsupportedModeError reports a travel mode that is outside the known
// set even after alias normalization.
type UnsupportedModeError struct {
	Mode string
}

// Error implements the error interface.
func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("unsupported travel mode: %s", e.Mode)
}

// ParameterError reports a missing or inconsistent parameter
// combination, detected before any network traffic.
type ParameterError struct {
	Message string
}

// Error implements the error interface.
func (e *ParameterError) Error() string {
	return e.Message
}
