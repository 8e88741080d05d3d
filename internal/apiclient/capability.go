package apiclient

import "fmt"

// Capability is the outcome of asking a deployment for an optional feature.
// Older EcoCheck servers lack some endpoints entirely; that is reported here
// instead of as a failure.
type Capability struct {
	Feature   string `json:"feature"`
	Supported bool   `json:"supported"`
	Reason    string `json:"reason,omitempty"`
	Message   string `json:"message,omitempty"`
}

func Supported(feature string) Capability {
	return Capability{Feature: feature, Supported: true}
}

// Negotiate turns a 404 or 403 from an optional endpoint into an unsupported
// capability. ok is false for every other error, which the caller must surface.
func Negotiate(feature string, err error) (c Capability, ok bool) {
	switch KindOf(err) {
	case KindNotFound:
		return Capability{
			Feature: feature,
			Reason:  "unsupported",
			Message: fmt.Sprintf("%s is not available on this server deployment.", feature),
		}, true
	case KindForbidden:
		return Capability{
			Feature: feature,
			Reason:  "forbidden",
			Message: MessageOf(err, fmt.Sprintf("You do not have permission to access %s.", feature)),
		}, true
	default:
		return Capability{}, false
	}
}
