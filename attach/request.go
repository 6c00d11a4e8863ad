package attach

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/graftlabs/graft/extension"
)

// Request is the unit of work for one attachment invocation.
type Request struct {
	// Targets are the types the attachables are attached to.
	Targets []extension.Target
	// Attachables are the named values to attach, in declaration order.
	Attachables []Attachable
	// Overwrite permits attachment despite a genuine pre-existing attribute.
	Overwrite bool
	// Keep leaves the original top-level binding of each name untouched.
	Keep bool
	// AsProperty wraps every attachable as a property before attachment.
	AsProperty bool
	// Version is an optional semantic version stamped onto every record.
	Version *semver.Version
}

// Option is a functional option for configuring an attachment Request.
// Options are independent; their order does not matter.
type Option func(*Request)

// WithOverwrite permits replacement of attributes that already exist on a
// target and were not attached by this mechanism.
func WithOverwrite() Option {
	return func(r *Request) {
		r.Overwrite = true
	}
}

// WithKeep prevents removal of the original top-level bindings after
// attachment.
func WithKeep() Option {
	return func(r *Request) {
		r.Keep = true
	}
}

// AsProperties wraps every attachable in the request as a property. All
// values must then be single-parameter functions or pre-wrapped properties.
func AsProperties() Option {
	return func(r *Request) {
		r.AsProperty = true
	}
}

// WithVersion stamps the given semantic version onto every attached record.
func WithVersion(v *semver.Version) Option {
	return func(r *Request) {
		r.Version = v
	}
}

// newRequest normalizes a subject (single attachable, slice, or group) and
// the options into a Request. Both declaration forms flow through here, so
// they follow the identical algorithm.
func newRequest(subject any, to []extension.Target, opts ...Option) (Request, error) {
	attachables, err := normalizeSubject(subject)
	if err != nil {
		return Request{}, err
	}

	req := Request{
		Targets:     to,
		Attachables: attachables,
	}
	for _, opt := range opts {
		opt(&req)
	}

	return req, nil
}

// normalizeSubject enumerates the attachables of a subject.
func normalizeSubject(subject any) ([]Attachable, error) {
	switch s := subject.(type) {
	case Attachable:
		return []Attachable{s}, nil
	case []Attachable:
		return append([]Attachable{}, s...), nil
	case *Group:
		if s == nil {
			return nil, fmt.Errorf("cannot attach a nil group")
		}

		return s.Attachables(), nil
	case Group:
		return s.Attachables(), nil
	default:
		return nil, fmt.Errorf("cannot attach value of type %T: use Func, Const, Prop, or a Group", subject)
	}
}
