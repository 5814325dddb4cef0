package valueobjects

import "errors"

// Principal is an opaque, equality-comparable identity supplied by the host
// environment. The registry never inspects it beyond equality.
type Principal string

func NewPrincipal(v string) (Principal, error) {
	if v == "" {
		return "", errors.New("principal identity is required")
	}
	return Principal(v), nil
}

func (p Principal) String() string {
	return string(p)
}
