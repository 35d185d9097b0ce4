package model

// SingleUseKey addresses the in-flight marker of a single-use request.
type SingleUseKey struct {
	Resource string
	Key      string
}
