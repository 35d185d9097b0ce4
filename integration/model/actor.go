package model

// CapabilityManageOptions is required to issue connect tokens and change
// credentials.
const CapabilityManageOptions = "manage_options"

// Actor is the authenticated admin user behind a request.
type Actor struct {
	UserID       string   `json:"user_id"`
	Capabilities []string `json:"capabilities"`
}

// Can reports whether the actor holds capability.
func (a Actor) Can(capability string) bool {
	for _, c := range a.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}
