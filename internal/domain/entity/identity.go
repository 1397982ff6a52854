package entity

// Identity is the authenticated caller as reported by the identity
// provider. Confirmed mirrors a verified email or equivalent assertion.
type Identity struct {
	ID        string
	Email     string
	Confirmed bool
}
