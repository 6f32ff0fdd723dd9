package model

// Scope carries the identity of the authenticated caller through the
// usecase layer. Authentication itself happens outside this service; the
// scope is populated by the delivery layer from the verified request.
type Scope struct {
	UserEmail string
}
