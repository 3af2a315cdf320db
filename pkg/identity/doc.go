// Package identity carries the authenticated principal through request
// contexts.
//
// A Principal combines the verified token claims (user, org, email,
// timestamps) with request-specific context: the membership role resolved
// against the organization and the client IP used for audit entries.
//
//	p, ok := identity.Get(r.Context())
//	if ok && p.HasRole(model.RoleManager) { ... }
package identity
