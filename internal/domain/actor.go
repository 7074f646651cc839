package domain

import "context"

// Role is the caller's account type.
type Role string

const (
	// RoleBuyer browses, quotes and reviews.
	RoleBuyer Role = "buyer"
	// RoleSeller owns a vendor and manages its products.
	RoleSeller Role = "seller"
	// RoleAdmin sanctions vendors and sees blocked ones in search.
	RoleAdmin Role = "admin"
)

// IsValid checks if the role is one of the supported values.
func (r Role) IsValid() bool {
	return r == RoleBuyer || r == RoleSeller || r == RoleAdmin
}

// Actor identifies the caller of a mutating or visibility-aware operation.
// The zero Actor is an anonymous visitor.
type Actor struct {
	UserID string
	Role   Role
}

// IsAnonymous reports whether no user is signed in.
func (a Actor) IsAnonymous() bool { return a.UserID == "" }

// IsAdmin reports whether the actor has administrative rights.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

type actorKey struct{}

// ContextWithActor stores the caller in the context.
func ContextWithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFromContext extracts the caller. Returns the anonymous Actor if none is set.
func ActorFromContext(ctx context.Context) Actor {
	a, _ := ctx.Value(actorKey{}).(Actor)
	return a
}
