// Package authz makes explicit allow/deny decisions for mutating operations.
// Every mutating handler consumes the same decision instead of carrying its own
// ownership conditional.
package authz

import "yatube/internal/models"

// Decision is the outcome of a capability check.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow grants the capability.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny refuses the capability with a reason suitable for an error response.
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// CanMutatePost decides whether userID may edit or delete the post. Edit and
// delete are deliberately symmetric: only the author may do either.
func CanMutatePost(post *models.Post, userID uint) Decision {
	if post == nil {
		return Deny("post does not exist")
	}
	if post.UserID != userID {
		return Deny("only the author may modify this post")
	}
	return Allow()
}
