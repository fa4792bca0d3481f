package services

import "context"

// UserLookup answers whether a user exists. It is the only thing the phone
// component needs to know about users.
type UserLookup interface {
	UserExists(ctx context.Context, id uint) (bool, error)
}
