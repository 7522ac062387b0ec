// Package payload defines the uniform "errors as data" result shapes the
// mutation flows return. A business-rule failure is a payload with exactly
// one UserError and a nil result field; it is never a Go error. Go errors
// are reserved for unexpected failures and propagate to the transport.
package payload

import "github.com/minhvu/blogspace/internal/domain/post"

type UserError struct {
	Message string
}

// AuthPayload is the result of signup and signin. Token is empty on failure.
type AuthPayload struct {
	UserErrors []UserError
	Token      string
}

// PostPayload is the result of every post mutation. Post is nil on failure.
type PostPayload struct {
	UserErrors []UserError
	Post       *post.Post
}

func AuthFailure(message string) *AuthPayload {
	return &AuthPayload{UserErrors: []UserError{{Message: message}}}
}

func PostFailure(message string) *PostPayload {
	return &PostPayload{UserErrors: []UserError{{Message: message}}}
}

func AuthSuccess(token string) *AuthPayload {
	return &AuthPayload{UserErrors: []UserError{}, Token: token}
}

func PostSuccess(p *post.Post) *PostPayload {
	return &PostPayload{UserErrors: []UserError{}, Post: p}
}
