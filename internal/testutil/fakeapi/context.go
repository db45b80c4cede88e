package fakeapi

import (
	"context"
	"net/http"
)

func contextWithUser(r *http.Request, u *user) context.Context {
	return context.WithValue(r.Context(), ctxKey{}, u)
}

func userFrom(r *http.Request) *user {
	u, _ := r.Context().Value(ctxKey{}).(*user)
	return u
}
