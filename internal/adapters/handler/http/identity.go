package http

import (
	"net"
	"net/http"
)

// IdentityResolver derives the vote-deduplication key from a request. The
// default is the source IP; swapping in session or account identities only
// requires a new implementation here, never a change to vote logic.
type IdentityResolver interface {
	Identity(r *http.Request) string
}

// RemoteAddrResolver uses the request's remote address. Behind chi's RealIP
// middleware this is the client IP from X-Forwarded-For / X-Real-IP, which
// means the identity is spoofable by anyone who controls those headers — an
// accepted limitation of the unauthenticated design.
type RemoteAddrResolver struct{}

func (RemoteAddrResolver) Identity(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return ip
}
