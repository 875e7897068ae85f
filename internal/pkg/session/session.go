package session

import "github.com/gin-gonic/gin"

// Session is the explicit admin session handed to every service that needs
// the caller's identity. It is populated when a request is authenticated and
// discarded with the request; nothing reads session state ambiently.
type Session struct {
	UserID string
	Role   string
	// Token is the raw bearer token, forwarded verbatim to the platform
	// backend on every upstream request.
	Token string
}

// Authenticated reports whether the session carries a usable token.
// Upstream requests without one are skipped rather than issued.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == "admin"
}

const contextKey = "session"

// Inject stores the session in the gin context.
func Inject(c *gin.Context, s *Session) {
	c.Set(contextKey, s)
}

// FromContext returns the session attached to the request, or nil.
func FromContext(c *gin.Context) *Session {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	s, _ := v.(*Session)
	return s
}
