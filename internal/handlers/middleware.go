package handlers

import (
	"net/http"
	"time"

	"technews/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	identityKey       = "identity"
	requestIDHeader   = "X-Request-ID"
	defaultCookieName = "techNewsApp"
)

// sessionMiddleware decodes the session cookie and stores the identity in the
// request context. Any decode failure leaves the request anonymous.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token, err := c.Cookie(h.opts.CookieName)
	if err == nil && token != "" {
		id, err := h.services.ParseToken(token)
		if err == nil {
			c.Set(identityKey, id)
		} else if h.log != nil {
			h.log.Debugw("session_decode_failed", "err", err)
		}
	}
	c.Next()
}

// currentIdentity returns the request's identity, if any.
func currentIdentity(c *gin.Context) (service.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return service.Identity{}, false
	}
	id, ok := v.(service.Identity)
	return id, ok
}

// requireAuthenticated sends anonymous requests back home.
func (h *Handler) requireAuthenticated(c *gin.Context) {
	if _, ok := currentIdentity(c); !ok {
		c.Redirect(http.StatusFound, "/")
		c.Abort()
		return
	}
	c.Next()
}

// requestLogger tags each request with an id and logs one line when it completes.
func (h *Handler) requestLogger(c *gin.Context) {
	reqID := c.GetHeader(requestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Header(requestIDHeader, reqID)

	start := time.Now()
	c.Next()

	if h.log != nil {
		h.log.Infow("http_request",
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
