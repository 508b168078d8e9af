package middleware

import "net/http"

// Middleware wraps an http.Handler. Values can be passed to chi's Router.Use.
type Middleware func(http.Handler) http.Handler
