package server

import (
	"net/http"

	"go.uber.org/fx"
)

// HttpHandler is a handler mounted on the server mux under Name, which is
// a ServeMux pattern.
type HttpHandler struct {
	Name    string
	Handler http.Handler
}

type HttpHandlerResult struct {
	fx.Out

	Handler *HttpHandler `group:"handlers"`
}

// AsHttpHandler registers handler in the server's handler group.
func AsHttpHandler(
	name string,
	handler http.Handler,
) HttpHandlerResult {
	return HttpHandlerResult{
		Handler: &HttpHandler{
			Name:    name,
			Handler: handler,
		},
	}
}

// NewHandler combines the grouped handlers. A lone "/" handler is returned
// as is, so it sees every request path unmodified. Otherwise the handlers
// are mounted on a ServeMux, which cleans and redirects non-canonical paths.
func NewHandler(handlers []*HttpHandler) http.Handler {
	if len(handlers) == 1 && handlers[0].Name == "/" {
		return handlers[0].Handler
	}

	mux := http.NewServeMux()

	for _, handler := range handlers {
		mux.Handle(handler.Name, handler.Handler)
	}

	return mux
}
