package registry

import (
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Observer is notified of every response the responder produces.
type Observer interface {
	ObserveRequest(route string, status int)
}

type nopObserver struct{}

func (nopObserver) ObserveRequest(string, int) {}

// ResponderParams defines the dependencies of the responder.
type ResponderParams struct {
	fx.In

	Config Config

	// Routes overrides the default routing table.
	Routes Routes `optional:"true"`

	Observer Observer `optional:"true"`

	Log *zap.Logger
}

// Responder serves the canned registry responses.
type Responder struct {
	routes      Routes
	contentType string
	observer    Observer
	log         *zap.Logger
}

// NewResponder creates a new responder.
func NewResponder(params ResponderParams) *Responder {
	routes := params.Routes
	if routes == nil {
		routes = DefaultRoutes()
	}

	var observer Observer = nopObserver{}
	if params.Observer != nil {
		observer = params.Observer
	}

	log := params.Log
	if log == nil {
		log = zap.NewNop()
	}

	return &Responder{
		routes:      routes,
		contentType: params.Config.ContentType,
		observer:    observer,
		log:         log,
	}
}

func (h *Responder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// match the path as sent, %2F and friends stay encoded
	path := r.URL.EscapedPath()

	log := h.log.With(
		zap.String("path", path),
		zap.String("method", r.Method),
	)

	route, ok := h.routes.Match(path)
	if !ok {
		log.Debug("no route matched", zap.Int("status", http.StatusNotFound))
		h.observer.ObserveRequest(RouteNotFound, http.StatusNotFound)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	log = log.With(zap.String("route", route.Name))

	body, err := route.Render()
	if err != nil {
		// abort this request only; net/http closes the connection
		log.Error("failed to render response", zap.Error(err))
		panic(http.ErrAbortHandler)
	}

	if h.contentType != "" {
		w.Header().Set("Content-Type", h.contentType)
	} else {
		// a nil value keeps net/http from sniffing a content type
		w.Header()["Content-Type"] = nil
	}

	w.WriteHeader(route.Status)

	if _, err := w.Write(body); err != nil {
		log.Debug("failed to write response", zap.Error(err))
	}

	log.Debug("served canned response", zap.Int("status", route.Status))
	h.observer.ObserveRequest(route.Name, route.Status)
}
