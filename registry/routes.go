package registry

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Route maps a path prefix to a canned response.
type Route struct {
	// Name identifies the route in logs and metrics.
	Name string

	// Prefix is matched against the start of the request path.
	Prefix string

	// Status is the HTTP status code of the response.
	Status int

	// Payload is encoded as indented JSON to form the response body.
	Payload any
}

// Matches reports whether the route handles the given path.
func (r Route) Matches(path string) bool {
	return strings.HasPrefix(path, r.Prefix)
}

// Render encodes the payload as JSON indented with two spaces.
func (r Route) Render() ([]byte, error) {
	return json.MarshalIndent(r.Payload, "", "  ")
}

// Routes is an ordered routing table. The first matching route wins.
type Routes []Route

// Match returns the first route whose prefix the path starts with.
func (rs Routes) Match(path string) (Route, bool) {
	for _, route := range rs {
		if route.Matches(path) {
			return route, true
		}
	}

	return Route{}, false
}

// DefaultRoutes returns the routing table of the mock registry.
func DefaultRoutes() Routes {
	return Routes{
		{
			Name:    RouteScope,
			Prefix:  ScopePrefix,
			Status:  http.StatusOK,
			Payload: Scope{},
		},
		{
			Name:   RouteScopes,
			Prefix: ScopesPrefix,
			Status: http.StatusOK,
			Payload: TaskStatus{
				ID:     ScopesStatusID,
				Status: StatusSuccess,
			},
		},
		{
			Name:   RoutePublishStatus,
			Prefix: PublishStatusPrefix,
			Status: http.StatusOK,
			Payload: TaskStatus{
				ID:     PublishStatusID,
				Status: StatusSuccess,
			},
		},
	}
}
