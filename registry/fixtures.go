package registry

const (
	// ScopePrefix is the path prefix of the scope details endpoint.
	ScopePrefix = "/api/scope/"

	// ScopesPrefix is the path prefix of the scope creation status endpoint.
	ScopesPrefix = "/api/scopes/"

	// PublishStatusPrefix is the path prefix of the publish status endpoint.
	PublishStatusPrefix = "/api/publish_status/"
)

const (
	// ScopesStatusID is the id reported for scope requests.
	ScopesStatusID = "sdfwqer-sffg-qwerasdf"

	// PublishStatusID is the id reported for publish status requests.
	PublishStatusID = "sdfwqer-qwer-qwerasdf"

	// StatusSuccess is the status reported by every canned status payload.
	StatusSuccess = "success"
)

// Route names, used for logging and metrics.
const (
	RouteScope         = "scope"
	RouteScopes        = "scopes"
	RoutePublishStatus = "publish_status"
	RouteNotFound      = "not_found"
)

// Scope is the payload of the scope endpoint. It is always empty.
type Scope struct{}

// TaskStatus is the payload of the scopes and publish status endpoints.
type TaskStatus struct {
	ID     string  `json:"id"`
	Status string  `json:"status"`
	Error  *string `json:"error"`
}
