// Package registry implements a mock of a package registry's HTTP API for
// integration tests.
//
// The [Responder] answers a small, fixed set of path prefixes with canned
// JSON payloads and everything else with an empty 404:
//
//   - /api/scope/...          200 {}
//   - /api/scopes/...         200 {"id": "sdfwqer-sffg-qwerasdf", "status": "success", "error": null}
//   - /api/publish_status/... 200 {"id": "sdfwqer-qwer-qwerasdf", "status": "success", "error": null}
//
// Routes are evaluated in order and the first matching prefix wins. The
// request method, headers, query and body are never inspected.
//
// The responder is mounted either through [Module] in an fx application, or
// standalone with [Serve]. Go tests can use the registrytest subpackage.
package registry
