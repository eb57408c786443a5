package registry

// Config controls how the responder renders its responses.
type Config struct {
	// ContentType is sent as the Content-Type header of JSON responses.
	// If empty, the header is omitted altogether.
	ContentType string `conf:"content_type"`
}
