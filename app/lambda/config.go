package lambda

import (
	"github.com/lambda-feedback/regmock/registry"
	"github.com/lambda-feedback/regmock/util/conf"
)

// ProxySource represents the source of a lambda request.
type ProxySource string

const (
	// ProxySourceApiGatewayV1 represents an API Gateway v1 request.
	ProxySourceApiGatewayV1 ProxySource = "API_GW_V1"

	// ProxySourceApiGatewayV2 represents an API Gateway v2 request.
	ProxySourceApiGatewayV2 ProxySource = "API_GW_V2"

	// ProxySourceAlb represents an Application Load Balancer request.
	ProxySourceAlb ProxySource = "ALB"
)

func (p ProxySource) String() string {
	return string(p)
}

type Config struct {
	// ProxySource is the source of the AWS Lambda event.
	ProxySource ProxySource `conf:"lambda_proxy_source"`

	// Registry represents the configuration for the mock registry.
	Registry registry.Config `conf:",squash"`
}

var DefaultConfig = conf.DefaultConfig{
	"lambda_proxy_source": string(ProxySourceApiGatewayV2),
}
