package server

import "fmt"

type HttpConfig struct {
	Host string `conf:"host"`
	Port int    `conf:"port"`
	H2c  bool   `conf:"h2c"`
}

// Address returns the host:port the server binds to.
func (c HttpConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
