package utils

import (
	"strings"

	"github.com/oshokin/restlog/internal/version"
)

//go:generate $MOCKGEN -source=user_agent_provider.go -destination=mocks/user_agent_provider_mock.go

// UserAgentProvider supplies the User-Agent sent with requests that do not set one.
type UserAgentProvider interface {
	// GetUserAgent returns a User-Agent string.
	GetUserAgent() string
}

// StaticUserAgentProvider returns the same User-Agent for every request.
type StaticUserAgentProvider struct {
	userAgent string
}

// NewStaticUserAgentProvider returns a provider for userAgent.
// A blank userAgent is replaced with "restlog/<version>".
func NewStaticUserAgentProvider(userAgent string) UserAgentProvider {
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent()
	}

	return &StaticUserAgentProvider{userAgent: userAgent}
}

// DefaultUserAgent returns the product token of this build.
func DefaultUserAgent() string {
	return "restlog/" + version.Short()
}

// GetUserAgent returns a User-Agent string.
func (p *StaticUserAgentProvider) GetUserAgent() string {
	return p.userAgent
}
