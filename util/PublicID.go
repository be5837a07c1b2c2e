package util

import "github.com/segmentio/ksuid"

// NewPublicID returns a random, URL-safe identifier for a public portfolio.
func NewPublicID() string {
	return ksuid.New().String()
}
