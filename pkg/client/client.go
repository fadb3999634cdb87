package client

import (
	"github.com/mattewlondono22/smartagents-desktop/internal/client"
)

// Exposing internal client for external use
func NewClientFromEnv() (*client.Client, error) {
	return client.NewClientFromEnv()
}

func NewSearchClientFromEnv() (*client.Client, error) {
	return client.NewSearchClientFromEnv()
}

func NewClient(baseURL string) *client.Client {
	return client.NewClient(baseURL)
}
