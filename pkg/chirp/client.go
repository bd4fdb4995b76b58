// Package chirp is a minimal client for a Twitter v1.1 compatible search API.
package chirp

import (
	"time"

	"resty.dev/v3"
)

type Client struct {
	client *resty.Client
}

type ClientConfig struct {
	TransportSettings *resty.TransportSettings

	ResponseMiddlewares []resty.ResponseMiddleware
	RequestMiddlewares  []resty.RequestMiddleware
}

var DefaultConfig = &ClientConfig{
	TransportSettings: &resty.TransportSettings{
		DialerTimeout:         5 * time.Second,
		DialerKeepAlive:       5 * time.Second,
		IdleConnTimeout:       5 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 5 * time.Second,
		ResponseHeaderTimeout: 5 * time.Second,
	},
}

func NewClient(baseURL string, config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig
	}

	client := resty.NewWithTransportSettings(config.TransportSettings).
		SetBaseURL(baseURL)

	for _, m := range config.RequestMiddlewares {
		client.AddRequestMiddleware(m)
	}
	for _, m := range config.ResponseMiddlewares {
		client.AddResponseMiddleware(m)
	}

	return &Client{
		client: client,
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}
