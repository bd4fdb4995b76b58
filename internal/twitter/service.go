// Package twitter wires the chirp search client into the application.
package twitter

import (
	"context"
	"fmt"
	"net/url"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"resty.dev/v3"

	"carebird/internal/config"
	"carebird/pkg/chirp"
)

var (
	apiLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "carebird_search_request_latency",
			Help:    "Histogram of search API request latency in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "path", "status_code"},
	)
)

// Service is the chirp client configured from application config, with
// request latency metrics attached.
type Service struct {
	*chirp.Client

	Config *config.Config
}

func (s *Service) Init(_ context.Context) error {
	s.Client = chirp.NewClient(s.Config.SearchBaseURL, &chirp.ClientConfig{
		TransportSettings: chirp.DefaultConfig.TransportSettings,

		ResponseMiddlewares: []resty.ResponseMiddleware{metricMiddleware},
	})

	return nil
}

func (s *Service) Shutdown(_ context.Context) error {
	return s.Client.Close()
}

func metricMiddleware(_ *resty.Client, response *resty.Response) error {
	reqURL, err := url.Parse(response.Request.URL)
	if err != nil {
		return err
	}

	apiLatency.WithLabelValues(
		response.Request.Method,
		reqURL.Path,
		fmt.Sprintf("%d", response.StatusCode()),
	).Observe(response.Duration().Seconds())

	return nil
}
