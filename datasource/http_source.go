package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"go-transactions-api/logger"
	"go-transactions-api/model"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Source yields the full dataset that a seed run stores.
type Source interface {
	Fetch(ctx context.Context) ([]*model.Transaction, error)
}

// HTTPSource downloads the dataset as a JSON array from a fixed URL.
type HTTPSource struct {
	url        string
	timeout    time.Duration
	httpClient *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:        url,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

const maxErrorBody = 512

func (s *HTTPSource) Fetch(ctx context.Context) ([]*model.Transaction, error) {
	log := logger.Log.WithField("url", s.url)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build seed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Failed to fetch seed data")
		return nil, fmt.Errorf("fetch seed data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("seed source returned %d: %s", resp.StatusCode, string(body))
	}

	var transactions []*model.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&transactions); err != nil {
		log.WithError(err).Error("Failed to decode seed data")
		return nil, fmt.Errorf("decode seed data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"records":     len(transactions),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Fetched seed data")
	return transactions, nil
}
