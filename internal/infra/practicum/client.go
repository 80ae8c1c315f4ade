// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/review"

	"github.com/sirupsen/logrus"
)

var errTrailingData = errors.New("unexpected data after JSON value")

// Client implements review.API against the Practicum homework_statuses endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	authHeader string
	logger     logrus.FieldLogger
}

// NewClient creates a client. A zero timeout leaves requests bounded only by ctx.
func NewClient(endpoint, authHeader string, timeout time.Duration, logger logrus.FieldLogger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		authHeader: authHeader,
		logger:     logger,
	}
}

// HomeworkStatuses requests the homeworks whose status changed since fromDate.
func (c *Client) HomeworkStatuses(ctx context.Context, fromDate int64) (review.Response, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid review API endpoint: %w", err)
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build review API request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &review.RemoteUnavailableError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &review.RemoteUnavailableError{StatusCode: resp.StatusCode}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber() // keeps current_date an exact integer
	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, &review.DecodeError{Err: err}
	}
	// The body must hold exactly one JSON value.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return nil, &review.DecodeError{Err: err}
	}

	c.logger.Infof("Received review API response: %v", body)
	return body, nil
}
