package adapters

import (
	"fmt"
	"io"
	"net/http"

	"longform-tts-worker/application/ports/outbound"
)

// HTTPStatusError is returned when the remote service answers with a
// non-success status. The body is kept so callers can surface the remote
// error detail alongside the code.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP request returned non-OK status code %d: %s", e.StatusCode, e.Body)
}

type ContentFetcher interface {
	FetchContent(req *http.Request) ([]byte, error)
}

type contentFetcher struct {
	client *http.Client
	logger outbound.LoggerPort
}

func NewContentFetcher(logger outbound.LoggerPort) ContentFetcher {
	return &contentFetcher{
		client: &http.Client{},
		logger: logger,
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			c.logger.ErrorWithFields(err, "Failed to close the response body", map[string]interface{}{
				"method": req.Method,
				"URL":    req.URL.String(),
			})
		}
	}(res.Body)

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read the response body", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		statusErr := &HTTPStatusError{StatusCode: res.StatusCode, Body: string(payload)}
		c.logger.ErrorWithFields(statusErr, "HTTP request returned non-OK status code", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
			"status": res.StatusCode,
		})
		return nil, statusErr
	}

	return payload, nil
}
