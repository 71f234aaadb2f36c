package client

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

type HttpClientInterface interface {
	Get(url string, headers map[string]string) ([]byte, error)
}

type HttpClient struct {
	// Zero timeout waits for the response indefinitely.
	Timeout time.Duration
}

func (h *HttpClient) Get(url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	client := &http.Client{
		Timeout: h.Timeout,
	}

	res, err := client.Do(req)

	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, &StatusError{Url: url, StatusCode: res.StatusCode}
	}

	responseBody, err := io.ReadAll(res.Body)

	if err != nil {
		return nil, err
	}

	return responseBody, nil
}

type StatusError struct {
	Url        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Request [%s] failed with error code: %d", e.Url, e.StatusCode)
}

func IsStatusError(err error) bool {
	var statusError *StatusError

	return errors.As(err, &statusError)
}
