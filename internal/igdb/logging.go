package igdb

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// LogLevel controls how much of each HTTP exchange is logged
type LogLevel int

const (
	LogNone LogLevel = iota
	LogBasic
	LogBody
)

// ParseLogLevel parses none, basic or body
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return LogNone, nil
	case "basic":
		return LogBasic, nil
	case "body":
		return LogBody, nil
	default:
		return LogNone, fmt.Errorf("unknown http log level %q", s)
	}
}

func (l LogLevel) String() string {
	switch l {
	case LogBasic:
		return "basic"
	case LogBody:
		return "body"
	default:
		return "none"
	}
}

// maxLoggedBody caps logged bodies
const maxLoggedBody = 2048

type loggingTransport struct {
	next  http.RoundTripper
	level LogLevel
}

// NewLoggingTransport wraps next with request/response logging
func NewLoggingTransport(next http.RoundTripper, level LogLevel) http.RoundTripper {
	if level == LogNone {
		return next
	}
	return &loggingTransport{next: next, level: level}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log.Printf("--> %s %s", req.Method, req.URL)
	if t.level == LogBody && req.Body != nil && req.GetBody != nil {
		if body, err := req.GetBody(); err == nil {
			data, _ := io.ReadAll(io.LimitReader(body, maxLoggedBody))
			body.Close()
			log.Printf("%s", data)
		}
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		log.Printf("<-- HTTP FAILED: %v", err)
		return nil, err
	}
	log.Printf("<-- %d %s (%s)", resp.StatusCode, req.URL, time.Since(start).Round(time.Millisecond))

	if t.level == LogBody && resp.Body != nil {
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
		logged := data
		if len(logged) > maxLoggedBody {
			logged = logged[:maxLoggedBody]
		}
		log.Printf("%s", logged)
		resp.Body = io.NopCloser(bytes.NewReader(data))
	}
	return resp, nil
}
