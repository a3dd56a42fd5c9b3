package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mbopage/ezycook-cli/internal/common"
	"github.com/mbopage/ezycook-cli/internal/logging"
)

// Gateway executes typed HTTP requests against a fixed base origin. It owns
// header construction, JSON/multipart body encoding and the mapping of
// transport and decoding failures onto the package error taxonomy.
//
// A single attempt is made per call; retry policy is the caller's concern.
type Gateway struct {
	baseURL        string
	httpc          *http.Client
	requestTimeout time.Duration
	uploadTimeout  time.Duration
	log            logging.Logger
}

// NewGateway builds a Gateway for the given origin. Zero timeouts fall back
// to 30s for JSON requests and 60s for uploads.
func NewGateway(baseURL string, requestTimeout, uploadTimeout time.Duration, log logging.Logger) *Gateway {
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}
	if uploadTimeout <= 0 {
		uploadTimeout = 60 * time.Second
	}
	if log == nil {
		log = logging.Noop{}
	}
	return &Gateway{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpc:          &http.Client{},
		requestTimeout: requestTimeout,
		uploadTimeout:  uploadTimeout,
		log:            log,
	}
}

// BaseURL returns the origin requests are issued against.
func (g *Gateway) BaseURL() string { return g.baseURL }

// Request describes one API call. Body (JSON) and Form (multipart) are
// mutually exclusive; Form wins when both are set.
type Request struct {
	Method string
	Path   string
	Query  url.Values

	// Body is JSON-marshalled when non-nil.
	Body any

	// Form switches the request to multipart/form-data.
	Form *MultipartForm

	// Token is attached as "Authorization: Bearer <token>" when non-empty.
	Token string

	// Authenticated marks a protected resource: an empty Token is then a
	// precondition failure and no request is sent.
	Authenticated bool
}

// Do executes req and decodes the response body into T.
//
// Error mapping: missing token on a protected path -> common.ErrNotLoggedIn;
// transport failure or timeout -> ErrNetwork; non-2xx with a {message} body
// -> *ServerError; empty 2xx body -> ErrEmptyResponse; undecodable body ->
// ErrDecoding.
func Do[T any](ctx context.Context, g *Gateway, req Request) (T, error) {
	var zero T

	if req.Authenticated && req.Token == "" {
		return zero, common.ErrNotLoggedIn
	}

	u, err := url.Parse(g.baseURL + req.Path)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", common.ErrorInvalidInput, err)
	}
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	contentType := ""
	timeout := g.requestTimeout

	switch {
	case req.Form != nil:
		body = bytes.NewReader(req.Form.Encode())
		contentType = req.Form.ContentType()
		timeout = g.uploadTimeout
	case req.Body != nil:
		data, err := json.Marshal(req.Body)
		if err != nil {
			return zero, fmt.Errorf("%w: %v", common.ErrorInvalidInput, err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", common.ErrorInvalidInput, err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	resp, err := g.httpc.Do(httpReq)
	if err != nil {
		g.log.Warn(ctx, "request failed", "method", req.Method, "path", req.Path, "err", err)
		return zero, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, serverError(resp.StatusCode, data)
	}

	if len(data) == 0 {
		return zero, ErrEmptyResponse
	}

	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrDecoding, err)
	}
	return decoded, nil
}

// serverError extracts the {message} envelope from an error body. Bodies
// with no usable message fall back to the standard status text so callers
// always get a *ServerError for a remote rejection, never a decoding error.
func serverError(status int, body []byte) error {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return &ServerError{Status: status, Message: envelope.Message}
	}
	return &ServerError{Status: status, Message: http.StatusText(status)}
}
