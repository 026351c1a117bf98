// Package upstream is the single outbound channel to the remote pet-adoption
// REST API. Every request goes through Client, which attaches the bearer
// token, enforces the fixed timeout, and maps response classes to domain
// errors. The wrapper never touches navigation or session state itself: a 401
// surfaces as domain.ErrSessionExpired and the API error handler decides what
// to do about it.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawhaven/adoption-gateway/internal/api/metrics"
	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/internal/core/ports"
)

const (
	// DefaultTimeout mirrors the 15s the original client enforced.
	DefaultTimeout = 15 * time.Second

	maxResponseBytes = 1 << 20
)

// Config captures the settings for reaching the upstream API.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client wraps *http.Client for the upstream API. It implements the AuthAPI,
// PetAPI, AdoptionAPI and AdminAPI ports.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

// New validates the base URL and returns a ready Client. A default timeout is
// applied when none is provided.
func New(cfg Config, log zerolog.Logger) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("upstream: base URL required")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("upstream: invalid base URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		base: base,
		http: &http.Client{Timeout: timeout},
		log:  log,
	}, nil
}

// doJSON sends a JSON request and decodes a JSON response into out (out may
// be nil). op labels the metrics for this logical operation.
func (c *Client) doJSON(ctx context.Context, op, method, path string, query url.Values, token string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("upstream: marshal request: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.send(ctx, op, method, path, query, token, body, contentType, out)
}

// doMultipart sends a multipart/form-data request with the given fields and
// optional image part, decoding a JSON response into out.
func (c *Client) doMultipart(ctx context.Context, op, method, path, token string, fields map[string]string, image *ports.ImageUpload, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("upstream: write field %s: %w", k, err)
		}
	}

	if image != nil {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, escapeQuotes(image.Filename)))
		if image.ContentType != "" {
			hdr.Set("Content-Type", image.ContentType)
		}
		part, err := w.CreatePart(hdr)
		if err != nil {
			return fmt.Errorf("upstream: create image part: %w", err)
		}
		if _, err := io.Copy(part, image.Content); err != nil {
			return fmt.Errorf("upstream: copy image: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("upstream: close multipart body: %w", err)
	}

	return c.send(ctx, op, method, path, nil, token, &buf, w.FormDataContentType(), out)
}

func (c *Client) send(ctx context.Context, op, method, path string, query url.Values, token string, body io.Reader, contentType string, out any) error {
	fullURL := c.base + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("upstream: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(op, "error").Inc()
		c.log.Warn().Err(err).Str("operation", op).Str("method", method).Str("path", path).Msg("upstream request failed")
		if isTimeout(err) {
			return fmt.Errorf("%w: %v", domain.ErrUpstreamTimeout, err)
		}
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	metrics.UpstreamRequestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	if err := c.classify(op, resp.StatusCode, raw); err != nil {
		return err
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("upstream: decode response: %w", err)
	}
	return nil
}

// classify maps a response status to the error the rest of the system
// understands. 2xx is nil; 401/403 and 5xx become sentinels; everything else
// keeps its body for the caller to interpret.
func (c *Client) classify(op string, status int, raw []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return domain.ErrSessionExpired
	case status == http.StatusForbidden:
		c.log.Warn().Str("operation", op).Msg("upstream denied access")
		return domain.ErrForbidden
	case status >= 500:
		c.log.Error().Str("operation", op).Int("status", status).Msg("upstream server error")
		return fmt.Errorf("%w: status %d", domain.ErrUpstream, status)
	default:
		return &domain.UpstreamError{StatusCode: status, Message: extractMessage(raw)}
	}
}

// isTimeout reports whether a transport error is a timeout: an exceeded
// request deadline or a net-level timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// extractMessage pulls the human-readable message out of an upstream error
// body. The API uses a {"message": ...} envelope; {"error": ...} and plain
// text are tolerated.
func extractMessage(raw []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	return strings.TrimSpace(string(raw))
}

// asNotFound converts an upstream 404 into the given sentinel, passing every
// other error through unchanged.
func asNotFound(err, sentinel error) error {
	var ue *domain.UpstreamError
	if errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound {
		return sentinel
	}
	return err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
