// Package adgen calls the external ad-generation API and normalizes its
// responses for rendering.
package adgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const registerPath = "/business/register/wellness"

// defaultTimeout bounds the generation call; the collaborator has no SLA.
const defaultTimeout = 30 * time.Second

const tracerName = "github.com/awelabs/awe.agency/internal/adgen"

// SubmissionError reports a failed generation call with a message safe to
// show to the user. The draft that produced it is never consumed.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// Client submits business profiles to the ad-generation service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a generation client for the given base URL. A nil
// httpClient gets a default with a fixed timeout.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("generation api base url is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}, nil
}

// Submit issues exactly one registration call and returns the normalized
// result. It never retries; the caller decides whether to resubmit.
func (c *Client) Submit(ctx context.Context, sub Submission) (Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "adgen.Submit")
	defer span.End()
	span.SetAttributes(attribute.String("adgen.business_name", sub.BusinessName))

	body, err := json.Marshal(newRegistrationRequest(sub))
	if err != nil {
		return Result{}, fail(span, "failed to encode registration request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+registerPath, bytes.NewReader(body))
	if err != nil {
		return Result{}, fail(span, "failed to build registration request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fail(span, "could not reach the ad generation service", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fail(span, fmt.Sprintf("ad generation failed (%s)", resp.Status), nil)
	}

	var decoded registrationResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Result{}, fail(span, "could not read the ad generation response", err)
	}

	span.SetAttributes(attribute.Int("adgen.initial_ads", len(decoded.InitialAds)))
	return decoded.result(), nil
}

func fail(span trace.Span, message string, err error) error {
	subErr := &SubmissionError{Message: message, Err: err}
	span.RecordError(subErr)
	span.SetStatus(codes.Error, message)
	return subErr
}
