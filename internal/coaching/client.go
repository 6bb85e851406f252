package coaching

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/formsight/formsight/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	oneMinute          = 60
	commentCacheExpire = oneMinute * 10 // same milestone on reconnect gets the cached comment
)

// Client talks to the LLM-backed coaching service. The service holds its
// own model credentials; we only present our API key.
type Client struct {
	cache      *freecache.Cache
	baseURL    string // e.g. https://coach.formsight.io/api
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	megabyte := 1024 * 1024
	return &Client{
		cache:      freecache.NewCache(10 * megabyte),
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type commentResponse struct {
	Comment string `json:"comment"`
}

// Comment asks the coaching service for a short remark on the given
// workout moment. Identical milestones within the cache window are served
// from cache to spare the model on client reconnect storms.
func (c *Client) Comment(ctx context.Context, request Request) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coachingClient.comment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("exercise", request.Exercise.String()),
		attribute.Int("reps", request.Reps),
		attribute.Int("hold_seconds", request.HoldSeconds),
	)

	cacheKey := fmt.Sprintf("%s::%d::%d", request.Exercise, request.Reps, request.HoldSeconds)
	if cachedComment, err := c.cache.Get([]byte(cacheKey)); err == nil {
		log.Tracef("coaching comment for %s found in cache", cacheKey)
		return string(cachedComment), nil
	}

	reqBytes, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("marshal coaching request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		c.baseURL+"/coach/comment",
		bytes.NewReader(reqBytes),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read coaching response bytes: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("coaching service status %d: %s", resp.StatusCode, respBytes)
	}

	var comment commentResponse
	if err := json.Unmarshal(respBytes, &comment); err != nil {
		return "", fmt.Errorf("unmarshal coaching response: %w", err)
	}

	if err := c.cache.Set([]byte(cacheKey), []byte(comment.Comment), commentCacheExpire); err != nil {
		log.Errorf("failed to cache coaching comment for %s: %s", cacheKey, err)
	}

	return comment.Comment, nil
}
