// Package mine_client talks to a running fpgrowth server.
package mine_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rskv-p/fpgrowth/constant"
	"github.com/rskv-p/fpgrowth/servs/s_mine/mine_serv"
)

// RESTClient handles HTTP requests to the server.
type RESTClient struct {
	BaseURL string       // e.g. http://localhost:8080
	Client  *http.Client // HTTP client for making requests
}

// NewRESTClient creates a client for baseURL.
func NewRESTClient(baseURL string) *RESTClient {
	return &RESTClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 5 * time.Minute},
	}
}

// Error is a non-2xx answer from the server.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

func (c *RESTClient) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var msg map[string]string
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		return &Error{Status: resp.StatusCode, Message: msg[constant.BodyKeyError]}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Mine submits a job.
func (c *RESTClient) Mine(ctx context.Context, job mine_serv.Job) (*mine_serv.Report, error) {
	var rep mine_serv.Report
	if err := c.do(ctx, http.MethodPost, "/api/mine", job, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

// Runs lists stored runs.
func (c *RESTClient) Runs(ctx context.Context, limit int) ([]*mine_serv.Report, error) {
	var runs []*mine_serv.Report
	path := "/api/runs?limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// Run fetches one stored run.
func (c *RESTClient) Run(ctx context.Context, id string) (*mine_serv.Report, error) {
	var rep mine_serv.Report
	if err := c.do(ctx, http.MethodGet, "/api/runs/"+url.PathEscape(id), nil, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

// DeleteRun removes a stored run.
func (c *RESTClient) DeleteRun(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/runs/"+url.PathEscape(id), nil, nil)
}

// Stats fetches the server's mining counters.
func (c *RESTClient) Stats(ctx context.Context) (map[string]int64, error) {
	var stats map[string]int64
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
