package mine_client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rskv-p/fpgrowth/pkg/x_fp"
	"github.com/rskv-p/fpgrowth/servs/s_mine/mine_serv"
)

var ErrStream = errors.New("stream failed")

// StreamClient mines jobs over the server's websocket endpoint.
type StreamClient struct {
	URL    string // ws:// or wss:// address of /api/mine/stream
	Dialer *websocket.Dialer
}

// NewStreamClient derives the stream URL from an http(s) base URL.
func NewStreamClient(baseURL string) *StreamClient {
	u := strings.TrimRight(baseURL, "/")
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	return &StreamClient{
		URL:    u + "/api/mine/stream",
		Dialer: &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
	}
}

// Stream sends job and calls handler for each itemset as the server finds
// it. A handler error closes the socket, which stops the job on the server,
// and is returned as is.
func (c *StreamClient) Stream(ctx context.Context, job mine_serv.Job, handler func(x_fp.Itemset[string]) error) (*mine_serv.Report, error) {
	conn, resp, err := c.Dialer.DialContext(ctx, c.URL, nil)
	if err != nil {
		if resp != nil {
			return nil, &Error{Status: resp.StatusCode, Message: err.Error()}
		}
		return nil, err
	}
	defer conn.Close()

	// unblock reads when ctx ends
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	if err := conn.WriteJSON(job); err != nil {
		return nil, err
	}

	for {
		var ev mine_serv.StreamEvent
		if err := conn.ReadJSON(&ev); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("%w: %v", ErrStream, err)
		}

		switch ev.Type {
		case mine_serv.EventItemset:
			if ev.Itemset == nil || handler == nil {
				continue
			}
			if err := handler(*ev.Itemset); err != nil {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(time.Second))
				return nil, err
			}
		case mine_serv.EventDone:
			return ev.Report, nil
		case mine_serv.EventError:
			return nil, fmt.Errorf("%w: %s", ErrStream, ev.Error)
		}
	}
}
