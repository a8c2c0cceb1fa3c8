package mine_api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rskv-p/fpgrowth/constant"
	"github.com/rskv-p/fpgrowth/pkg/x_fp"
	"github.com/rskv-p/fpgrowth/pkg/x_log"
	"github.com/rskv-p/fpgrowth/servs/s_mine/mine_serv"
)

const (
	writeWait = 10 * time.Second
	jobWait   = 30 * time.Second
)

// upgrader turns GET /api/mine/stream into a websocket.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleStream mines one job over a websocket. The client sends the job as
// its first message and then only listens; every itemset is pushed as the
// miner yields it, followed by a done or error event. Closing the socket
// abandons the job.
func handleStream(svc *mine_serv.Service) http.HandlerFunc {
	log := x_log.New("ws")
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already answered with an HTTP error
			log.Debug().Err(err).Msg("upgrade failed")
			return
		}
		defer conn.Close()

		conn.SetReadLimit(constant.MaxUploadSize)
		_ = conn.SetReadDeadline(time.Now().Add(jobWait))

		var job mine_serv.Job
		if err := conn.ReadJSON(&job); err != nil {
			sendError(conn, fmt.Errorf("%w: %v", constant.ErrBadRequest, err))
			return
		}
		if err := validateJob(job); err != nil {
			sendError(conn, err)
			return
		}
		_ = conn.SetReadDeadline(time.Time{})

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()
		go watchClient(conn, cancel)

		rep, err := svc.Stream(ctx, job, func(set x_fp.Itemset[string]) error {
			return send(conn, mine_serv.StreamEvent{Type: mine_serv.EventItemset, Itemset: &set})
		})
		if err != nil {
			if ctx.Err() != nil {
				log.Debug().Str("file", job.Source).Msg("stream abandoned by client")
				return
			}
			sendError(conn, err)
			return
		}

		if err := send(conn, mine_serv.StreamEvent{Type: mine_serv.EventDone, Report: rep}); err != nil {
			return
		}
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeWait))
	}
}

// watchClient reads until the connection fails or the client closes it,
// then cancels the job. Messages after the job are ignored.
func watchClient(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func send(conn *websocket.Conn, ev mine_serv.StreamEvent) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(ev)
}

func sendError(conn *websocket.Conn, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	_ = send(conn, mine_serv.StreamEvent{Type: mine_serv.EventError, Error: err.Error()})
}
