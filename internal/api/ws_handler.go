package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

// WsHandler 负责处理 WebSocket 订阅握手与任务通知转发。
type WsHandler struct {
	redisClient    *redis.Client
	logger         *slog.Logger
	upgrader       websocket.Upgrader
	allowedOrigins []string
}

// NewWsHandler 构造 WebSocket 处理器。
func NewWsHandler(redisClient *redis.Client, logger *slog.Logger) *WsHandler {
	h := &WsHandler{
		redisClient: redisClient,
		logger:      logger,
	}
	h.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			if len(h.allowedOrigins) == 0 {
				u, err := url.Parse(origin)
				if err != nil {
					return false
				}
				return strings.EqualFold(u.Host, r.Host)
			}
			for _, allowed := range h.allowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}
	return h
}

// wsSubscribeMessage 是客户端发送的首条消息，声明要订阅的草稿。
type wsSubscribeMessage struct {
	Type    string `json:"type"`
	DraftID uint   `json:"draftId"`
}

// HandleConnection 负责升级连接并启动读写循环。
// 客户端须在首条消息里发送 {"type":"subscribe","draftId":N}，
// 之后该草稿的抽取与导出完成通知会按原样转发。
func (h *WsHandler) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("upgrade websocket failed", slog.Any("error", err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	baseLog := h.logger.With(
		slog.String("client_ip", c.ClientIP()),
	)

	draftIDCh := make(chan uint, 1)
	errCh := make(chan error, 1)

	go h.readLoop(ctx, conn, draftIDCh, errCh, cancel)

	var draftID uint
	select {
	case <-ctx.Done():
		return
	case err := <-errCh:
		if err != nil {
			baseLog.Warn("websocket subscribe handshake failed", slog.Any("error", err))
		}
		return
	case draftID = <-draftIDCh:
	}

	draftLog := baseLog.With(slog.Uint64("draft_id", uint64(draftID)))
	go h.subscribeLoop(ctx, conn, draftID, errCh, cancel, draftLog)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			draftLog.Info("websocket connection closed", slog.Any("error", err))
		} else {
			draftLog.Info("websocket connection closed")
		}
	}
}

func (h *WsHandler) readLoop(
	ctx context.Context,
	conn *websocket.Conn,
	draftIDCh chan<- uint,
	errCh chan<- error,
	cancel context.CancelFunc,
) {
	subscribed := false

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		_, message, err := conn.ReadMessage()
		if err != nil {
			writeClose(conn, websocket.CloseAbnormalClosure, "read error")
			errCh <- fmt.Errorf("read message: %w", err)
			cancel()
			return
		}

		if !subscribed {
			var sub wsSubscribeMessage
			if err := json.Unmarshal(message, &sub); err != nil {
				writeClose(conn, websocket.ClosePolicyViolation, "invalid subscribe payload")
				errCh <- fmt.Errorf("decode subscribe payload: %w", err)
				cancel()
				return
			}
			if sub.Type != "subscribe" || sub.DraftID == 0 {
				writeClose(conn, websocket.ClosePolicyViolation, "subscribe required")
				errCh <- fmt.Errorf("invalid subscribe message")
				cancel()
				return
			}

			subscribed = true
			draftIDCh <- sub.DraftID
			continue
		}

		// 握手之后无需处理额外消息，保持循环以检测客户端断开。
	}
}

func writeClose(conn *websocket.Conn, code int, text string) {
	deadline := time.Now().Add(5 * time.Second)
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), deadline)
}

func (h *WsHandler) subscribeLoop(
	ctx context.Context,
	conn *websocket.Conn,
	draftID uint,
	errCh chan<- error,
	cancel context.CancelFunc,
	log *slog.Logger,
) {
	channel := fmt.Sprintf("draft_notify:%d", draftID)
	pubsub := h.redisClient.Subscribe(ctx, channel)
	defer pubsub.Close()

	log.Info("subscribed to redis channel", slog.String("channel", channel))

	ch := pubsub.Channel()
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				errCh <- fmt.Errorf("pubsub channel closed")
				cancel()
				return
			}

			log.Info("forwarding message to client", slog.String("channel", channel))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				errCh <- fmt.Errorf("write message: %w", err)
				cancel()
				return
			}
		case <-ticker.C:
			deadline := time.Now().Add(5 * time.Second)
			if err := conn.WriteControl(websocket.PingMessage, []byte("ping"), deadline); err != nil {
				errCh <- fmt.Errorf("write ping: %w", err)
				cancel()
				return
			}
		}
	}
}
