package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/zeusync/impulse/internal/core/events/bus"
	"github.com/zeusync/impulse/internal/core/observability/log"
	"github.com/zeusync/impulse/internal/core/physics"
	"github.com/zeusync/impulse/pkg/encoding"
)

const (
	// DefaultSendBuffer is how many frames a client may lag behind before
	// frames are dropped for it.
	DefaultSendBuffer = 16
	writeTimeout      = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.send)
	})
}

// Streamer broadcasts world snapshots as binary msgpack frames to every
// websocket client connected on /ws.
type Streamer struct {
	logger log.Log
	codec  encoding.Codec[physics.Snapshot]

	mu      sync.Mutex
	clients map[*client]struct{}
	sub     bus.Subscription
	server  *http.Server
	dropped uint64
}

func NewStreamer(logger log.Log) *Streamer {
	return &Streamer{
		logger:  logger.Named("streamer"),
		codec:   encoding.Msgpack[physics.Snapshot]{},
		clients: make(map[*client]struct{}),
	}
}

// Attach forwards every physics.EventTick published on b to the clients.
func (s *Streamer) Attach(b bus.EventBus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sub != nil {
		return ErrAlreadyAttached
	}

	sub, err := b.Subscribe(physics.EventTick, func(e bus.Event) error {
		tick, ok := e.Data().(physics.TickEvent)
		if !ok {
			return fmt.Errorf("%w: %T", ErrInvalidMessage, e.Data())
		}
		return s.Broadcast(tick.Snapshot)
	})
	if err != nil {
		return err
	}
	s.sub = sub
	return nil
}

func (s *Streamer) Detach() error {
	s.mu.Lock()
	sub := s.sub
	s.sub = nil
	s.mu.Unlock()

	if sub == nil {
		return nil
	}
	return sub.Cancel()
}

// Broadcast encodes the snapshot once and queues it for every client. Slow
// clients lose frames instead of stalling the simulation.
func (s *Streamer) Broadcast(snapshot physics.Snapshot) error {
	frame, err := s.codec.Encode(snapshot)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.send <- frame:
		default:
			s.dropped++
		}
	}
	return nil
}

func (s *Streamer) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Dropped counts frames skipped because a client's buffer was full.
func (s *Streamer) Dropped() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

func (s *Streamer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// Start listens on addr in the background.
func (s *Streamer) Start(addr string) error {
	s.mu.Lock()
	if s.server != nil {
		s.mu.Unlock()
		return ErrServerAlreadyRunning
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %w", ErrListenerFailed, err)
	}
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: writeTimeout}
	s.server = srv
	s.mu.Unlock()

	s.logger.Info("streaming snapshots", log.String("addr", "ws://"+ln.Addr().String()+"/ws"))
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("stream server failed", log.Error(err))
		}
	}()
	return nil
}

// Stop shuts the listener down and disconnects every client.
func (s *Streamer) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv := s.server
	s.server = nil
	for c := range s.clients {
		delete(s.clients, c)
		c.close()
	}
	s.mu.Unlock()

	if srv == nil {
		return ErrServerNotRunning
	}
	return srv.Shutdown(ctx)
}

func (s *Streamer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", log.String("remote", r.RemoteAddr), log.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, DefaultSendBuffer)}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	s.logger.Debug("client connected", log.String("remote", conn.RemoteAddr().String()))

	go s.writeLoop(c)
	s.readLoop(c)
}

// readLoop only watches for the client going away; clients never send.
func (s *Streamer) readLoop(c *client) {
	defer s.disconnect(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Streamer) writeLoop(c *client) {
	defer c.conn.Close()
	for frame := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			s.logger.Debug("client write failed", log.String("remote", c.conn.RemoteAddr().String()), log.Error(err))
			s.disconnect(c)
			return
		}
	}
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeTimeout))
}

func (s *Streamer) disconnect(c *client) {
	s.mu.Lock()
	_, ok := s.clients[c]
	delete(s.clients, c)
	s.mu.Unlock()

	if ok {
		c.close()
		s.logger.Debug("client disconnected", log.String("remote", c.conn.RemoteAddr().String()))
	}
}
