// Package app wires the proxy runtime: backend connections, the friends
// orchestrator, the session registry, and the inbound message gRPC lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/emberhollow/proxy/api/grpc/friendv1"
	"github.com/emberhollow/proxy/api/grpc/playerv1"
	"github.com/emberhollow/proxy/api/grpc/presencev1"
	"github.com/emberhollow/proxy/api/grpc/proxymsgv1"
	"github.com/emberhollow/proxy/internal/platform/async"
	"github.com/emberhollow/proxy/internal/platform/config"
	platformgrpc "github.com/emberhollow/proxy/internal/platform/grpc"
	"github.com/emberhollow/proxy/internal/platform/grpc/pagination"
	"github.com/emberhollow/proxy/internal/platform/timeouts"
	"github.com/emberhollow/proxy/internal/proxy/eventbus"
	"github.com/emberhollow/proxy/internal/proxy/friends"
	"github.com/emberhollow/proxy/internal/proxy/i18n"
	"github.com/emberhollow/proxy/internal/proxy/identity"
	"github.com/emberhollow/proxy/internal/proxy/messenger"
	"github.com/emberhollow/proxy/internal/proxy/session"
	"github.com/emberhollow/proxy/internal/storage/sqlite"
	"github.com/emberhollow/proxy/internal/telemetry"
)

type serverEnv struct {
	PlayerAddr      string `env:"EMBERHOLLOW_PLAYER_ADDR" envDefault:"localhost:8081"`
	FriendAddr      string `env:"EMBERHOLLOW_FRIEND_ADDR" envDefault:"localhost:8082"`
	PresenceAddr    string `env:"EMBERHOLLOW_PRESENCE_ADDR" envDefault:"localhost:8083"`
	TelemetryDBPath string `env:"EMBERHOLLOW_PROXY_TELEMETRY_DB_PATH"`
	// Locale lists preferred language codes, first match wins.
	Locale     []string `env:"EMBERHOLLOW_PROXY_LOCALE" envSeparator:","`
	Workers    int      `env:"EMBERHOLLOW_PROXY_WORKERS"`
	QueueDepth int      `env:"EMBERHOLLOW_PROXY_QUEUE_DEPTH"`
	PageSize   int      `env:"EMBERHOLLOW_PROXY_PAGE_SIZE" envDefault:"8"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.TelemetryDBPath) == "" {
		cfg.TelemetryDBPath = filepath.Join("data", "proxy-telemetry.db")
	}
	return cfg
}

// Server hosts the proxy's inbound message gRPC API and owns the friends
// runtime wiring.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *sqlite.Store
	pool       *async.Pool
	conns      []*grpc.ClientConn

	sessions *session.Registry
	router   *friends.Router
}

// New creates a configured proxy server listening on the provided port.
func New(ctx context.Context, port int) (*Server, error) {
	return NewWithAddr(ctx, fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured proxy server for the provided address. It
// dials the player, friend, and presence backends and waits for each to
// report healthy.
func NewWithAddr(ctx context.Context, addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	srvEnv := loadServerEnv()

	store, err := openTelemetryStore(srvEnv.TelemetryDBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	srv := &Server{listener: listener, store: store}

	playerConn, err := srv.dialBackend(ctx, "player", srvEnv.PlayerAddr)
	if err != nil {
		srv.Close()
		return nil, err
	}
	friendConn, err := srv.dialBackend(ctx, "friend", srvEnv.FriendAddr)
	if err != nil {
		srv.Close()
		return nil, err
	}
	presenceConn, err := srv.dialBackend(ctx, "presence", srvEnv.PresenceAddr)
	if err != nil {
		srv.Close()
		return nil, err
	}

	srv.sessions = session.NewRegistry()
	cache := friends.NewCache()
	// A player's cached friend set lives exactly as long as their session.
	srv.sessions.OnLeave(cache.Drop)

	srv.pool = async.NewPool(srvEnv.Workers, srvEnv.QueueDepth)
	printer := i18n.Printer(i18n.Match(srvEnv.Locale...))
	formatter := friends.NewFormatter(printer)
	orchestrator := friends.NewOrchestrator(friends.OrchestratorConfig{
		Resolver:  identity.NewResolver(playerv1.NewPlayerServiceClient(playerConn)),
		Friends:   friendv1.NewFriendServiceClient(friendConn),
		Presence:  presencev1.NewPresenceServiceClient(presenceConn),
		Cache:     cache,
		Formatter: formatter,
		Executor:  srv.pool,
		Sessions:  srv.sessions,
		Telemetry: telemetry.NewEmitter(store),
		PageSize:  pagination.PageSizeConfig{Default: srvEnv.PageSize, Max: 50},
	})
	srv.router = friends.NewRouter(orchestrator, formatter, srv.sessions)

	bus := eventbus.New()
	messenger.NewDeliverer(srv.sessions, printer).Register(bus)

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	proxymsgv1.RegisterProxyMessageServiceServer(grpcServer, messenger.NewReceiver(bus))
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("proxymsg.v1.ProxyMessageService", grpc_health_v1.HealthCheckResponse_SERVING)
	srv.grpcServer = grpcServer
	srv.health = healthServer

	return srv, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Join registers a connected player session.
func (s *Server) Join(id uuid.UUID, username string, sink session.Sink) {
	s.sessions.Join(id, username, sink)
}

// Leave removes a player session and drops their cached friend set.
func (s *Server) Leave(id uuid.UUID) {
	s.sessions.Leave(id)
}

// DispatchFriendCommand routes the tokens following the friend command word
// for a connected player.
func (s *Server) DispatchFriendCommand(id uuid.UUID, args []string) {
	username, _ := s.sessions.Username(id)
	s.router.Dispatch(id, username, args)
}

// Run creates and serves a proxy server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(ctx, port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("proxy server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases proxy server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.pool != nil {
		s.pool.Close()
	}
	for _, conn := range s.conns {
		_ = conn.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close telemetry store: %v", err)
		}
	}
}

func (s *Server) dialBackend(ctx context.Context, name, addr string) (*grpc.ClientConn, error) {
	conn, err := platformgrpc.DialWithHealth(ctx, nil, addr, timeouts.GRPCDial, log.Printf, platformgrpc.DefaultClientDialOptions()...)
	if err != nil {
		return nil, fmt.Errorf("dial %s service at %s: %w", name, addr, err)
	}
	s.conns = append(s.conns, conn)
	return conn, nil
}

func openTelemetryStore(path string) (*sqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open telemetry sqlite store: %w", err)
	}
	return store, nil
}
