package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NicoEre03/habit-tracker/internal/engine"
)

const DefaultLockWait = 10 * time.Second

// Server owns the HTTP dispatcher. A single lock serializes whole requests:
// every action reconciles and projects against the same store, so there is
// no finer-grained unit to guard.
type Server struct {
	svc      *engine.Service
	log      *slog.Logger
	lock     chan struct{}
	lockWait time.Duration
	now      func() time.Time
}

func New(svc *engine.Service, log *slog.Logger, lockWait time.Duration) *Server {
	if log == nil {
		log = slog.Default()
	}
	if lockWait <= 0 {
		lockWait = DefaultLockWait
	}
	s := &Server{
		svc:      svc,
		log:      log,
		lock:     make(chan struct{}, 1),
		lockWait: lockWait,
		now:      time.Now,
	}
	svc.OnReconcile = func(writes int) {
		reconcileWrites.Add(float64(writes))
		reconcileRuns.Inc()
	}
	return s
}

// acquire takes the global request lock, waiting at most lockWait. A timeout
// is reported to the caller instead of proceeding unguarded.
func (s *Server) acquire(ctx context.Context) bool {
	timer := time.NewTimer(s.lockWait)
	defer timer.Stop()
	select {
	case s.lock <- struct{}{}:
		return true
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	}
}

func (s *Server) release() {
	<-s.lock
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), s.logRequests())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/api", s.handleAction)
	return r
}

func (s *Server) Run(addr string) error {
	s.log.Info("listening", "addr", addr)
	return s.Router().Run(addr)
}
