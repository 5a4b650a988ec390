package app

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/searchktools/micro-http/config"
	"github.com/searchktools/micro-http/core"
)

// App is the application instance wrapping the HTTP/1.0 engine
type App struct {
	cfg    *config.Config
	engine *core.Engine
}

// New creates an application instance
func New(cfg *config.Config) *App {
	engine := core.NewEngine()
	engine.SetReadTimeout(time.Duration(cfg.ReadTimeout) * time.Second)
	engine.SetWriteTimeout(time.Duration(cfg.WriteTimeout) * time.Second)
	engine.SetMaxConnections(cfg.MaxConns)

	return &App{
		cfg:    cfg,
		engine: engine,
	}
}

// Engine returns the underlying engine for handler registration
func (a *App) Engine() *core.Engine {
	return a.engine
}

// NewWithEngine creates an application instance with a pre-configured engine
func NewWithEngine(cfg *config.Config, engine *core.Engine) *App {
	return &App{
		cfg:    cfg,
		engine: engine,
	}
}

// Run starts the application and blocks until shutdown
func (a *App) Run() {
	go a.awaitSignal()

	addr := fmt.Sprintf(":%d", a.cfg.Port)
	log.Printf("HTTP/1.0 server starting on port %d [%s]", a.cfg.Port, a.cfg.Env)

	if err := a.engine.Run(addr); err != nil && err != core.ErrServerClosed {
		log.Fatalf("Server startup failed: %v", err)
	}
}

func (a *App) awaitSignal() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("Signal received: %v. Shutting down...", sig)

	if err := a.engine.Close(); err != nil {
		log.Printf("Listener close failed: %v", err)
	}
}
