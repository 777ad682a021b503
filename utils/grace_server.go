package utils

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	serverReadTimeout  = 60 * time.Second
	serverWriteTimeout = 60 * time.Second
	shutdownTimeout    = 30 * time.Second

	gracefulEnvKey = "IS_GRACEFUL"
	gracefulEnv    = gracefulEnvKey + "=1"
	// Listener fd inherited by the restarted child: stdin/out/err are 0-2.
	gracefulListenerFD = 3
)

// graceServer wraps http.Server with zero-downtime restart. SIGTERM
// drains and stops; SIGUSR2 forks a replacement that inherits the
// listener, then drains the old process.
type graceServer struct {
	*http.Server

	listener     net.Listener
	inherited    bool
	signals      chan os.Signal
	shutdownDone chan struct{}
}

// GraceServer serves handler on addr until SIGTERM, restarting in place
// on SIGUSR2.
func GraceServer(addr string, handler http.Handler) error {
	srv := &graceServer{
		Server: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  serverReadTimeout,
			WriteTimeout: serverWriteTimeout,
		},
		inherited:    os.Getenv(gracefulEnvKey) != "",
		signals:      make(chan os.Signal, 1),
		shutdownDone: make(chan struct{}),
	}

	ln, err := srv.acquireListener(addr)
	if err != nil {
		return err
	}
	srv.listener = ln

	go srv.handleSignals()
	serveErr := srv.Serve(srv.listener)
	// Serve returns as soon as the listener closes; wait for in-flight
	// requests to drain before exiting.
	<-srv.shutdownDone
	return serveErr
}

// acquireListener binds a fresh socket, or adopts the one passed down
// by the parent process during a graceful restart.
func (srv *graceServer) acquireListener(addr string) (net.Listener, error) {
	if srv.inherited {
		ln, err := net.FileListener(os.NewFile(gracefulListenerFD, ""))
		if err != nil {
			return nil, fmt.Errorf("inherit listener: %w", err)
		}
		return ln, nil
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	return ln, nil
}

func (srv *graceServer) handleSignals() {
	signal.Notify(srv.signals, syscall.SIGTERM, syscall.SIGUSR2)

	for sig := range srv.signals {
		switch sig {
		case syscall.SIGTERM:
			Sugar.Info("received SIGTERM, shutting down HTTP server")
			srv.drainAndStop()
		case syscall.SIGUSR2:
			Sugar.Info("received SIGUSR2, restarting HTTP server")
			pid, err := srv.forkSuccessor()
			if err != nil {
				Sugar.Errorf("restart failed, continuing to serve: %v", err)
				continue
			}
			Sugar.Infof("successor started with pid %d, draining old server", pid)
			srv.drainAndStop()
		}
	}
}

func (srv *graceServer) drainAndStop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		Sugar.Errorf("HTTP server shutdown error: %v", err)
	} else {
		Sugar.Info("HTTP server shutdown complete")
	}
	close(srv.shutdownDone)
}

// forkSuccessor re-execs the current binary with the listener socket as
// fd 3 and the graceful marker in its environment.
func (srv *graceServer) forkSuccessor() (int, error) {
	tcpLn, ok := srv.listener.(*net.TCPListener)
	if !ok {
		return 0, fmt.Errorf("listener is %T, not *net.TCPListener", srv.listener)
	}
	file, err := tcpLn.File()
	if err != nil {
		return 0, fmt.Errorf("dup listener fd: %w", err)
	}

	env := make([]string, 0, len(os.Environ())+1)
	for _, e := range os.Environ() {
		if e != gracefulEnv {
			env = append(env, e)
		}
	}
	env = append(env, gracefulEnv)

	pid, err := syscall.ForkExec(os.Args[0], os.Args, &syscall.ProcAttr{
		Env:   env,
		Files: []uintptr{os.Stdin.Fd(), os.Stdout.Fd(), os.Stderr.Fd(), file.Fd()},
	})
	if err != nil {
		return 0, fmt.Errorf("forkexec: %w", err)
	}
	return pid, nil
}
