package devserver

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"time"
)

// stopTimeout bounds how long a stopping process may linger before it is
// killed outright.
const stopTimeout = 5 * time.Second

// Runner manages the application subprocess for the development launcher.
// It spawns the target through the Go toolchain, forwards its output, and
// restarts it when asked.
type Runner struct {
	target string
	env    []string
	logger *slog.Logger

	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewRunner creates a runner for the given package target (e.g. "./cmd/app").
// Entries in env are appended to the inherited process environment.
func NewRunner(target string, env []string, logger *slog.Logger) *Runner {
	return &Runner{
		target: target,
		env:    env,
		logger: logger.With("component", "runner"),
	}
}

// Start spawns the subprocess. Returns an error if one is already running.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cmd != nil {
		return errors.New("subprocess is already running")
	}

	cmd := exec.Command("go", "run", r.target)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), r.env...)

	if err := cmd.Start(); err != nil {
		return err
	}

	r.cmd = cmd
	r.logger.InfoContext(ctx, "Subprocess started", "target", r.target, "pid", cmd.Process.Pid)
	return nil
}

// Restart stops the current subprocess and spawns a fresh one.
func (r *Runner) Restart(ctx context.Context) error {
	if err := r.Stop(); err != nil {
		return err
	}
	return r.Start(ctx)
}

// Stop interrupts the subprocess and waits for it to exit. The interrupt
// gives the process a chance to shut down cleanly, escalating to a kill
// after stopTimeout. Stopping an already-stopped runner is a no-op.
func (r *Runner) Stop() error {
	r.mu.Lock()
	cmd := r.cmd
	r.cmd = nil
	r.mu.Unlock()

	if cmd == nil {
		return nil
	}

	if err := cmd.Process.Signal(os.Interrupt); err != nil {
		// Already gone, collect the exit status.
		_ = cmd.Wait()
		return nil
	}

	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(stopTimeout):
		r.logger.Warn("Subprocess did not exit in time, killing", "pid", cmd.Process.Pid)
		_ = cmd.Process.Kill()
		<-done
	}

	r.logger.Info("Subprocess stopped", "target", r.target)
	return nil
}
