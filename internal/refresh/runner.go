package refresh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"

	"StockRadar/internal/model"
)

// Default crawler timeouts: a full price pass covers ~350 instruments.
const (
	DefaultPriceTimeout = 600 * time.Second
	DefaultNewsTimeout  = 300 * time.Second
)

const stderrLimit = 500

// Crawler is a named external-process collaborator with an explicit
// contract: command, arguments, working directory and a bounded timeout.
// A failed or timed-out run degrades to a structured result, never a
// propagated crash.
type Crawler struct {
	Name    string
	Command string
	Args    []string
	Dir     string
	Timeout time.Duration
}

// Run executes the crawler and returns its structured outcome.
func (c Crawler) Run(ctx context.Context) model.RefreshResult {
	if c.Command == "" {
		return model.RefreshResult{Message: fmt.Sprintf("%s crawler not configured", c.Name)}
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout(c.Name)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.Command, c.Args...)
	cmd.Dir = c.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	log.Printf("[INFO] running %s crawler: %s %s", c.Name, c.Command, strings.Join(c.Args, " "))
	err := cmd.Run()
	if err == nil {
		return model.RefreshResult{Success: true, Message: fmt.Sprintf("%s crawler finished", c.Name)}
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return model.RefreshResult{Message: fmt.Sprintf("%s refresh timed out", c.Name)}
	}
	return model.RefreshResult{
		Message: fmt.Sprintf("%s crawler failed: %v: %s", c.Name, err, truncate(stderr.String(), stderrLimit)),
	}
}

// defaultTimeout picks the fallback bound for a crawler built without an
// explicit timeout.
func defaultTimeout(name string) time.Duration {
	if name == "news" {
		return DefaultNewsTimeout
	}
	return DefaultPriceTimeout
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
