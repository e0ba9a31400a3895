package health

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/apicommons/pkg/logger"
)

// Check states.
const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

// Readiness is the outcome of a readiness probe.
type Readiness struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
	// Failed lists the failing checks by name, sorted.
	Failed []string `json:"failed,omitempty"`
}

// Ready reports whether every check passed.
func (r Readiness) Ready() bool {
	return r.Status == StatusUp
}

// Err returns nil when ready and ErrNotReady naming the failed checks
// otherwise.
func (r Readiness) Err() error {
	if r.Ready() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNotReady, strings.Join(r.Failed, ", "))
}

// RunChecks runs every check concurrently, each bounded by timeout. Check
// errors are logged; the result only carries check states.
func RunChecks(ctx context.Context, log *slog.Logger, timeout time.Duration, checks ...Check) Readiness {
	errs := make([]error, len(checks))

	var g errgroup.Group
	for i, c := range checks {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			errs[i] = c.Fn(cctx)
			return nil
		})
	}
	_ = g.Wait()

	res := Readiness{Status: StatusUp, Checks: make(map[string]string, len(checks))}
	for i, c := range checks {
		if errs[i] == nil {
			res.Checks[c.Name] = StatusUp
			continue
		}
		res.Checks[c.Name] = StatusDown
		res.Failed = append(res.Failed, c.Name)
		res.Status = StatusDown
		if log != nil {
			log.WarnContext(ctx, "readiness check failed",
				slog.String("check", c.Name),
				logger.Error(errs[i]),
				logger.Component("health"),
			)
		}
	}
	slices.Sort(res.Failed)
	return res
}
