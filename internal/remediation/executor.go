package remediation

import (
	"context"
	"sync"

	"go.uber.org/zap"
	apierrors "k8s.io/apimachinery/pkg/api/errors"

	"csi-remedy.io/remediator/internal/cluster"
	"csi-remedy.io/remediator/internal/pkg/logger"
	"csi-remedy.io/remediator/internal/pkg/worker"
)

// Executor issues pod deletions for one remediation run. Deletes fan out on
// the shared worker pool; one pod's failure never aborts the batch.
type Executor struct {
	accessor cluster.Accessor
	pool     *worker.Pool
}

// NewExecutor creates an Executor backed by the given accessor and pool.
func NewExecutor(accessor cluster.Accessor, pool *worker.Pool) *Executor {
	return &Executor{accessor: accessor, pool: pool}
}

// Execute deletes every eligible pod at most once and returns one result per
// pod, in the input order. In dry-run mode no accessor call is made and every
// pod is reported as skipped-dry-run.
func (e *Executor) Execute(ctx context.Context, eligible []Candidate, dryRun bool) []PodResult {
	results := make([]PodResult, len(eligible))

	if dryRun {
		for i, cand := range eligible {
			results[i] = PodResult{Pod: cand.Key, Action: ActionSkippedDryRun}
		}
		return results
	}

	var wg sync.WaitGroup
	for i, cand := range eligible {
		i, cand := i, cand
		wg.Add(1)
		err := e.pool.Submit(ctx, func(ctx context.Context) {
			defer wg.Done()
			results[i] = e.deleteOne(ctx, cand)
		})
		if err != nil {
			// Submission failed (cancelled context or closed pool); the
			// task never ran, so settle its slot here.
			wg.Done()
			results[i] = PodResult{Pod: cand.Key, Action: ActionFailed, Error: err.Error()}
		}
	}
	wg.Wait()

	return results
}

func (e *Executor) deleteOne(ctx context.Context, cand Candidate) PodResult {
	err := e.accessor.DeletePod(ctx, cand.Key.Namespace, cand.Key.Name)
	switch {
	case err == nil:
		logger.Debug("Pod deleted", zap.String("pod", cand.Key.String()))
		return PodResult{Pod: cand.Key, Action: ActionDeleted}
	case apierrors.IsNotFound(err):
		// Already gone, likely deleted by an overlapping run. The goal
		// ("pod is gone") is satisfied, so this counts as success.
		logger.Debug("Pod already absent", zap.String("pod", cand.Key.String()))
		return PodResult{Pod: cand.Key, Action: ActionDeleted}
	default:
		logger.Warn("Pod deletion failed",
			zap.String("pod", cand.Key.String()),
			zap.Error(err),
		)
		return PodResult{Pod: cand.Key, Action: ActionFailed, Error: err.Error()}
	}
}
