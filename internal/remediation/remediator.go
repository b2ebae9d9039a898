package remediation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"csi-remedy.io/remediator/internal/cluster"
	"csi-remedy.io/remediator/internal/pkg/logger"
	"csi-remedy.io/remediator/internal/pkg/worker"
)

// Options are the policy knobs for a Remediator, fixed at startup.
type Options struct {
	// StorageClasses is the configured class set; must be non-empty
	// (enforced by config validation, not per request).
	StorageClasses map[string]struct{}

	// DryRun computes and reports decisions without issuing deletes.
	DryRun bool

	// DeleteUncontrolled also deletes pods that have no controller owner.
	DeleteUncontrolled bool
}

// Remediator runs the full pipeline for one request:
// list PVCs and pods, match by storage class, resolve mounting pods,
// filter by ownership, then execute deletions.
type Remediator struct {
	accessor cluster.Accessor
	exec     *Executor
	opts     Options
}

// New creates a Remediator. The accessor and pool are shared across requests;
// everything else is recomputed per run.
func New(accessor cluster.Accessor, pool *worker.Pool, opts Options) *Remediator {
	return &Remediator{
		accessor: accessor,
		exec:     NewExecutor(accessor, pool),
		opts:     opts,
	}
}

// Remediate performs one remediation run against fresh cluster listings.
// A listing failure aborts the run with no partial outcome; individual
// deletion failures are recorded per pod and never escalate.
func (r *Remediator) Remediate(ctx context.Context) (*Outcome, error) {
	pvcs, err := r.accessor.ListPersistentVolumeClaims(ctx)
	if err != nil {
		return nil, fmt.Errorf("list persistent volume claims: %w", err)
	}
	pods, err := r.accessor.ListPods(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", err)
	}

	matched := MatchStorageClasses(r.opts.StorageClasses, pvcs)
	logger.Info("Matched PVCs by storage class",
		zap.Int("pvcs", len(pvcs)),
		zap.Int("matched", len(matched)),
	)

	candidates := ResolvePods(matched, pods)
	eligible, skipped := FilterOwnership(candidates, r.opts.DeleteUncontrolled)
	logger.Info("Resolved pods mounting matched PVCs",
		zap.Int("pods", len(pods)),
		zap.Int("candidates", len(candidates)),
		zap.Int("eligible", len(eligible)),
		zap.Int("skipped_uncontrolled", len(skipped)),
	)

	executed := r.exec.Execute(ctx, eligible, r.opts.DryRun)

	// Report in candidate (listing) order: skipped and executed interleave.
	byKey := make(map[ObjectKey]PodResult, len(executed))
	for _, res := range executed {
		byKey[res.Pod] = res
	}
	for _, cand := range skipped {
		byKey[cand.Key] = PodResult{Pod: cand.Key, Action: ActionSkippedUncontrolled}
	}

	outcome := &Outcome{
		DryRun:      r.opts.DryRun,
		MatchedPVCs: len(matched),
		Results:     make([]PodResult, 0, len(candidates)),
	}
	for _, cand := range candidates {
		res := byKey[cand.Key]
		outcome.Results = append(outcome.Results, res)
		switch res.Action {
		case ActionDeleted:
			outcome.Deleted++
		case ActionFailed:
			outcome.Failed++
		default:
			outcome.Skipped++
		}
	}

	logger.Info("Remediation run complete",
		zap.Bool("dry_run", outcome.DryRun),
		zap.Int("deleted", outcome.Deleted),
		zap.Int("skipped", outcome.Skipped),
		zap.Int("failed", outcome.Failed),
	)
	return outcome, nil
}
