// Package remediation implements the storage-class remediation pipeline:
// match PVCs by storage class, resolve the pods that mount them, filter by
// controller ownership, and delete (or simulate deleting) the eligible pods.
//
// All state is request-scoped. Every run starts from fresh cluster listings;
// nothing is cached between requests.
package remediation

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ObjectKey identifies a namespaced cluster object.
type ObjectKey struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
}

// String returns the conventional namespace/name form.
func (k ObjectKey) String() string {
	return k.Namespace + "/" + k.Name
}

// Action is the per-pod outcome of a remediation run.
type Action string

const (
	// ActionDeleted means the delete call succeeded, or the pod was already
	// gone (the remediation goal is satisfied either way).
	ActionDeleted Action = "deleted"

	// ActionSkippedDryRun means the pod would have been deleted but the run
	// was in dry-run mode; no delete call was issued.
	ActionSkippedDryRun Action = "skipped-dry-run"

	// ActionSkippedUncontrolled means the pod has no controller owner and
	// deleting uncontrolled pods is disabled, so nothing would recreate it.
	ActionSkippedUncontrolled Action = "skipped-uncontrolled"

	// ActionFailed means the delete call failed; PodResult.Error has detail.
	ActionFailed Action = "failed"
)

// Candidate is a resolved pod carrying the owner metadata needed by the
// ownership filter.
type Candidate struct {
	Key    ObjectKey
	Owners []metav1.OwnerReference
}

// PodResult reports what happened to one pod.
type PodResult struct {
	Pod    ObjectKey `json:"pod"`
	Action Action    `json:"action"`
	Error  string    `json:"error,omitempty"`
}

// Outcome is the full report for one remediation run.
type Outcome struct {
	DryRun      bool        `json:"dry_run"`
	MatchedPVCs int         `json:"matched_pvcs"`
	Results     []PodResult `json:"results"`
	Deleted     int         `json:"deleted"`
	Skipped     int         `json:"skipped"`
	Failed      int         `json:"failed"`
}
