// Package cluster abstracts access to the Kubernetes API.
//
// The remediation pipeline depends only on the Accessor interface; the
// client-go binding lives here and is created at the composition root.
package cluster

import (
	"context"

	corev1 "k8s.io/api/core/v1"
)

// Accessor is the narrow cluster capability the pipeline consumes.
// Implementations must bound every call by a timeout.
type Accessor interface {
	// ListPersistentVolumeClaims returns a fresh cluster-wide PVC listing.
	ListPersistentVolumeClaims(ctx context.Context) ([]corev1.PersistentVolumeClaim, error)

	// ListPods returns a fresh cluster-wide listing of running pods.
	ListPods(ctx context.Context) ([]corev1.Pod, error)

	// DeletePod deletes one pod. Errors are returned raw; callers classify
	// NotFound themselves (the already-gone policy belongs to remediation).
	DeletePod(ctx context.Context, namespace, name string) error

	// Ping performs a cheap read to verify the API server is reachable.
	Ping(ctx context.Context) error
}
