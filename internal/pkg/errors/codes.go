package errors

import "net/http"

// Machine-readable error codes returned by the HTTP surface.

// Auth error codes.
const (
	CodeUnauthorized = "UNAUTHORIZED"
)

// Remediation error codes.
const (
	// CodeClusterListFailed marks a LIST-phase failure: the PVC or pod
	// inventory could not be fetched, so no outcome can be computed.
	CodeClusterListFailed = "CLUSTER_LIST_FAILED"

	CodeInternal = "INTERNAL_ERROR"
)

// ErrClusterListFailed wraps a LIST-phase failure as a 502: the request
// itself was valid but the upstream cluster API did not answer.
func ErrClusterListFailed(err error) *AppError {
	return Wrap(err, CodeClusterListFailed, "cluster inventory listing failed", http.StatusBadGateway)
}
