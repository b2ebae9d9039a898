package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	t.Parallel()

	plain := New(CodeUnauthorized, "missing token", http.StatusUnauthorized)
	if got := plain.Error(); got != "UNAUTHORIZED: missing token" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := Wrap(stderrors.New("dial timeout"), CodeClusterListFailed, "listing failed", http.StatusBadGateway)
	if got := wrapped.Error(); got != "CLUSTER_LIST_FAILED: listing failed: dial timeout" {
		t.Errorf("Error() = %q", got)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("dial timeout")
	err := fmt.Errorf("request: %w", ErrClusterListFailed(cause))

	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		t.Fatal("errors.As failed to find AppError through wrapping")
	}
	if appErr.Code != CodeClusterListFailed {
		t.Errorf("Code = %q, want %q", appErr.Code, CodeClusterListFailed)
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is failed to reach the underlying cause")
	}
}

func TestErrClusterListFailed(t *testing.T) {
	t.Parallel()

	err := ErrClusterListFailed(stderrors.New("unreachable"))
	if err.HTTPStatus != http.StatusBadGateway {
		t.Errorf("HTTPStatus = %d, want 502", err.HTTPStatus)
	}
}

func TestIsAppError(t *testing.T) {
	t.Parallel()

	if _, ok := IsAppError(stderrors.New("plain")); ok {
		t.Error("IsAppError(plain) = true, want false")
	}
	if appErr, ok := IsAppError(Unauthorized(CodeUnauthorized, "no")); !ok || appErr.HTTPStatus != http.StatusUnauthorized {
		t.Errorf("IsAppError(AppError) = %+v, %v", appErr, ok)
	}
}
