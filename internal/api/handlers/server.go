// Package handlers implements the HTTP handlers for the remediator API.
//
// Route registration is handled by the router in internal/app; handlers do
// not register their own routes.
package handlers

import (
	"context"

	"csi-remedy.io/remediator/internal/cluster"
	"csi-remedy.io/remediator/internal/remediation"
)

// RemediationService runs one remediation pipeline per call.
type RemediationService interface {
	Remediate(ctx context.Context) (*remediation.Outcome, error)
}

// Server holds the handler dependencies.
type Server struct {
	remediator RemediationService
	accessor   cluster.Accessor
}

// NewServer creates a Server.
func NewServer(remediator RemediationService, accessor cluster.Accessor) *Server {
	return &Server{
		remediator: remediator,
		accessor:   accessor,
	}
}
