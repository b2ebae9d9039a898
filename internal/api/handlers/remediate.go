package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "csi-remedy.io/remediator/internal/pkg/errors"
)

// PostRemediation handles POST /api/v1/remediations.
//
// The response is 200 with the per-pod outcome even when individual deletes
// failed: the request itself completed and the caller reads the failures
// from the body. Only a LIST-phase failure yields an error status, because
// no outcome can be computed without the PVC/pod inventory.
func (s *Server) PostRemediation(c *gin.Context) {
	outcome, err := s.remediator.Remediate(c.Request.Context())
	if err != nil {
		_ = c.Error(apperrors.ErrClusterListFailed(err))
		return
	}
	c.JSON(http.StatusOK, outcome)
}
