// Package app is the composition root: bootstrap stays orchestration-only.
package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"csi-remedy.io/remediator/internal/api/handlers"
	"csi-remedy.io/remediator/internal/cluster"
	"csi-remedy.io/remediator/internal/config"
	"csi-remedy.io/remediator/internal/pkg/worker"
	"csi-remedy.io/remediator/internal/remediation"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	Pool   *worker.Pool
}

// Bootstrap initializes all dependencies using manual DI.
func Bootstrap(cfg *config.Config) (*Application, error) {
	accessor, err := cluster.Connect(cfg.K8s.Kubeconfig, cfg.K8s.OperationTimeout)
	if err != nil {
		return nil, fmt.Errorf("connect to cluster: %w", err)
	}

	pool, err := worker.NewPool("k8s-delete", cfg.K8s.DeleteConcurrency)
	if err != nil {
		return nil, fmt.Errorf("init worker pool: %w", err)
	}

	remediator := remediation.New(accessor, pool, remediation.Options{
		StorageClasses:     cfg.Remediation.StorageClassSet(),
		DryRun:             cfg.Remediation.DryRun,
		DeleteUncontrolled: cfg.Remediation.DeleteUncontrolled,
	})

	server := handlers.NewServer(remediator, accessor)

	return &Application{
		Config: cfg,
		Router: newRouter(cfg.Auth.BearerToken, server),
		Pool:   pool,
	}, nil
}

// Shutdown releases application resources.
func (a *Application) Shutdown() {
	a.Pool.Shutdown()
}
