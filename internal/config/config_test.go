package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AUTH_BEARER_TOKEN", "test-secret")
	t.Setenv("REMEDIATION_STORAGE_CLASSES", "fast-ssd")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 30s", cfg.Server.ReadTimeout)
	}
	if cfg.K8s.OperationTimeout != 30*time.Second {
		t.Errorf("K8s.OperationTimeout = %v, want 30s", cfg.K8s.OperationTimeout)
	}
	if cfg.K8s.DeleteConcurrency != 8 {
		t.Errorf("K8s.DeleteConcurrency = %d, want 8", cfg.K8s.DeleteConcurrency)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
	if cfg.Remediation.DryRun {
		t.Error("Remediation.DryRun = true, want false by default")
	}
	if cfg.Remediation.DeleteUncontrolled {
		t.Error("Remediation.DeleteUncontrolled = true, want false by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REMEDIATION_STORAGE_CLASSES", "fast-ssd,local-nvme")
	t.Setenv("REMEDIATION_DRY_RUN", "true")
	t.Setenv("SERVER_PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if !cfg.Remediation.DryRun {
		t.Error("Remediation.DryRun = false, want true")
	}
	if len(cfg.Remediation.StorageClasses) != 2 {
		t.Fatalf("StorageClasses = %v, want comma list split into 2", cfg.Remediation.StorageClasses)
	}
}

func TestLoad_MissingBearerTokenFails(t *testing.T) {
	t.Setenv("AUTH_BEARER_TOKEN", "")
	t.Setenv("REMEDIATION_STORAGE_CLASSES", "fast-ssd")

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want bearer token validation failure")
	}
}

func TestLoad_EmptyStorageClassesFails(t *testing.T) {
	t.Setenv("AUTH_BEARER_TOKEN", "test-secret")
	t.Setenv("REMEDIATION_STORAGE_CLASSES", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want storage class validation failure")
	}
}

func TestRemediationConfig_StorageClassSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		classes []string
		want    []string
	}{
		{"dedup", []string{"fast-ssd", "fast-ssd"}, []string{"fast-ssd"}},
		{"trim", []string{" fast-ssd ", "local-nvme"}, []string{"fast-ssd", "local-nvme"}},
		{"blank entries dropped", []string{"fast-ssd", "", "  "}, []string{"fast-ssd"}},
		{"case sensitive", []string{"fast-ssd", "Fast-SSD"}, []string{"fast-ssd", "Fast-SSD"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := RemediationConfig{StorageClasses: tc.classes}.StorageClassSet()
			if len(got) != len(tc.want) {
				t.Fatalf("StorageClassSet() = %v, want %v", got, tc.want)
			}
			for _, name := range tc.want {
				if _, ok := got[name]; !ok {
					t.Errorf("StorageClassSet() missing %q", name)
				}
			}
		})
	}
}
