package remediation

import (
	corev1 "k8s.io/api/core/v1"
)

// MatchStorageClasses returns the identities of all PVCs whose
// spec.storageClassName is in the configured class set. A PVC with no
// storage class never matches. Class names are compared case-sensitively,
// exactly as the API server treats them.
func MatchStorageClasses(classes map[string]struct{}, pvcs []corev1.PersistentVolumeClaim) map[ObjectKey]struct{} {
	matched := make(map[ObjectKey]struct{})
	for _, pvc := range pvcs {
		sc := pvc.Spec.StorageClassName
		if sc == nil || *sc == "" {
			continue
		}
		if _, ok := classes[*sc]; !ok {
			continue
		}
		matched[ObjectKey{Namespace: pvc.Namespace, Name: pvc.Name}] = struct{}{}
	}
	return matched
}
