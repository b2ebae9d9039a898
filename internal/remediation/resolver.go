package remediation

import (
	corev1 "k8s.io/api/core/v1"
)

// ResolvePods returns the pods that mount at least one matched PVC through a
// persistentVolumeClaim volume source. PVCs are namespace-scoped, so a claim
// name only resolves within the pod's own namespace. Non-PVC volume sources
// (config maps, secrets, emptyDir, ...) are ignored.
//
// Each pod appears at most once, no matter how many of its volumes match.
// Order follows the input pod listing, so downstream reports are stable.
func ResolvePods(matched map[ObjectKey]struct{}, pods []corev1.Pod) []Candidate {
	var candidates []Candidate
	for _, pod := range pods {
		if !mountsMatchedPVC(matched, &pod) {
			continue
		}
		candidates = append(candidates, Candidate{
			Key:    ObjectKey{Namespace: pod.Namespace, Name: pod.Name},
			Owners: pod.OwnerReferences,
		})
	}
	return candidates
}

func mountsMatchedPVC(matched map[ObjectKey]struct{}, pod *corev1.Pod) bool {
	for _, vol := range pod.Spec.Volumes {
		if vol.PersistentVolumeClaim == nil {
			continue
		}
		key := ObjectKey{Namespace: pod.Namespace, Name: vol.PersistentVolumeClaim.ClaimName}
		if _, ok := matched[key]; ok {
			return true
		}
	}
	return false
}
