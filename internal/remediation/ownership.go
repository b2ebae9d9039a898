package remediation

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Controlled reports whether any owner reference is flagged as the managing
// controller. The controller's kind is irrelevant: a ReplicaSet, DaemonSet,
// StatefulSet, Job or any custom controller all count the same, because each
// of them will recreate the pod after deletion.
func Controlled(owners []metav1.OwnerReference) bool {
	for _, ref := range owners {
		if ref.Controller != nil && *ref.Controller {
			return true
		}
	}
	return false
}

// FilterOwnership partitions candidates into pods eligible for deletion and
// pods to skip. An uncontrolled pod would not be recreated after deletion,
// so it is only eligible when deleteUncontrolled is set.
func FilterOwnership(candidates []Candidate, deleteUncontrolled bool) (eligible, skipped []Candidate) {
	if deleteUncontrolled {
		return candidates, nil
	}
	for _, cand := range candidates {
		if Controlled(cand.Owners) {
			eligible = append(eligible, cand)
		} else {
			skipped = append(skipped, cand)
		}
	}
	return eligible, skipped
}
