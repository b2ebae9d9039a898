package cluster

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// runningSelector restricts pod listings to running pods; deleting a pod
// that is already terminating or pending does not advance remediation.
const runningSelector = "status.phase=Running"

// Client implements Accessor on top of a client-go clientset.
type Client struct {
	clientset kubernetes.Interface
	timeout   time.Duration
}

// NewClient wraps an existing clientset. Each call is bounded by timeout.
func NewClient(clientset kubernetes.Interface, timeout time.Duration) *Client {
	return &Client{clientset: clientset, timeout: timeout}
}

// Connect builds a clientset from the in-cluster service account, falling
// back to a kubeconfig file (explicit path or default loading rules).
func Connect(kubeconfigPath string, timeout time.Duration) (*Client, error) {
	cfg, err := rest.InClusterConfig()
	if err != nil {
		cfg, err = clientcmd.BuildConfigFromFlags("", kubeconfigPath)
		if err != nil {
			return nil, fmt.Errorf("build cluster config: %w", err)
		}
	}

	clientset, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build clientset: %w", err)
	}
	return NewClient(clientset, timeout), nil
}

// ListPersistentVolumeClaims lists PVCs across all namespaces.
func (c *Client) ListPersistentVolumeClaims(ctx context.Context) ([]corev1.PersistentVolumeClaim, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	list, err := c.clientset.CoreV1().PersistentVolumeClaims(metav1.NamespaceAll).
		List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

// ListPods lists running pods across all namespaces.
func (c *Client) ListPods(ctx context.Context) ([]corev1.Pod, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	list, err := c.clientset.CoreV1().Pods(metav1.NamespaceAll).
		List(ctx, metav1.ListOptions{FieldSelector: runningSelector})
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

// DeletePod deletes one pod. The error is returned unclassified.
func (c *Client) DeletePod(ctx context.Context, namespace, name string) error {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	return c.clientset.CoreV1().Pods(namespace).Delete(ctx, name, metav1.DeleteOptions{})
}

// Ping issues a minimal list to verify API server reachability.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	_, err := c.clientset.CoreV1().Pods(metav1.NamespaceAll).
		List(ctx, metav1.ListOptions{Limit: 1})
	return err
}

func (c *Client) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}
