// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"

	"github.com/NVIDIA/la-clusterizer/pkg/defaults"
	"github.com/NVIDIA/la-clusterizer/pkg/header"
	"github.com/NVIDIA/la-clusterizer/pkg/k8s/client"
)

// ConfigMap data keys.
const (
	// DocumentKeyPrefix prefixes the key holding the serialized document:
	// document.json, document.yaml or document.txt.
	DocumentKeyPrefix = "document"

	configMapFormatKey    = "format"
	configMapTimestampKey = "timestamp"
	fieldManager          = "clusterizer"
)

// ConfigMapOption configures ConfigMap reads and writes.
type ConfigMapOption func(*configMapOptions)

type configMapOptions struct {
	kubeconfig string
	factory    client.Factory
}

// WithKubeconfig sets the kubeconfig path used to reach the cluster.
func WithKubeconfig(path string) ConfigMapOption {
	return func(o *configMapOptions) {
		o.kubeconfig = path
	}
}

// WithClientFactory overrides how the Kubernetes client is obtained.
func WithClientFactory(f client.Factory) ConfigMapOption {
	return func(o *configMapOptions) {
		o.factory = f
	}
}

func newConfigMapOptions(opts []ConfigMapOption) *configMapOptions {
	o := &configMapOptions{factory: client.ForKubeconfig}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *configMapOptions) client() (client.Interface, error) {
	c, err := o.factory(o.kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to get kubernetes client: %w", err)
	}
	return c, nil
}

func documentKey(f Format) string {
	return DocumentKeyPrefix + "." + f.Extension()
}

// ConfigMapWriter writes serialized data to a Kubernetes ConfigMap using
// server-side apply, so the ConfigMap is created or replaced atomically.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	opts      *configMapOptions
}

// NewConfigMapWriter creates a new ConfigMapWriter that writes to the specified
// namespace and ConfigMap name in the given format.
func NewConfigMapWriter(namespace, name string, format Format, opts ...ConfigMapOption) *ConfigMapWriter {
	return &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    normalizeFormat(format),
		opts:      newConfigMapOptions(opts),
	}
}

// Serialize writes v to the ConfigMap. The ConfigMap will have:
//   - data.document.{json|yaml|txt}: the serialized document
//   - data.format: the format used
//   - data.timestamp: the document timestamp, or now when v has no header
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	k8s, err := w.opts.client()
	if err != nil {
		return err
	}

	content, err := encode(w.format, v)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	kind, version, timestamp := documentMetadata(v)

	configMap := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":      "clusterizer",
			"app.kubernetes.io/component": strings.ToLower(kind),
			"app.kubernetes.io/version":   version,
		}).
		WithData(map[string]string{
			documentKey(w.format): string(content),
			configMapFormatKey:    string(w.format),
			configMapTimestampKey: timestamp,
		})

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format,
		"size", len(content))

	// Force takes ownership from earlier field managers (manual kubectl edits).
	_, err = k8s.CoreV1().ConfigMaps(w.namespace).Apply(
		writeCtx,
		configMap,
		metav1.ApplyOptions{
			FieldManager: fieldManager,
			Force:        true,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap %s/%s: %w", w.namespace, w.name, err)
	}

	return nil
}

// Close is a no-op; it exists to satisfy Closer.
func (w *ConfigMapWriter) Close() error {
	return nil
}

func documentMetadata(v any) (kind, version, timestamp string) {
	if h, ok := v.(interface {
		GetKind() header.Kind
		GetMetadata() map[string]string
	}); ok {
		kind = h.GetKind().String()
		md := h.GetMetadata()
		version = md[header.MetadataVersion]
		timestamp = md[header.MetadataTimestamp]
	}

	if kind == "" {
		kind = "document"
	}
	if version == "" {
		version = "unknown"
	}
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	return kind, version, timestamp
}

// readConfigMap returns the document stored in a ConfigMap and its format.
func readConfigMap(ctx context.Context, namespace, name string, o *configMapOptions) ([]byte, Format, error) {
	readCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	k8s, err := o.client()
	if err != nil {
		return nil, "", err
	}

	cm, err := k8s.CoreV1().ConfigMaps(namespace).Get(readCtx, name, metav1.GetOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	format := FormatYAML
	if f, ok := cm.Data[configMapFormatKey]; ok && !Format(f).IsUnknown() {
		format = Format(f)
	}

	if data, ok := cm.Data[documentKey(format)]; ok {
		return []byte(data), format, nil
	}
	for _, f := range []Format{FormatYAML, FormatJSON} {
		if data, ok := cm.Data[documentKey(f)]; ok {
			return []byte(data), f, nil
		}
	}
	return nil, "", fmt.Errorf("ConfigMap %s/%s has no %s.yaml or %s.json key", namespace, name, DocumentKeyPrefix, DocumentKeyPrefix)
}

// parseConfigMapURI parses a ConfigMap URI in the format cm://namespace/name
// and returns the namespace and name components.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	path := strings.TrimPrefix(uri, ConfigMapURIScheme)

	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}

	return namespace, name, nil
}
