package serializer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/NVIDIA/la-clusterizer/pkg/header"
	"github.com/NVIDIA/la-clusterizer/pkg/k8s/client"
)

func fakeFactory(c client.Interface) ConfigMapOption {
	return WithClientFactory(func(string) (client.Interface, error) { return c, nil })
}

type headered struct {
	header.Header `json:",inline" yaml:",inline"`
	Value         string `json:"value" yaml:"value"`
}

func TestParseConfigMapURI(t *testing.T) {
	tests := []struct {
		name          string
		uri           string
		wantNamespace string
		wantName      string
		wantErr       bool
	}{
		{name: "valid", uri: "cm://monitoring/clusterizer-report", wantNamespace: "monitoring", wantName: "clusterizer-report"},
		{name: "spaces trimmed", uri: "cm://monitoring / report ", wantNamespace: "monitoring", wantName: "report"},
		{name: "missing scheme", uri: "monitoring/report", wantErr: true},
		{name: "wrong scheme", uri: "http://monitoring/report", wantErr: true},
		{name: "missing name", uri: "cm://monitoring/", wantErr: true},
		{name: "missing namespace", uri: "cm:///report", wantErr: true},
		{name: "missing separator", uri: "cm://monitoring", wantErr: true},
		{name: "only scheme", uri: "cm://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			namespace, name, err := parseConfigMapURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNamespace, namespace)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestConfigMapWriter_Serialize(t *testing.T) {
	cs := fake.NewClientset()
	doc := headered{Value: "v"}
	doc.Init(header.KindClusterizationReport, "clusterizer.nvidia.com/v1alpha1", "v1.2.3")

	w := NewConfigMapWriter("monitoring", "report", FormatYAML, fakeFactory(cs))
	require.NoError(t, w.Serialize(t.Context(), &doc))
	require.NoError(t, w.Close())

	cm, err := cs.CoreV1().ConfigMaps("monitoring").Get(t.Context(), "report", metav1.GetOptions{})
	require.NoError(t, err)

	assert.Equal(t, "yaml", cm.Data["format"])
	assert.Equal(t, doc.Metadata[header.MetadataTimestamp], cm.Data["timestamp"])
	assert.Contains(t, cm.Data["document.yaml"], "value: v")
	assert.Equal(t, "clusterizer", cm.Labels["app.kubernetes.io/name"])
	assert.Equal(t, "clusterizationreport", cm.Labels["app.kubernetes.io/component"])
	assert.Equal(t, "v1.2.3", cm.Labels["app.kubernetes.io/version"])
}

func TestConfigMapWriter_ClientError(t *testing.T) {
	w := NewConfigMapWriter("ns", "name", FormatJSON,
		WithClientFactory(func(string) (client.Interface, error) { return nil, errors.New("no cluster") }))
	err := w.Serialize(t.Context(), headered{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no cluster")
}

func TestFromSource_ConfigMap(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string]string
		want    string
		wantErr bool
	}{
		{
			name: "format key",
			data: map[string]string{"format": "json", "document.json": `{"value":"from-json"}`},
			want: "from-json",
		},
		{
			name: "yaml default",
			data: map[string]string{"document.yaml": "value: from-yaml\n"},
			want: "from-yaml",
		},
		{
			name: "fallback when format key disagrees",
			data: map[string]string{"format": "yaml", "document.json": `{"value":"fallback"}`},
			want: "fallback",
		},
		{
			name:    "no document",
			data:    map[string]string{"other": "x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := fake.NewClientset(&corev1.ConfigMap{
				ObjectMeta: metav1.ObjectMeta{Name: "inv", Namespace: "ns"},
				Data:       tt.data,
			})

			got, err := FromSource[headered](t.Context(), "cm://ns/inv", Source{
				ConfigMap: []ConfigMapOption{fakeFactory(cs)},
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value)
		})
	}

	t.Run("missing configmap", func(t *testing.T) {
		_, err := FromSource[headered](t.Context(), "cm://ns/absent", Source{
			ConfigMap: []ConfigMapOption{fakeFactory(fake.NewClientset())},
		})
		assert.Error(t, err)
	})
}
