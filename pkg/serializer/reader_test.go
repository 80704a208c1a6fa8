package serializer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReader(t *testing.T) {
	_, err := NewReader(FormatTable, strings.NewReader(""))
	assert.Error(t, err)

	_, err = NewReader(Format("xml"), strings.NewReader(""))
	assert.Error(t, err)

	r, err := NewReader(FormatJSON, strings.NewReader(`{"name":"a","count":3}`))
	require.NoError(t, err)
	var got sample
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, sample{Name: "a", Count: 3}, got)
	assert.NoError(t, r.Close())
}

func TestReader_Strict(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{name: "json", format: FormatJSON, input: `{"name":"a","bogus":1}`},
		{name: "yaml", format: FormatYAML, input: "name: a\nbogus: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lenient, err := NewReader(tt.format, strings.NewReader(tt.input))
			require.NoError(t, err)
			var got sample
			require.NoError(t, lenient.Deserialize(&got))

			strict, err := NewReader(tt.format, strings.NewReader(tt.input), WithStrict())
			require.NoError(t, err)
			assert.Error(t, strict.Deserialize(&got))
		})
	}
}

func TestReader_NilChecks(t *testing.T) {
	var r *Reader
	assert.Error(t, r.Deserialize(&sample{}))
	assert.NoError(t, r.Close())

	r, err := NewReader(FormatJSON, nil)
	require.NoError(t, err)
	assert.Error(t, r.Deserialize(&sample{}))
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(dir, "doc.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: from-file\ncount: 4\n"), 0o600))

		got, err := FromFile[sample](t.Context(), path)
		require.NoError(t, err)
		assert.Equal(t, "from-file", got.Name)
		assert.Equal(t, 4, got.Count)
	})

	t.Run("json file", func(t *testing.T) {
		path := filepath.Join(dir, "doc.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"name":"j"}`), 0o600))

		got, err := FromFileWithKubeconfig[sample](t.Context(), path, "")
		require.NoError(t, err)
		assert.Equal(t, "j", got.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FromFile[sample](t.Context(), filepath.Join(dir, "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := FromFile[sample](t.Context(), "")
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"name":`), 0o600))
		_, err := FromFile[sample](t.Context(), path)
		assert.Error(t, err)
	})
}

func TestFromFile_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/inventory.yaml":
			assert.Equal(t, HttpReaderUserAgent, r.Header.Get("User-Agent"))
			_, _ = w.Write([]byte("name: remote\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	got, err := FromFile[sample](t.Context(), srv.URL+"/inventory.yaml")
	require.NoError(t, err)
	assert.Equal(t, "remote", got.Name)

	_, err = FromFile[sample](t.Context(), srv.URL+"/missing.yaml")
	assert.Error(t, err)
}

func TestHttpReader(t *testing.T) {
	r := NewHttpReader()
	assert.Equal(t, HttpReaderUserAgent, r.UserAgent)
	assert.NotNil(t, r.Client)

	custom := &http.Client{}
	r = NewHttpReader(WithClient(custom), WithUserAgent("ua"), WithTotalTimeout(0))
	assert.Same(t, custom, r.Client)
	assert.Equal(t, "ua", r.UserAgent)
	assert.Positive(t, r.Client.Timeout)

	_, err := r.ReadWithContext(t.Context(), "")
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()
	_, err = r.ReadWithContext(ctx, srv.URL)
	assert.Error(t, err)
}
