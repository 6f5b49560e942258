//go:build !wasm

package env

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chart.yaml" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("type: pie"))
	}))
	defer srv.Close()

	data, err := FetchSource(srv.URL + "/chart.yaml")
	require.NoError(t, err)
	assert.Equal(t, "type: pie", string(data))

	_, err = FetchSource(srv.URL + "/missing.yaml")
	assert.ErrorContains(t, err, "status 404")

	_, err = FetchSource("")
	assert.ErrorContains(t, err, "error fetching")
}
