package catalogapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"_id":"p1","name":"Red Apple","description":"Fresh","price":1.5,"category":"fruit","image":"apple.png"},
			{"_id":"p2","name":"Carrot","price":0.8,"category":"vegetable","image":"carrot.png"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	records, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "p1", records[0].ID)
	assert.Equal(t, "Red Apple", records[0].Name)
	assert.Equal(t, "vegetable", records[1].Category)
}

func TestListProducts_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ListProducts(context.Background())
	assert.Error(t, err)
}

func TestGetProduct_RequiresID(t *testing.T) {
	client := NewClient("http://localhost:9090")
	_, err := client.GetProduct(context.Background(), "  ")
	assert.Error(t, err)
}
