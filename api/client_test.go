package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/jrsteele09/go-shop-client/api"
	"github.com/stretchr/testify/require"
)

func TestClientDecodesEnvelopeData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/widgets/w-1", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": "w-1", "name": "widget"},
		})
	}))
	defer server.Close()

	client, err := api.NewClient(server.URL)
	require.NoError(t, err)

	var widget struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, client.Get(context.Background(), "/widgets/w-1", nil, &widget))
	require.Equal(t, "w-1", widget.ID)
	require.Equal(t, "widget", widget.Name)
}

func TestClientSurfacesBackendErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   map[string]any{"message": "email already registered", "code": "EMAIL_TAKEN"},
		})
	}))
	defer server.Close()

	client, err := api.NewClient(server.URL)
	require.NoError(t, err)

	err = client.Post(context.Background(), "/auth/register", map[string]any{}, nil)
	require.Error(t, err)

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, "EMAIL_TAKEN", apiErr.Code)
	require.Equal(t, "email already registered", apiErr.Message)
}

func TestClientFallsBackToGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client, err := api.NewClient(server.URL)
	require.NoError(t, err)

	err = client.Get(context.Background(), "/products", nil, nil)
	require.Error(t, err)

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, "an error has occurred", apiErr.Message)
}

func TestClientRejectsSuccessFalseEvenOn200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   map[string]any{"message": "soft failure", "code": "SOFT_FAIL"},
		})
	}))
	defer server.Close()

	client, err := api.NewClient(server.URL)
	require.NoError(t, err)

	err = client.Get(context.Background(), "/products", nil, nil)
	require.Error(t, err)

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "soft failure", apiErr.Message)
}

func TestClientGetPagedReturnsPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2", r.URL.Query().Get("page"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []map[string]any{{"id": "p-1"}},
			"meta": map[string]any{
				"pagination": map[string]any{"page": 2, "limit": 10, "total": 31, "totalPages": 4},
			},
		})
	}))
	defer server.Close()

	client, err := api.NewClient(server.URL)
	require.NoError(t, err)

	var items []struct {
		ID string `json:"id"`
	}
	pagination, err := client.GetPaged(context.Background(), "/products", url.Values{"page": []string{"2"}}, &items)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, pagination)
	require.Equal(t, 2, pagination.Page)
	require.Equal(t, 31, pagination.Total)
	require.Equal(t, 4, pagination.TotalPages)
}

func TestIsUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   map[string]any{"message": "token expired", "code": "TOKEN_EXPIRED"},
		})
	}))
	defer server.Close()

	client, err := api.NewClient(server.URL)
	require.NoError(t, err)

	err = client.Get(context.Background(), "/orders", nil, nil)
	require.True(t, api.IsUnauthorized(err))
	require.False(t, api.IsUnauthorized(nil))
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := api.NewClient("")
	require.Error(t, err)

	client, err := api.NewClient("http://localhost:3000/api/v1/")
	require.NoError(t, err)
	require.NotNil(t, client)
}
