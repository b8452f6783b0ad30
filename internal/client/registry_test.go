package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistryTestClient(url string) *RegistryClient {
	c := NewRegistryClient(url, 2*time.Second, 1000, slog.Default())
	c.retryConfig = RetryConfig{MaxRetries: 1, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond, Multiplier: 1}
	return c
}

func registryPayload(models ...string) string {
	out := `{"Count":` + fmt.Sprint(len(models)) + `,"Results":[`
	for i, m := range models {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"Model_Name":%q}`, m)
	}
	return out + `]}`
}

func TestRegistryClientModelsForYear(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/vehicles/GetModelsForMakeYear/make/toyota/modelyear/2015")
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Write([]byte(registryPayload("Camry", "Corolla", "")))
	}))
	defer srv.Close()

	names, err := newRegistryTestClient(srv.URL).ModelsForYear(context.Background(), "toyota", 2015)
	require.NoError(t, err)
	assert.Equal(t, []string{"Camry", "Corolla"}, names, "blank names are dropped")
}

func TestRegistryClientHasModel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(registryPayload("Camry", "Land Cruiser")))
	}))
	defer srv.Close()

	c := newRegistryTestClient(srv.URL)

	found, err := c.HasModel(context.Background(), "toyota", "camry", 2015)
	require.NoError(t, err)
	assert.True(t, found, "comparison is normalization-insensitive")

	found, err = c.HasModel(context.Background(), "toyota", "LAND-CRUISER", 2015)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = c.HasModel(context.Background(), "toyota", "zzz9", 2015)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRegistryClientEmptyYearIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Count":0,"Results":[]}`))
	}))
	defer srv.Close()

	found, err := newRegistryTestClient(srv.URL).HasModel(context.Background(), "toyota", "camry", 1905)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRegistryClientMalformedPayloadIsNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`oops`))
	}))
	defer srv.Close()

	_, err := newRegistryTestClient(srv.URL).ModelsForYear(context.Background(), "toyota", 2015)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestRegistryClientNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newRegistryTestClient(srv.URL).ModelsForYear(context.Background(), "toyota", 2015)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoData)
}
