package client

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrimTestClient(url string) *TrimClient {
	c := NewTrimClient(url, 2*time.Second, 1000, slog.Default())
	c.retryConfig = RetryConfig{MaxRetries: 1, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond, Multiplier: 1}
	return c
}

func TestTrimClientParsesRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getTrims", r.URL.Query().Get("cmd"))
		assert.Equal(t, "dodge", r.URL.Query().Get("make"))
		assert.Equal(t, "charger", r.URL.Query().Get("model"))
		w.Write([]byte(`{"Trims":[
			{"model_name":"Charger","model_trim":"SXT","model_year":"2006"},
			{"model_name":"Charger","model_trim":"R/T","model_year":"2019"}
		]}`))
	}))
	defer srv.Close()

	records, err := newTrimTestClient(srv.URL).GetTrims(context.Background(), "dodge", "charger")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2006", records[0].ModelYear)
	assert.Equal(t, "2019", records[1].ModelYear)
}

func TestTrimClientEmptyPayloadIsNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Trims":[]}`))
	}))
	defer srv.Close()

	_, err := newTrimTestClient(srv.URL).GetTrims(context.Background(), "toyota", "zzz9")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestTrimClientMalformedPayloadIsNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	_, err := newTrimTestClient(srv.URL).GetTrims(context.Background(), "toyota", "camry")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestTrimClientNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTrimTestClient(srv.URL).GetTrims(context.Background(), "toyota", "camry")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoData)
}

func TestTrimClientRetriesServerErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"Trims":[{"model_name":"Camry","model_year":"1982"}]}`))
	}))
	defer srv.Close()

	records, err := newTrimTestClient(srv.URL).GetTrims(context.Background(), "toyota", "camry")
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 2, calls)
}

func TestTrimClientHonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"Trims":[]}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := newTrimTestClient(srv.URL).GetTrims(ctx, "toyota", "camry")
	require.Error(t, err)
}
