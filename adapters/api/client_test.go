package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basesPayload = `[
	{
		"id": 10,
		"checked_detailed": 500000,
		"checked_niceonly": 9000000,
		"minimum_cl": 3,
		"niceness_mean": 0.522,
		"niceness_stdev": 0.098,
		"distribution": [
			{"num_uniques": 4, "count": 120, "density": 0.12, "niceness": 0.4},
			{"num_uniques": 5, "count": 680, "density": 0.68, "niceness": 0.5},
			{"num_uniques": 6, "count": 200, "density": 0.2, "niceness": 0.6}
		]
	},
	{
		"id": 11,
		"checked_detailed": 0,
		"checked_niceonly": 0,
		"minimum_cl": 0,
		"niceness_mean": 0,
		"niceness_stdev": 0,
		"distribution": []
	}
]`

func TestFetchBases_ParsesAndValidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bases", r.URL.Path)
		assert.Equal(t, "id.asc", r.URL.Query().Get("order"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(basesPayload))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	summaries, err := client.FetchBases(context.Background())
	require.NoError(t, err)

	// Base 11 has no distribution yet and must be skipped at the boundary.
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, 10, s.Base)
	assert.Equal(t, int64(500000), s.CheckedDetailed)
	assert.Equal(t, int64(9000000), s.CheckedNiceOnly)
	assert.Equal(t, 3, s.MinimumCL)
	assert.InDelta(t, 0.522, s.NicenessMean, 1e-12)
	assert.Len(t, s.Buckets, 3)

	count, ok := s.CountForUniques(5)
	assert.True(t, ok)
	assert.Equal(t, int64(680), count)
}

func TestFetchBases_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.FetchBases(context.Background())
	require.Error(t, err)
}

func TestFetchBases_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.FetchBases(context.Background())
	require.Error(t, err)
}

func TestFetchBases_NoUsableBases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 4, "niceness_stdev": 0, "distribution": []}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.FetchBases(context.Background())
	require.Error(t, err)
}

func TestFetchBases_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(basesPayload))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.FetchBases(ctx)
	require.Error(t, err)
}
