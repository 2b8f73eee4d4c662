package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abimaelmartell/moni-dash/internal/errors"
)

const sampleMetrics = `{
  "data_points": [
    {"timestamp": 1700000000, "cpu_percent": 12.5, "mem_percent": 40.0, "mem_used": 4096, "mem_total": 8192,
     "disk_used": 100, "disk_total": 400, "disk_percent": 25.0, "load_avg": {"load1": 0.5, "load5": 0.7, "load15": 0.9}},
    {"timestamp": 1700000001, "cpu_percent": 15.0, "mem_percent": 41.0, "mem_used": 4200, "mem_total": 8192,
     "disk_used": 100, "disk_total": 400, "disk_percent": 25.0, "load_avg": {"load1": 0.6, "load5": 0.7, "load15": 0.9}}
  ],
  "top_processes": [
    {"pid": 42, "cpu": 3.25, "memory": 1048576, "command": "postgres"}
  ]
}`

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortByMemory, ParseSortKey("memory"))
	assert.Equal(t, SortByCPU, ParseSortKey("cpu"))
	assert.Equal(t, SortByCPU, ParseSortKey(""))
	assert.Equal(t, SortByCPU, ParseSortKey("MEMORY"))

	assert.True(t, SortByCPU.Valid())
	assert.False(t, SortKey("pid").Valid())

	assert.Equal(t, SortByMemory, SortByCPU.Next())
	assert.Equal(t, SortByCPU, SortByMemory.Next())
}

func TestFetchMetrics_Success(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/metrics", r.URL.Path)
		gotQuery = r.URL.Query().Get("sortProcessesBy")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleMetrics))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/")
	resp, err := c.FetchMetrics(context.Background(), SortByMemory)
	require.NoError(t, err)

	assert.Equal(t, "memory", gotQuery)
	require.Len(t, resp.DataPoints, 2)
	assert.Equal(t, int64(1700000001), resp.DataPoints[1].Timestamp)
	assert.Equal(t, 0.6, resp.DataPoints[1].LoadAvg.Load1)
	require.Len(t, resp.TopProcesses, 1)
	assert.Equal(t, ProcessEntry{PID: 42, CPU: 3.25, Memory: 1048576, Command: "postgres"}, resp.TopProcesses[0])
}

func TestFetchMetrics_Failures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{}`, wantCode: errors.ErrStatus},
		{name: "not found", status: http.StatusNotFound, body: ``, wantCode: errors.ErrStatus},
		{name: "not json", status: http.StatusOK, body: `<html>`, wantCode: errors.ErrPayload},
		{name: "array body", status: http.StatusOK, body: `[]`, wantCode: errors.ErrPayload},
		{name: "data_points not an array", status: http.StatusOK, body: `{"data_points": "x"}`, wantCode: errors.ErrPayload},
		{name: "missing data_points", status: http.StatusOK, body: `{"top_processes": []}`, wantCode: errors.ErrPayload},
		{name: "empty data_points", status: http.StatusOK, body: `{"data_points": [], "top_processes": []}`, wantCode: errors.ErrPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := NewClient(srv.URL).FetchMetrics(context.Background(), SortByCPU)
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.True(t, errors.IsCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestFetchMetrics_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).FetchMetrics(context.Background(), SortByCPU)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTransport))
}

func TestFetchMetrics_CancelledContext(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL).FetchMetrics(ctx, SortByCPU)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTransport))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)

	c := NewClient(srv.URL, WithTimeout(20*time.Millisecond))
	_, err := c.FetchInfo(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTransport))
}

func TestWithTimeout_AppliesToReplacedClient(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)

	// Same option order the CLI uses when it routes through a tunnel.
	tunneled := &http.Client{Transport: http.DefaultTransport}
	c := NewClient(srv.URL, WithTimeout(20*time.Millisecond), WithHTTPClient(tunneled))

	assert.Equal(t, 20*time.Millisecond, c.http.Timeout)
	assert.Same(t, http.DefaultTransport, c.http.Transport)
	assert.Zero(t, tunneled.Timeout, "caller's client must not be mutated")

	start := time.Now()
	_, err := c.FetchInfo(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTransport))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{}
	c := NewClient("http://example.invalid", WithHTTPClient(hc), WithHTTPClient(nil))
	assert.Same(t, hc, c.http)
	assert.Equal(t, "http://example.invalid", c.BaseURL())
}

func TestFetchInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/info", r.URL.Path)
		_, _ = w.Write([]byte(`{"hostname":"web-1","ip":"10.0.0.5","os":"linux","platform":"ubuntu",
			"platform_version":"22.04","kernel_version":"5.15","cpu_model":"Xeon","cpu_cores":4,
			"used_memory":1024,"total_memory":2048,"update_interval":2000,"interface":"eth0"}`))
	}))
	defer srv.Close()

	info, err := NewClient(srv.URL).FetchInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "web-1", info.Hostname)
	assert.Equal(t, 4, info.CPUCores)
	assert.Equal(t, int64(2000), info.UpdateInterval)
	assert.Equal(t, "eth0", info.Interface)
}

func TestFetchInfo_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchInfo(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrStatus))
	assert.Contains(t, errors.Summarize(err), "/info returned 503")
}
