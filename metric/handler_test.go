package metric

import (
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ringbuffer/errors"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func healthy(port int) bool {
	client := &http.Client{
		Timeout:   500 * time.Millisecond,
		Transport: &http.Transport{DisableKeepAlives: true},
	}
	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%d/health", port))
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func TestServer_StartStop(t *testing.T) {
	port := freePort(t)
	s := NewServer(port, "", NewMetricsRegistry())

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	require.Eventually(t, func() bool { return healthy(port) }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, s.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after Stop")
	}

	assert.False(t, healthy(port), "server must not answer after Stop")
	assert.NoError(t, s.Stop(), "second Stop is a no-op")

	err := s.Start()
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
	assert.ErrorIs(t, err, errors.ErrStopped)
}

func TestServer_StopBeforeStart(t *testing.T) {
	port := freePort(t)
	s := NewServer(port, "", NewMetricsRegistry())

	err := s.Stop()
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
	assert.ErrorIs(t, err, errors.ErrNotStarted)

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, errors.ErrStopped)
	case <-time.After(2 * time.Second):
		t.Fatal("Start after Stop must return instead of serving")
	}

	assert.False(t, healthy(port))
}

func TestServer_StopBetweenListenAndServe(t *testing.T) {
	port := freePort(t)
	s := NewServer(port, "", NewMetricsRegistry())

	require.NoError(t, s.Listen())
	require.NoError(t, s.Stop())

	assert.NoError(t, s.Serve())
	assert.False(t, healthy(port))
}

func TestServer_ListenErrors(t *testing.T) {
	t.Run("port in use", func(t *testing.T) {
		port := freePort(t)
		occupied, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		require.NoError(t, err)
		defer occupied.Close()

		s := NewServer(port, "", NewMetricsRegistry())
		err = s.Listen()
		require.Error(t, err)
		assert.True(t, errors.IsFatal(err))
	})

	t.Run("already listening", func(t *testing.T) {
		s := NewServer(freePort(t), "", NewMetricsRegistry())
		require.NoError(t, s.Listen())
		defer s.Stop()

		err := s.Listen()
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrAlreadyStarted)
	})

	t.Run("serve without listen", func(t *testing.T) {
		err := NewServer(freePort(t), "", NewMetricsRegistry()).Serve()
		require.Error(t, err)
		assert.True(t, errors.IsInvalid(err))
		assert.ErrorIs(t, err, errors.ErrNotStarted)
	})
}
