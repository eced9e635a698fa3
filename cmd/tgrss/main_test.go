package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: configPath})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_MissingAPIKey(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Listen: "127.0.0.1:0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.api_key is required")
}

func TestRun_FetchTimeoutOverServerTimeout(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("server:\n  api_key: secret\n  timeout: 5s\n"), 0o600))

	err := run(context.Background(), Opts{Config: configPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegram timeout 30s exceeds server timeout 5s")
}

func TestRun_ServerStartStop(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	configPath := filepath.Join(t.TempDir(), "config.yml")
	t.Setenv("TGRSS_TEST_API_KEY", "file-secret")
	require.NoError(t, os.WriteFile(configPath, []byte("server:\n  api_key: ${TGRSS_TEST_API_KEY}\n  timeout: 5s\ntelegram:\n  timeout: 5s\n"), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := Opts{Config: configPath, Listen: fmt.Sprintf("127.0.0.1:%d", port)}
	done := make(chan error, 1)
	go func() { done <- run(ctx, opts) }()

	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 5*time.Second, 50*time.Millisecond)

	// wrong key rejected before any fetch
	resp, err := http.Get(baseURL + "/rss/mychan?key=wrong")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// invalid channel name rejected before any fetch
	resp, err = http.Get(baseURL + "/rss/bad.name?key=file-secret")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server shutdown timeout")
	}
}

func TestSetupLog(t *testing.T) {
	defer setupLog(false, true)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = w
	setupLog(false, true, "super-secret", "")
	log.Printf("[INFO] key=super-secret")
	log.Printf("[DEBUG] hidden")
	os.Stdout = stdout
	require.NoError(t, w.Close())

	buf := bytes.Buffer{}
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "key=******")
	assert.NotContains(t, buf.String(), "super-secret")
	assert.NotContains(t, buf.String(), "hidden")
}
