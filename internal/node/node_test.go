package node

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/SystemBuilders/SortList/internal/liststore"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckValidPort(t *testing.T) {
	assert.NoError(t, checkValidPort("1234"))
	assert.NoError(t, checkValidPort("65535"))
	assert.Error(t, checkValidPort("65536"))
	assert.Error(t, checkValidPort("-1"))
	assert.Error(t, checkValidPort("port"))
}

func TestNewServer(t *testing.T) {
	s := liststore.NewSimpleStore(zerolog.Nop())

	server, err := NewServer(s, NewSimpleConfig("127.0.0.1", "1234"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:1234", server.Addr)

	_, err = NewServer(s, NewSimpleConfig("127.0.0.1", "99999"))
	assert.Error(t, err)
}

func TestServe(t *testing.T) {
	s := liststore.NewSimpleStore(zerolog.Nop())
	server, err := NewServer(s, NewSimpleConfig("127.0.0.1", "0"))
	require.NoError(t, err)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, server, ln, zerolog.Nop())
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/lists")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server didn't shut down")
	}
}
