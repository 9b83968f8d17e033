package devserver_test

import (
	"net"
	"testing"

	"valuekit/internal/devserver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalIP(t *testing.T) {
	t.Run("returns a parseable IP address", func(t *testing.T) {
		ip := devserver.LocalIP()

		require.NotEmpty(t, ip)
		assert.NotNil(t, net.ParseIP(ip), "LocalIP returned %q which is not a valid IP", ip)
	})

	t.Run("is stable across calls", func(t *testing.T) {
		assert.Equal(t, devserver.LocalIP(), devserver.LocalIP())
	})
}
