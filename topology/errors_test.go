package topology

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	err := ZoneNotFoundError("example.org")
	require.Equal(t, CodeZoneNotFound, err.Code)
	require.Contains(t, err.Error(), "topology.zone_not_found: ")
	require.Contains(t, err.Error(), "example.org")
}

func TestIsCodeUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("resolving zone: %w", ZoneNotFoundError("example.org"))
	require.True(t, IsCode(wrapped, CodeZoneNotFound))
	require.False(t, IsCode(wrapped, CodeRecordNameMismatch))
	require.False(t, IsCode(nil, CodeZoneNotFound))
	require.False(t, IsCode(fmt.Errorf("plain"), CodeZoneNotFound))
}
