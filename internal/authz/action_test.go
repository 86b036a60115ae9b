package authz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	for _, raw := range []string{"view", "add", "edit", "del"} {
		action, err := ParseAction(raw)
		require.NoError(t, err)
		require.Equal(t, Action(raw), action)
	}
}

func TestParseActionRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "delete", "archive", "VIEW", "view "} {
		_, err := ParseAction(raw)
		require.Error(t, err, "expected %q to be rejected", raw)
	}
}
