package registration

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-signup-slim/internal/domain"
)

var hexKeyRegex = regexp.MustCompile(`^[0-9a-f]{40}$`)

func TestGenerateActivationKey_Format(t *testing.T) {
	key, err := GenerateActivationKey("alice")
	require.NoError(t, err)
	require.Len(t, key, domain.ActivationKeyLen)
	require.Regexp(t, hexKeyRegex, key)
}

func TestGenerateActivationKey_Unpredictable(t *testing.T) {
	// Same username, fresh salt: keys must not repeat.
	k1, err := GenerateActivationKey("alice")
	require.NoError(t, err)
	k2, err := GenerateActivationKey("alice")
	require.NoError(t, err)
	require.NotEqual(t, k1, k2)
}

func TestGenerateActivationKey_NeverSentinel(t *testing.T) {
	for i := 0; i < 32; i++ {
		key, err := GenerateActivationKey("bob")
		require.NoError(t, err)
		require.NotEqual(t, domain.ActivatedSentinel, key)
	}
}
