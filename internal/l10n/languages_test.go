package l10n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"carebird/internal/l10n"
)

func TestISO6391(t *testing.T) {
	t.Parallel()

	require.Equal(t, "en", l10n.ISO6391("en-US"))
	require.Equal(t, "pt", l10n.ISO6391("pt-BR"))
	require.Equal(t, "zh", l10n.ISO6391("zh-TW"))

	// Known locale without a code and an unknown locale both map to "".
	require.Empty(t, l10n.ISO6391("szl"))
	require.Empty(t, l10n.ISO6391("not-a-locale"))
}
