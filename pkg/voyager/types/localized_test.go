package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizedTextPlainString(t *testing.T) {
	var lt LocalizedText
	require.NoError(t, json.Unmarshal([]byte(`"Peggy"`), &lt))
	assert.Equal(t, "Peggy", lt.String())
	assert.False(t, lt.IsEmpty())
}

func TestLocalizedTextPreferredLocale(t *testing.T) {
	var lt LocalizedText
	raw := `{
		"localized": {"en_US": "Engineer", "sv_SE": "Ingenjör"},
		"preferredLocale": {"country": "US", "language": "en"}
	}`
	require.NoError(t, json.Unmarshal([]byte(raw), &lt))
	assert.Equal(t, "Engineer", lt.String())
}

func TestLocalizedTextFallbackFirstSorted(t *testing.T) {
	var lt LocalizedText
	raw := `{
		"localized": {"sv_SE": "Ingenjör", "de_DE": "Ingenieurin"},
		"preferredLocale": {"country": "US", "language": "en"}
	}`
	require.NoError(t, json.Unmarshal([]byte(raw), &lt))
	// no en_US entry: first key in sorted order wins
	assert.Equal(t, "Ingenieurin", lt.String())
}

func TestLocalizedTextEmpty(t *testing.T) {
	var lt LocalizedText
	require.NoError(t, json.Unmarshal([]byte(`{}`), &lt))
	assert.True(t, lt.IsEmpty())
	assert.Equal(t, "", lt.String())
}

func TestLocalizedTextMarshalCollapses(t *testing.T) {
	lt := LocalizedText{Localized: map[string]string{"en_US": "Engineer"}}
	out, err := json.Marshal(lt)
	require.NoError(t, err)
	assert.Equal(t, `"Engineer"`, string(out))
}
