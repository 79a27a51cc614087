package voyager

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifierURN(t *testing.T) {
	tests := []struct {
		input   string
		urnType string
		urnID   string
	}{
		{"urn:li:fsd_profile:ABC123", "fsd_profile", "ABC123"},
		{"urn:li:fs_miniProfile:xyz", "fs_miniProfile", "xyz"},
		{"urn:li:member:1234", "member", "1234"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed := ParseIdentifier(tt.input)
			assert.Equal(t, IdentifierURN, parsed.Kind)
			// urns pass through unchanged, no reformatting
			assert.Equal(t, tt.input, parsed.URN)
			assert.Equal(t, tt.input, parsed.Raw)
			assert.Equal(t, tt.urnType, parsed.URNType)
			assert.Equal(t, tt.urnID, parsed.URNID)
		})
	}
}

func TestParseIdentifierUsernameVerbatim(t *testing.T) {
	// no trimming, no case-folding
	for _, input := range []string{"peggyrayzis", "Peggy-Rayzis", " padded ", "user.name"} {
		t.Run(input, func(t *testing.T) {
			parsed := ParseIdentifier(input)
			assert.Equal(t, IdentifierUsername, parsed.Kind)
			assert.Equal(t, input, parsed.Username)
		})
	}
}

func TestParseIdentifierProfileURL(t *testing.T) {
	tests := []struct {
		input    string
		username string
	}{
		{"https://www.linkedin.com/in/peggyrayzis", "peggyrayzis"},
		{"https://www.linkedin.com/in/peggyrayzis/", "peggyrayzis"},
		{"http://linkedin.com/in/some-user", "some-user"},
		{"www.linkedin.com/in/some-user?trk=feed", "some-user"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed := ParseIdentifier(tt.input)
			assert.Equal(t, IdentifierUsername, parsed.Kind)
			assert.Equal(t, tt.username, parsed.Username)
			assert.Equal(t, tt.input, parsed.Raw)
		})
	}
}

func TestParseIdentifierUnresolvable(t *testing.T) {
	// url-shaped but no known profile path form
	for _, input := range []string{
		"https://www.linkedin.com/feed/",
		"https://example.com/in/someone",
		"linkedin.com/company/acme",
		"some/path",
	} {
		t.Run(input, func(t *testing.T) {
			parsed := ParseIdentifier(input)
			assert.Equal(t, IdentifierUnresolvable, parsed.Kind)
			assert.Equal(t, input, parsed.Raw)
		})
	}
}

func TestResolveIdentifierEmpty(t *testing.T) {
	_, err := resolveIdentifier("")
	require.Error(t, err)

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "", inputErr.Input)
}

func TestResolveIdentifierUnresolvable(t *testing.T) {
	_, err := resolveIdentifier("https://www.linkedin.com/feed/")
	require.Error(t, err)

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Contains(t, inputErr.Error(), "linkedin.com/feed")
}
