package productcontroller

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"  Wireless   Mouse  ", "wireless-mouse"},
		{"--Go--", "go"},
		{"UPPER case", "upper-case"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}

func setExists(taken map[string]bool) ExistsFunc {
	return func(v string) (bool, error) {
		return taken[v], nil
	}
}

func TestMakeUniqueSlugCountsUp(t *testing.T) {
	taken := map[string]bool{"phone": true, "phone-2": true}

	slug, err := MakeUniqueSlug(setExists(taken), "Phone")
	require.NoError(t, err)
	assert.Equal(t, "phone-3", slug)
}

func TestMakeUniqueSlugSequentialCallsStayDistinct(t *testing.T) {
	taken := map[string]bool{}
	seen := map[string]bool{}

	for i := 0; i < 5; i++ {
		slug, err := MakeUniqueSlug(setExists(taken), "Wireless Mouse")
		require.NoError(t, err)
		assert.False(t, seen[slug], "duplicate slug %q", slug)
		seen[slug] = true
		taken[slug] = true
	}
}

func TestMakeUniqueSlugEmptyBaseFallsBack(t *testing.T) {
	slug, err := MakeUniqueSlug(setExists(nil), "???")
	require.NoError(t, err)
	assert.Equal(t, "product", slug)
}

func TestMakeUniqueSkuFormatAndRetry(t *testing.T) {
	pattern := regexp.MustCompile(`^phone-[0-9A-Z]{4}$`)

	sku, err := MakeUniqueSku(setExists(nil), "Phone")
	require.NoError(t, err)
	assert.Regexp(t, pattern, sku)

	// first candidate taken: a fresh suffix is rolled, not a counter
	calls := 0
	exists := func(v string) (bool, error) {
		calls++
		return calls == 1, nil
	}
	sku, err = MakeUniqueSku(exists, "Phone")
	require.NoError(t, err)
	assert.Regexp(t, pattern, sku)
	assert.Equal(t, 2, calls)
}
