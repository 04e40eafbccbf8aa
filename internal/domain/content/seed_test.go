package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
sections:
  home:
    plan2Price: "$59"
    plan3Badge: ""
  launch:
    mainTitle: Launch week pricing
    bottomCTAHref: https://example.com/book
  empty: {}
`

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o644))

	file, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, file.Sections, 3)
	assert.Equal(t, "$59", file.Sections["home"]["plan2Price"])
	assert.Equal(t, "", file.Sections["home"]["plan3Badge"])

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseSeed_Invalid(t *testing.T) {
	_, err := ParseSeed([]byte("sections: [not, a, map"))
	assert.Error(t, err)
}

func TestService_Seed(t *testing.T) {
	svc, _ := setupService(t, nil)
	ctx := context.Background()

	file, err := ParseSeed([]byte(seedYAML))
	require.NoError(t, err)

	n, err := svc.Seed(ctx, file, "seed")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	sections, err := svc.ListSections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "launch"}, sections)

	content, err := svc.GetSection(ctx, "launch")
	require.NoError(t, err)
	assert.Equal(t, "Launch week pricing", content.Resolved["mainTitle"])
	assert.Equal(t, "https://example.com/book", content.Resolved["bottomCTAHref"])
}

func TestService_SeedStopsOnUnknownField(t *testing.T) {
	svc, _ := setupService(t, nil)

	file := &SeedFile{Sections: map[string]map[string]string{
		"a-first": {"badge": "ok"},
		"b-bad":   {"notAField": "x"},
	}}
	n, err := svc.Seed(context.Background(), file, "seed")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, 1, n)
}

func TestService_Prune(t *testing.T) {
	svc, repo := setupService(t, nil)
	ctx := context.Background()

	_, err := svc.SetFields(ctx, "home", map[string]string{"badge": "New"}, "alice")
	require.NoError(t, err)
	// a key from an older field set, written behind the service's validation
	require.NoError(t, repo.Upsert(ctx, "home", map[string]string{"plan2Tagline": "old"}, "alice"))

	// warm the cache with the stale key
	overrides, err := svc.GetOverrides(ctx, "home")
	require.NoError(t, err)
	require.Contains(t, overrides, "plan2Tagline")

	n, err := svc.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	overrides, err = svc.GetOverrides(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"badge": "New"}, map[string]string(overrides))

	n, err = svc.Prune(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
