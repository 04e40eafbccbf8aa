package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_EveryFieldSet(t *testing.T) {
	cfg := DefaultConfig()
	fields := cfg.Fields()

	require.Len(t, fields, 30)
	for _, key := range FieldKeys() {
		assert.NotEmpty(t, fields[key], key)
	}
	assert.Equal(t, "$49", cfg.Plan2Price)
	assert.Equal(t, "/demo", cfg.BottomCTAHref)
}

func TestResolve_NoOverrides(t *testing.T) {
	assert.Equal(t, DefaultConfig(), ResolveDefaults(nil))
	assert.Equal(t, DefaultConfig(), ResolveDefaults(Overrides{}))
}

func TestResolve_OverridesFieldByField(t *testing.T) {
	cfg := ResolveDefaults(Overrides{
		"plan1Name":     "Hobby",
		"bottomCTAHref": "https://example.com/book",
	})

	want := DefaultConfig()
	want.Plan1Name = "Hobby"
	want.BottomCTAHref = "https://example.com/book"
	assert.Equal(t, want, cfg)
}

func TestResolve_EmptyStringIsValid(t *testing.T) {
	cfg := ResolveDefaults(Overrides{"plan3Badge": "", "plan2Period": ""})
	assert.Equal(t, "", cfg.Plan3Badge)
	assert.Equal(t, "", cfg.Plan2Period)
	assert.Equal(t, "Enterprise", cfg.Plan3Name)
}

func TestResolve_UnknownAndMiscasedKeysIgnored(t *testing.T) {
	cfg := ResolveDefaults(Overrides{
		"plan4Name": "Ultra",
		"PLAN1NAME": "Shouting",
		"plan1name": "lower",
	})
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestResolve_NoInterpolation(t *testing.T) {
	cfg := ResolveDefaults(Overrides{"mainTitle": "{{.Plan2Price}} ${plan2Price}"})
	assert.Equal(t, "{{.Plan2Price}} ${plan2Price}", cfg.MainTitle)
}

func TestResolve_Idempotent(t *testing.T) {
	overrides := Overrides{"plan2Price": "$59", "badge": "New"}
	first := ResolveDefaults(overrides)
	second := ResolveDefaults(overrides)
	assert.Equal(t, first, second)

	// resolving onto an already-resolved config changes nothing further
	assert.Equal(t, first, Resolve(first, overrides))
}

func TestResolve_DoesNotMutateDefaults(t *testing.T) {
	defaults := DefaultConfig()
	_ = Resolve(defaults, Overrides{"plan1Name": "Changed"})
	assert.Equal(t, "Starter", defaults.Plan1Name)
}

func TestResolve_EveryKeyReachesItsField(t *testing.T) {
	overrides := Overrides{}
	for _, key := range FieldKeys() {
		overrides[key] = "value-of-" + key
	}
	cfg := ResolveDefaults(overrides)
	for _, key := range FieldKeys() {
		assert.Equal(t, "value-of-"+key, cfg.Get(key), key)
	}
}

func TestIsField(t *testing.T) {
	assert.True(t, IsField("plan2Trial"))
	assert.True(t, IsField("bottomCTAHref"))
	assert.False(t, IsField("plan2trial"))
	assert.False(t, IsField(""))
}

func TestFieldKeys_ReturnsCopy(t *testing.T) {
	keys := FieldKeys()
	keys[0] = "mutated"
	assert.Equal(t, "badge", FieldKeys()[0])
}
