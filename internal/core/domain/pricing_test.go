package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalized(t *testing.T, c Catalog) Catalog {
	t.Helper()
	out, _ := Normalize(c, DefaultRegistry())
	return out
}

func TestNormalize_IdempotentFromDefaults(t *testing.T) {
	reg := DefaultRegistry()
	c := GenerateDefaults(reg)

	first, _ := Normalize(c, reg)
	second, changed := Normalize(first, reg)

	assert.False(t, changed, "second normalize run must be a no-op")
	assert.Equal(t, first, second)
}

func TestNormalize_IdempotentFromEmpty(t *testing.T) {
	reg := DefaultRegistry()

	first, changed := Normalize(Catalog{}, reg)
	require.True(t, changed)

	_, changed = Normalize(first, reg)
	assert.False(t, changed)
}

func TestNormalize_IdempotentFromDamagedCatalog(t *testing.T) {
	reg := DefaultRegistry()
	c := GenerateDefaults(reg)

	// Simulate a persisted file with junk: negative prices, sell above buy,
	// an unknown kind, a priced spawn egg, and a missing entry.
	c[Kind("stone")] = PriceEntry{Kind: Kind("stone"), Buy: -5, Sell: 99}
	c[Kind("diamond")] = PriceEntry{Kind: Kind("diamond"), Buy: 100, Sell: 900}
	c[Kind("modpack:widget")] = PriceEntry{Kind: Kind("modpack:widget"), Buy: 1, Sell: 1}
	c[Kind("creeper_spawn_egg")] = PriceEntry{Kind: Kind("creeper_spawn_egg"), Buy: 777, Sell: 777}
	delete(c, Kind("bone"))

	first, changed := Normalize(c, reg)
	require.True(t, changed)

	_, changed = Normalize(first, reg)
	assert.False(t, changed)
}

func TestNormalize_IdempotentWithHalvedCookedPrice(t *testing.T) {
	reg := DefaultRegistry()
	c := GenerateDefaults(reg)

	// (32, 8) halves into the generic block pair (16, 4); the raw side must
	// settle there instead of bouncing to the food default.
	c[Kind("cooked_beef")] = PriceEntry{Kind: Kind("cooked_beef"), Buy: 32, Sell: 8, Category: "Food"}

	first, _ := Normalize(c, reg)
	second, changed := Normalize(first, reg)

	assert.False(t, changed, "second normalize run must be a fixed point")
	assert.Equal(t, first, second)
	assert.Equal(t, int64(16), first[Kind("beef")].Buy)
	assert.Equal(t, int64(4), first[Kind("beef")].Sell)
}

func TestNormalize_Coverage(t *testing.T) {
	reg := DefaultRegistry()
	out := normalized(t, Catalog{})

	require.Equal(t, reg.Len(), len(out), "exactly one entry per known kind")
	for _, kind := range reg.Kinds() {
		e, ok := out[kind]
		require.True(t, ok, "missing entry for %s", kind)
		assert.Equal(t, kind, e.Kind)
		assert.NotEmpty(t, e.Category)
	}

	_, ok := out[Kind("modpack:widget")]
	assert.False(t, ok, "unknown kinds must be dropped")
}

func TestNormalize_SellNeverAboveBuy(t *testing.T) {
	reg := DefaultRegistry()
	c := GenerateDefaults(reg)
	c[Kind("diamond")] = PriceEntry{Kind: Kind("diamond"), Buy: 10, Sell: 5000, Category: "Minerals"}

	out := normalized(t, c)

	for kind, e := range out {
		if e.Buy > 0 && e.Sell > 0 {
			assert.LessOrEqual(t, e.Sell, e.Buy, "sell > buy for %s", kind)
		}
	}
	assert.Equal(t, int64(10), out[Kind("diamond")].Sell, "sell clamped to buy")
}

func TestNormalize_ExclusionsBeatPersistedPrices(t *testing.T) {
	reg := DefaultRegistry()
	c := GenerateDefaults(reg)
	for _, kind := range []ItemKind{
		Kind("creeper_spawn_egg"), Kind("music_disc_cat"), Kind("potion"),
		Kind("diamond_sword"), Kind("enchanted_book"), Kind("command_block"),
		Kind("angler_pottery_sherd"),
	} {
		e := c[kind]
		e.Buy, e.Sell = 12345, 678
		c[kind] = e
	}

	out := normalized(t, c)

	for kind, e := range out {
		if kind.IsExcluded() {
			assert.Zero(t, e.Buy, "excluded kind %s has buy price", kind)
			assert.Zero(t, e.Sell, "excluded kind %s has sell price", kind)
		}
	}
}

func TestNormalize_SanitizeNonPositive(t *testing.T) {
	reg := DefaultRegistry()
	c := GenerateDefaults(reg)
	e := c[Kind("stick")]
	e.Buy, e.Sell = -10, -3
	c[Kind("stick")] = e

	out := normalized(t, c)

	assert.Zero(t, out[Kind("stick")].Buy)
	assert.Zero(t, out[Kind("stick")].Sell)
}

func TestNormalize_ForcedOverrides(t *testing.T) {
	out := normalized(t, Catalog{})

	tests := []struct {
		kind      ItemKind
		buy, sell int64
	}{
		{Kind("raw_iron"), 60, 30},
		{Kind("raw_gold"), 80, 40},
		{Kind("raw_copper"), 20, 10},
		{Kind("nether_star"), 50_000, 20_000},
		{Kind("bundle"), 400, 100},
		{Kind("paper"), 12, 4},
		{Kind("nether_wart"), 30, 12},
		{Kind("blue_dye"), 12, 4},
		{Kind("hopper"), 300, 120},
	}
	for _, tt := range tests {
		e := out[tt.kind]
		assert.Equal(t, tt.buy, e.Buy, "%s buy", tt.kind)
		assert.Equal(t, tt.sell, e.Sell, "%s sell", tt.kind)
	}
}

func TestNormalize_ForcedOverrideBeatsManualValue(t *testing.T) {
	reg := DefaultRegistry()
	c := GenerateDefaults(reg)
	e := c[Kind("paper")]
	e.Buy, e.Sell = 999, 999
	c[Kind("paper")] = e

	out := normalized(t, c)

	assert.Equal(t, int64(12), out[Kind("paper")].Buy)
	assert.Equal(t, int64(4), out[Kind("paper")].Sell)
}

func TestNormalize_DerivedBlocks(t *testing.T) {
	out := normalized(t, Catalog{})

	ingot := out[Kind("iron_ingot")]
	block := out[Kind("iron_block")]
	assert.Equal(t, ingot.Buy*9, block.Buy)
	assert.Equal(t, ingot.Sell*9, block.Sell)

	dust := out[Kind("glowstone_dust")]
	glow := out[Kind("glowstone")]
	assert.Equal(t, dust.Buy*4, glow.Buy)
	assert.Equal(t, dust.Sell*4, glow.Sell)
}

func TestNormalize_DerivedBlockKeepsManualPrice(t *testing.T) {
	reg := DefaultRegistry()
	c := GenerateDefaults(reg)
	e := c[Kind("iron_block")]
	e.Buy, e.Sell = 2_000, 900
	c[Kind("iron_block")] = e

	out := normalized(t, c)

	assert.Equal(t, int64(2_000), out[Kind("iron_block")].Buy, "manual block price must survive")
	assert.Equal(t, int64(900), out[Kind("iron_block")].Sell)
}

func TestNormalize_WoodFamily(t *testing.T) {
	reg := DefaultRegistry()
	c := GenerateDefaults(reg)

	// A plank that inherited the log default must be repaired.
	c[Kind("oak_planks")] = PriceEntry{Kind: Kind("oak_planks"), Buy: defaultLogBuy, Sell: defaultLogSell, Category: "Wood"}
	// A blank plank gets the default too.
	c[Kind("cherry_planks")] = PriceEntry{Kind: Kind("cherry_planks"), Category: "Wood"}
	// A manually priced plank is untouched.
	c[Kind("crimson_planks")] = PriceEntry{Kind: Kind("crimson_planks"), Buy: 64, Sell: 16, Category: "Wood"}

	out := normalized(t, c)

	assert.Equal(t, int64(defaultPlankBuy), out[Kind("oak_planks")].Buy)
	assert.Equal(t, int64(defaultPlankSell), out[Kind("oak_planks")].Sell)
	assert.Equal(t, int64(defaultPlankBuy), out[Kind("cherry_planks")].Buy)
	assert.Equal(t, int64(64), out[Kind("crimson_planks")].Buy)
}

func TestNormalize_FoodCategory(t *testing.T) {
	reg := DefaultRegistry()
	c := GenerateDefaults(reg)

	c[Kind("bread")] = PriceEntry{Kind: Kind("bread"), Category: "Food"}
	c[Kind("cookie")] = PriceEntry{Kind: Kind("cookie"), Buy: defaultBlockBuy, Sell: defaultBlockSell, Category: "Food"}
	c[Kind("cake")] = PriceEntry{Kind: Kind("cake"), Buy: 75, Sell: 25, Category: "Food"}

	out := normalized(t, c)

	assert.Equal(t, int64(defaultFoodBuy), out[Kind("bread")].Buy, "blank edible gets food default")
	assert.Equal(t, int64(defaultFoodBuy), out[Kind("cookie")].Buy, "generic-block-priced edible gets food default")
	assert.Equal(t, int64(75), out[Kind("cake")].Buy, "manual food price untouched")
}

func TestNormalize_OreDropLinkage(t *testing.T) {
	reg := DefaultRegistry()
	out := normalized(t, GenerateDefaults(reg))

	coal := out[Kind("coal")]
	require.Positive(t, coal.Sell)

	for _, ore := range []ItemKind{Kind("coal_ore"), Kind("deepslate_coal_ore")} {
		e := out[ore]
		assert.Zero(t, e.Buy, "%s must not be purchasable", ore)
		assert.Equal(t, coal.Sell, e.Sell, "%s sell tracks its drop", ore)
	}

	diamond := out[Kind("diamond")]
	assert.Equal(t, diamond.Sell, out[Kind("diamond_ore")].Sell)
	assert.Equal(t, out[Kind("netherite_scrap")].Sell, out[Kind("ancient_debris")].Sell)
}

func TestNormalize_RawCookedLinkage(t *testing.T) {
	reg := DefaultRegistry()
	c := GenerateDefaults(reg)
	c[Kind("cooked_beef")] = PriceEntry{Kind: Kind("cooked_beef"), Buy: 25, Sell: 11, Category: "Food"}

	out := normalized(t, c)

	// Integer division toward zero.
	assert.Equal(t, int64(12), out[Kind("beef")].Buy)
	assert.Equal(t, int64(5), out[Kind("beef")].Sell)
}

func TestRuleNames_Order(t *testing.T) {
	names := RuleNames()
	require.GreaterOrEqual(t, len(names), 9)
	assert.Equal(t, "coverage", names[0])
	assert.Equal(t, "exclusions", names[1])
	assert.Equal(t, "sanitize", names[2])
	assert.Equal(t, "forced_overrides", names[3])
}
