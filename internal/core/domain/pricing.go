package domain

// Generic defaults referenced by multiple rules. The derived-block and
// food-category rules treat a price equal to these as "generic", i.e. not
// manually set, and free to overwrite.
const (
	defaultBlockBuy  int64 = 16
	defaultBlockSell int64 = 4
	defaultLogBuy    int64 = 8
	defaultLogSell   int64 = 2
	defaultPlankBuy  int64 = 2
	defaultPlankSell int64 = 1
	defaultFoodBuy   int64 = 10
	defaultFoodSell  int64 = 3
)

// pricingRule is one step of the normalization pipeline: a pure transform over
// a catalog that reports whether it changed anything.
type pricingRule struct {
	name  string
	apply func(c Catalog, reg *Registry) bool
}

// pipeline lists the rules in their fixed execution order. Later rules may
// overwrite earlier ones; exclusions and forced overrides run before the
// generic derivation rules so manual values never leak into excluded kinds.
var pipeline = []pricingRule{
	{"coverage", ruleCoverage},
	{"exclusions", ruleExclusions},
	{"sanitize", ruleSanitize},
	{"forced_overrides", ruleForcedOverrides},
	{"derived_blocks", ruleDerivedBlocks},
	{"wood_family", ruleWoodFamily},
	{"food_category", ruleFoodCategory},
	{"ore_drop_linkage", ruleOreDropLinkage},
	{"raw_cooked_linkage", ruleRawCookedLinkage},
	// Exclusions win over everything, including linkage rules that might have
	// re-priced an excluded kind through a table entry.
	{"exclusions_final", ruleExclusions},
	{"sanitize_final", ruleSanitize},
}

// maxNormalizePasses bounds the fixed-point iteration. The derivation rules
// only copy values out of fixed tables and already-priced entries, so the
// catalog stabilizes within a few passes; the bound guards against a rule bug
// looping forever.
const maxNormalizePasses = 8

// Normalize applies the full rule pipeline to a snapshot of the catalog,
// repeating until a pass changes nothing, and returns the repaired catalog
// plus whether anything changed. Applying it a second time to its own output
// is a no-op.
func Normalize(c Catalog, reg *Registry) (Catalog, bool) {
	out := c.Clone()
	changed := false
	for pass := 0; pass < maxNormalizePasses; pass++ {
		passChanged := false
		for _, rule := range pipeline {
			if rule.apply(out, reg) {
				passChanged = true
			}
		}
		if !passChanged {
			break
		}
		changed = true
	}
	return out, changed
}

// RuleNames returns the pipeline step names in execution order.
func RuleNames() []string {
	names := make([]string, len(pipeline))
	for i, r := range pipeline {
		names[i] = r.name
	}
	return names
}

// ruleCoverage ensures exactly one entry per known kind: entries for unknown
// kinds are dropped, missing kinds gain blank entries, and category labels are
// repaired from the registry.
func ruleCoverage(c Catalog, reg *Registry) bool {
	changed := false
	for kind := range c {
		if !reg.Known(kind) {
			delete(c, kind)
			changed = true
		}
	}
	for _, kind := range reg.Kinds() {
		def, _ := reg.Def(kind)
		entry, ok := c[kind]
		if !ok {
			c[kind] = PriceEntry{Kind: kind, Category: def.Family.Category()}
			changed = true
			continue
		}
		if entry.Kind != kind || entry.Category != def.Family.Category() {
			entry.Kind = kind
			entry.Category = def.Family.Category()
			c[kind] = entry
			changed = true
		}
	}
	return changed
}

// ruleExclusions blanks both prices for excluded kinds regardless of any other
// rule or persisted value.
func ruleExclusions(c Catalog, _ *Registry) bool {
	changed := false
	for kind, entry := range c {
		if !kind.IsExcluded() {
			continue
		}
		if entry.Buy != 0 || entry.Sell != 0 {
			entry.Buy, entry.Sell = 0, 0
			c[kind] = entry
			changed = true
		}
	}
	return changed
}

// ruleSanitize treats non-positive prices as absent and clamps sell to buy
// when both are present.
func ruleSanitize(c Catalog, _ *Registry) bool {
	changed := false
	for kind, entry := range c {
		orig := entry
		if entry.Buy < 0 {
			entry.Buy = 0
		}
		if entry.Sell < 0 {
			entry.Sell = 0
		}
		if entry.Buy > 0 && entry.Sell > entry.Buy {
			entry.Sell = entry.Buy
		}
		if entry != orig {
			c[kind] = entry
			changed = true
		}
	}
	return changed
}

// forcedOverrides fixes exact (buy, sell) pairs for kinds whose value the
// family defaults get wrong. Unconditional: a persisted or derived price is
// always replaced.
var forcedOverrides = map[ItemKind]struct{ buy, sell int64 }{
	// Raw-ore triplet.
	Kind("raw_iron"):   {60, 30},
	Kind("raw_gold"):   {80, 40},
	Kind("raw_copper"): {20, 10},
	// Boss loot.
	Kind("nether_star"):      {50_000, 20_000},
	Kind("dragon_egg"):       {100_000, 0},
	Kind("dragon_head"):      {25_000, 10_000},
	Kind("heavy_core"):       {30_000, 12_000},
	Kind("totem_of_undying"): {15_000, 5_000},
	// Bundles.
	Kind("bundle"): {400, 100},
	// Books and paper.
	Kind("book"):          {40, 15},
	Kind("paper"):         {12, 4},
	Kind("writable_book"): {80, 30},
	// Golden apples.
	Kind("golden_apple"):           {400, 100},
	Kind("enchanted_golden_apple"): {5_000, 0},
	// Brewing ingredients.
	Kind("nether_wart"):            {30, 12},
	Kind("blaze_powder"):           {40, 16},
	Kind("ghast_tear"):             {200, 80},
	Kind("fermented_spider_eye"):   {30, 10},
	Kind("glistering_melon_slice"): {50, 20},
	Kind("magma_cream"):            {45, 18},
	Kind("rabbit_foot"):            {120, 48},
	Kind("phantom_membrane"):       {90, 36},
	// Dyes share one pair.
	Kind("white_dye"): {12, 4}, Kind("orange_dye"): {12, 4},
	Kind("magenta_dye"): {12, 4}, Kind("light_blue_dye"): {12, 4},
	Kind("yellow_dye"): {12, 4}, Kind("lime_dye"): {12, 4},
	Kind("pink_dye"): {12, 4}, Kind("gray_dye"): {12, 4},
	Kind("light_gray_dye"): {12, 4}, Kind("cyan_dye"): {12, 4},
	Kind("purple_dye"): {12, 4}, Kind("blue_dye"): {12, 4},
	Kind("brown_dye"): {12, 4}, Kind("green_dye"): {12, 4},
	Kind("red_dye"): {12, 4}, Kind("black_dye"): {12, 4},
	// Redstone components.
	Kind("redstone"): {20, 8}, Kind("redstone_torch"): {24, 8},
	Kind("repeater"): {60, 24}, Kind("comparator"): {90, 36},
	Kind("piston"): {80, 32}, Kind("sticky_piston"): {120, 48},
	Kind("observer"): {100, 40}, Kind("hopper"): {300, 120},
	Kind("dropper"): {40, 16}, Kind("dispenser"): {100, 40},
	Kind("lever"): {10, 3}, Kind("daylight_detector"): {90, 36},
}

func ruleForcedOverrides(c Catalog, _ *Registry) bool {
	changed := false
	for kind, p := range forcedOverrides {
		entry, ok := c[kind]
		if !ok {
			continue
		}
		if entry.Buy != p.buy || entry.Sell != p.sell {
			entry.Buy, entry.Sell = p.buy, p.sell
			c[kind] = entry
			changed = true
		}
	}
	return changed
}

// derivedBlocks lists compressed blocks, their base item, and the packing
// factor. When a block's price looks generic it is re-derived as base x factor;
// a manually set block price is left alone.
var derivedBlocks = []struct {
	block, base ItemKind
	factor      int64
}{
	{Kind("coal_block"), Kind("coal"), 9},
	{Kind("iron_block"), Kind("iron_ingot"), 9},
	{Kind("gold_block"), Kind("gold_ingot"), 9},
	{Kind("copper_block"), Kind("copper_ingot"), 9},
	{Kind("netherite_block"), Kind("netherite_ingot"), 9},
	{Kind("diamond_block"), Kind("diamond"), 9},
	{Kind("emerald_block"), Kind("emerald"), 9},
	{Kind("lapis_block"), Kind("lapis_lazuli"), 9},
	{Kind("redstone_block"), Kind("redstone"), 9},
	{Kind("raw_iron_block"), Kind("raw_iron"), 9},
	{Kind("raw_gold_block"), Kind("raw_gold"), 9},
	{Kind("raw_copper_block"), Kind("raw_copper"), 9},
	{Kind("quartz_block"), Kind("quartz"), 4},
	{Kind("amethyst_block"), Kind("amethyst_shard"), 4},
	{Kind("glowstone"), Kind("glowstone_dust"), 4},
	{Kind("hay_block"), Kind("wheat"), 9},
	{Kind("dried_kelp_block"), Kind("dried_kelp"), 9},
	{Kind("slime_block"), Kind("slime_ball"), 9},
	{Kind("honey_block"), Kind("honey_bottle"), 4},
	{Kind("bone_block"), Kind("bone_meal"), 9},
	{Kind("snow_block"), Kind("snowball"), 4},
	{Kind("clay"), Kind("clay_ball"), 4},
	{Kind("melon"), Kind("melon_slice"), 9},
}

func looksGenericBlock(e PriceEntry) bool {
	if e.Buy == 0 && e.Sell == 0 {
		return true
	}
	return e.Buy == defaultBlockBuy && e.Sell == defaultBlockSell
}

func ruleDerivedBlocks(c Catalog, _ *Registry) bool {
	changed := false
	for _, d := range derivedBlocks {
		blockEntry, ok := c[d.block]
		if !ok {
			continue
		}
		baseEntry, ok := c[d.base]
		if !ok {
			continue
		}
		if !looksGenericBlock(blockEntry) {
			continue
		}
		buy, sell := baseEntry.Buy*d.factor, baseEntry.Sell*d.factor
		if blockEntry.Buy != buy || blockEntry.Sell != sell {
			blockEntry.Buy, blockEntry.Sell = buy, sell
			c[d.block] = blockEntry
			changed = true
		}
	}
	return changed
}

// ruleWoodFamily pins every plank kind to the plank default whenever its price
// is absent or still equals the log default. Planks must never silently
// inherit a log's price.
func ruleWoodFamily(c Catalog, reg *Registry) bool {
	changed := false
	for kind, entry := range c {
		def, ok := reg.Def(kind)
		if !ok || def.Family != FamilyPlanks {
			continue
		}
		absent := entry.Buy == 0 && entry.Sell == 0
		logPriced := entry.Buy == defaultLogBuy && entry.Sell == defaultLogSell
		if !absent && !logPriced {
			continue
		}
		if entry.Buy != defaultPlankBuy || entry.Sell != defaultPlankSell {
			entry.Buy, entry.Sell = defaultPlankBuy, defaultPlankSell
			c[kind] = entry
			changed = true
		}
	}
	return changed
}

// ruleFoodCategory gives every edible kind that has no price, or a price that
// looks like a generic block price, the food default. Raw kinds owned by the
// raw/cooked linkage are left to that rule: a halved cooked price can land on
// the generic pair, and re-defaulting it here would never reach a fixed point.
func ruleFoodCategory(c Catalog, reg *Registry) bool {
	changed := false
	for kind, entry := range c {
		def, ok := reg.Def(kind)
		if !ok || def.Family != FamilyFood {
			continue
		}
		if kind.IsExcluded() {
			continue
		}
		if cooked, linked := rawFromCooked[kind]; linked {
			if ce, ok := c[cooked]; ok && (ce.Buy > 0 || ce.Sell > 0) {
				continue
			}
		}
		if !looksGenericBlock(entry) {
			continue
		}
		if entry.Buy != defaultFoodBuy || entry.Sell != defaultFoodSell {
			entry.Buy, entry.Sell = defaultFoodBuy, defaultFoodSell
			c[kind] = entry
			changed = true
		}
	}
	return changed
}

// oreDrops links each ore kind to the resource it drops. Ores get that
// resource's sell price and stay unpurchasable.
var oreDrops = map[ItemKind]ItemKind{
	Kind("coal_ore"):               Kind("coal"),
	Kind("deepslate_coal_ore"):     Kind("coal"),
	Kind("iron_ore"):               Kind("raw_iron"),
	Kind("deepslate_iron_ore"):     Kind("raw_iron"),
	Kind("copper_ore"):             Kind("raw_copper"),
	Kind("deepslate_copper_ore"):   Kind("raw_copper"),
	Kind("gold_ore"):               Kind("raw_gold"),
	Kind("deepslate_gold_ore"):     Kind("raw_gold"),
	Kind("nether_gold_ore"):        Kind("gold_nugget"),
	Kind("lapis_ore"):              Kind("lapis_lazuli"),
	Kind("deepslate_lapis_ore"):    Kind("lapis_lazuli"),
	Kind("redstone_ore"):           Kind("redstone"),
	Kind("deepslate_redstone_ore"): Kind("redstone"),
	Kind("diamond_ore"):            Kind("diamond"),
	Kind("deepslate_diamond_ore"):  Kind("diamond"),
	Kind("emerald_ore"):            Kind("emerald"),
	Kind("deepslate_emerald_ore"):  Kind("emerald"),
	Kind("nether_quartz_ore"):      Kind("quartz"),
	Kind("ancient_debris"):         Kind("netherite_scrap"),
}

func ruleOreDropLinkage(c Catalog, _ *Registry) bool {
	changed := false
	for ore, drop := range oreDrops {
		oreEntry, ok := c[ore]
		if !ok {
			continue
		}
		dropEntry, ok := c[drop]
		if !ok || dropEntry.Sell <= 0 {
			continue
		}
		if oreEntry.Buy != 0 || oreEntry.Sell != dropEntry.Sell {
			oreEntry.Buy = 0
			oreEntry.Sell = dropEntry.Sell
			c[ore] = oreEntry
			changed = true
		}
	}
	return changed
}

// cookedToRaw links cooked foods to their raw form: the raw entry is priced at
// half the cooked entry, integer division toward zero.
var cookedToRaw = map[ItemKind]ItemKind{
	Kind("cooked_beef"):     Kind("beef"),
	Kind("cooked_porkchop"): Kind("porkchop"),
	Kind("cooked_chicken"):  Kind("chicken"),
	Kind("cooked_mutton"):   Kind("mutton"),
	Kind("cooked_rabbit"):   Kind("rabbit"),
	Kind("cooked_cod"):      Kind("cod"),
	Kind("cooked_salmon"):   Kind("salmon"),
	Kind("baked_potato"):    Kind("potato"),
	Kind("dried_kelp"):      Kind("kelp"),
}

// rawFromCooked inverts cookedToRaw for the food-category rule.
var rawFromCooked = func() map[ItemKind]ItemKind {
	m := make(map[ItemKind]ItemKind, len(cookedToRaw))
	for cooked, raw := range cookedToRaw {
		m[raw] = cooked
	}
	return m
}()

func ruleRawCookedLinkage(c Catalog, _ *Registry) bool {
	changed := false
	for cooked, raw := range cookedToRaw {
		cookedEntry, ok := c[cooked]
		if !ok {
			continue
		}
		rawEntry, ok := c[raw]
		if !ok {
			continue
		}
		if cookedEntry.Buy <= 0 && cookedEntry.Sell <= 0 {
			continue
		}
		buy, sell := cookedEntry.Buy/2, cookedEntry.Sell/2
		if rawEntry.Buy != buy || rawEntry.Sell != sell {
			rawEntry.Buy, rawEntry.Sell = buy, sell
			c[raw] = rawEntry
			changed = true
		}
	}
	return changed
}
