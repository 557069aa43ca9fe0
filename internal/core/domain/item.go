package domain

import "strings"

// ItemKind identifies a class of tradeable item as a namespaced path string,
// e.g. "minecraft:diamond". Auxiliary data (enchantment, level) may be encoded
// after a '#' separator for catalog lookup; the traded payload itself is opaque
// to the engine.
type ItemKind string

const kindNamespace = "minecraft:"

// Kind builds an ItemKind from a path, qualifying it with the default
// namespace when it carries none. An already-namespaced kind passes through
// unchanged, aux data included.
func Kind(path string) ItemKind {
	bare := path
	if i := strings.IndexByte(bare, '#'); i >= 0 {
		bare = bare[:i]
	}
	if strings.IndexByte(bare, ':') >= 0 {
		return ItemKind(path)
	}
	return ItemKind(kindNamespace + path)
}

// Base strips any '#'-encoded auxiliary data, returning the kind used for
// catalog lookup. "minecraft:enchanted_book#sharpness:3" -> "minecraft:enchanted_book".
func (k ItemKind) Base() ItemKind {
	if i := strings.IndexByte(string(k), '#'); i >= 0 {
		return k[:i]
	}
	return k
}

// Path returns the portion after the namespace separator.
func (k ItemKind) Path() string {
	s := string(k.Base())
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Family groups item kinds for default pricing and rule classification.
type Family string

const (
	FamilyOre       Family = "ore"
	FamilyRawOre    Family = "raw_ore"
	FamilyIngot     Family = "ingot"
	FamilyNugget    Family = "nugget"
	FamilyGem       Family = "gem"
	FamilyCoal      Family = "coal"
	FamilyFood      Family = "food"
	FamilyLog       Family = "log"
	FamilyPlanks    Family = "planks"
	FamilyStairs    Family = "stairs"
	FamilySlab      Family = "slab"
	FamilyWall      Family = "wall"
	FamilyBlock     Family = "block"
	FamilyMobDrop   Family = "mob_drop"
	FamilyDye       Family = "dye"
	FamilyRedstone  Family = "redstone"
	FamilyBrewing   Family = "brewing"
	FamilyBook      Family = "book"
	FamilyEquipment Family = "equipment"
	FamilyPotion    Family = "potion"
	FamilyDisc      Family = "disc"
	FamilySpawnEgg  Family = "spawn_egg"
	FamilyCosmetic  Family = "cosmetic"
	FamilyAdmin     Family = "admin"
	FamilyMisc      Family = "misc"
)

// familyCategories maps each family to its display category label.
var familyCategories = map[Family]string{
	FamilyOre:       "Minerals",
	FamilyRawOre:    "Minerals",
	FamilyIngot:     "Minerals",
	FamilyNugget:    "Minerals",
	FamilyGem:       "Minerals",
	FamilyCoal:      "Minerals",
	FamilyFood:      "Food",
	FamilyLog:       "Wood",
	FamilyPlanks:    "Wood",
	FamilyStairs:    "Blocks",
	FamilySlab:      "Blocks",
	FamilyWall:      "Blocks",
	FamilyBlock:     "Blocks",
	FamilyMobDrop:   "Mob Drops",
	FamilyDye:       "Dyes",
	FamilyRedstone:  "Redstone",
	FamilyBrewing:   "Brewing",
	FamilyBook:      "Miscellaneous",
	FamilyEquipment: "Miscellaneous",
	FamilyPotion:    "Miscellaneous",
	FamilyDisc:      "Miscellaneous",
	FamilySpawnEgg:  "Miscellaneous",
	FamilyCosmetic:  "Miscellaneous",
	FamilyAdmin:     "Miscellaneous",
	FamilyMisc:      "Miscellaneous",
}

// Category returns the display category for a family.
func (f Family) Category() string {
	if c, ok := familyCategories[f]; ok {
		return c
	}
	return "Miscellaneous"
}

// ItemDef describes one known item kind.
type ItemDef struct {
	Kind   ItemKind
	Family Family
}

// Registry is the set of known item kinds. The host supplies it; the engine
// never prices a kind outside the registry.
type Registry struct {
	defs  map[ItemKind]ItemDef
	order []ItemKind
}

// NewRegistry builds a registry from definitions, preserving order and
// ignoring duplicate kinds after the first.
func NewRegistry(defs []ItemDef) *Registry {
	r := &Registry{defs: make(map[ItemKind]ItemDef, len(defs))}
	for _, d := range defs {
		if _, dup := r.defs[d.Kind]; dup {
			continue
		}
		r.defs[d.Kind] = d
		r.order = append(r.order, d.Kind)
	}
	return r
}

// Known reports whether the kind (base form) is registered.
func (r *Registry) Known(kind ItemKind) bool {
	_, ok := r.defs[kind.Base()]
	return ok
}

// Def returns the definition for a kind (base form).
func (r *Registry) Def(kind ItemKind) (ItemDef, bool) {
	d, ok := r.defs[kind.Base()]
	return d, ok
}

// Kinds returns all registered kinds in registration order.
func (r *Registry) Kinds() []ItemKind {
	out := make([]ItemKind, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	return len(r.order)
}

// ---- Classification predicates ----
//
// These drive the exclusion step of catalog normalization. They are pattern
// based rather than registry based so persisted entries for kinds with a
// recognizable shape are excluded even if a stale registry misses them.

// IsSpawnEgg reports spawn-egg-like kinds.
func (k ItemKind) IsSpawnEgg() bool {
	return strings.HasSuffix(k.Path(), "_spawn_egg")
}

// IsMusicDisc reports collectible disc kinds.
func (k ItemKind) IsMusicDisc() bool {
	p := k.Path()
	return strings.HasPrefix(p, "music_disc_") || p == "disc_fragment_5"
}

// IsCosmeticTemplate reports armor trims, banner patterns, and pottery sherds.
func (k ItemKind) IsCosmeticTemplate() bool {
	p := k.Path()
	return strings.HasSuffix(p, "_smithing_template") ||
		strings.HasSuffix(p, "_banner_pattern") ||
		strings.HasSuffix(p, "_pottery_sherd")
}

// IsPotionFamily reports potion-family kinds.
func (k ItemKind) IsPotionFamily() bool {
	switch k.Path() {
	case "potion", "splash_potion", "lingering_potion", "tipped_arrow", "ominous_bottle":
		return true
	}
	return false
}

var equipmentSuffixes = []string{
	"_sword", "_helmet", "_chestplate", "_leggings", "_boots", "_horse_armor",
}

// IsEquipment reports weapon and armor kinds.
func (k ItemKind) IsEquipment() bool {
	p := k.Path()
	for _, suf := range equipmentSuffixes {
		if strings.HasSuffix(p, suf) {
			return true
		}
	}
	switch p {
	case "bow", "crossbow", "trident", "shield", "mace", "elytra", "turtle_helmet":
		return true
	}
	return false
}

// IsAdminItem reports administrative or test/debug kinds that must never carry
// a price.
func (k ItemKind) IsAdminItem() bool {
	p := k.Path()
	if strings.HasPrefix(p, "test_") || strings.HasPrefix(p, "command_block") {
		return true
	}
	switch p {
	case "chain_command_block", "repeating_command_block", "command_block_minecart",
		"structure_block", "structure_void", "jigsaw", "barrier", "bedrock",
		"spawner", "trial_spawner", "vault", "light", "debug_stick", "knowledge_book",
		"reinforced_deepslate", "end_portal_frame", "petrified_oak_slab":
		return true
	}
	return false
}

// IsEnchantedBook reports the enchanted-book family (any aux-encoded variant).
func (k ItemKind) IsEnchantedBook() bool {
	return k.Path() == "enchanted_book"
}

// IsExcluded reports whether the kind falls under any catalog exclusion.
func (k ItemKind) IsExcluded() bool {
	return k.IsAdminItem() || k.IsSpawnEgg() || k.IsMusicDisc() ||
		k.IsCosmeticTemplate() || k.IsPotionFamily() || k.IsEquipment() ||
		k.IsEnchantedBook()
}
