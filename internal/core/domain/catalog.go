package domain

// PriceEntry holds the catalog prices for one item kind. A zero Buy or Sell
// means absent: the item cannot be bought from, or sold to, the catalog.
type PriceEntry struct {
	Kind     ItemKind `json:"kind"`
	Buy      int64    `json:"buy,omitempty"`
	Sell     int64    `json:"sell,omitempty"`
	Category string   `json:"category"`
}

// Buyable reports whether the entry carries a buy price.
func (e PriceEntry) Buyable() bool { return e.Buy > 0 }

// Sellable reports whether the entry carries a sell price.
func (e PriceEntry) Sellable() bool { return e.Sell > 0 }

// Catalog maps every known item kind to its price entry.
type Catalog map[ItemKind]PriceEntry

// Clone returns a deep copy of the catalog.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for k, e := range c {
		out[k] = e
	}
	return out
}

// Default family prices used when generating a fresh catalog. Later rules of
// the normalization pipeline refine or override these.
var familyDefaults = map[Family]struct{ buy, sell int64 }{
	FamilyOre:     {0, 5},
	FamilyRawOre:  {0, 20}, // forced-override table fixes the exact triplet values
	FamilyIngot:   {120, 60},
	FamilyNugget:  {15, 6},
	FamilyGem:     {160, 80},
	FamilyCoal:    {24, 12},
	FamilyFood:    {defaultFoodBuy, defaultFoodSell},
	FamilyLog:     {defaultLogBuy, defaultLogSell},
	FamilyPlanks:  {defaultPlankBuy, defaultPlankSell},
	FamilyStairs:  {12, 3},
	FamilySlab:    {8, 2},
	FamilyWall:    {12, 3},
	FamilyBlock:   {defaultBlockBuy, defaultBlockSell},
	FamilyMobDrop: {20, 8},
	FamilyDye:     {12, 4},
	// Remaining families start blank; overrides or linkage rules may fill
	// some of them in.
}

// GenerateDefaults builds a catalog covering every registered kind, assigning
// initial prices by item family. The result still requires a Normalize pass.
func GenerateDefaults(reg *Registry) Catalog {
	c := make(Catalog, reg.Len())
	for _, kind := range reg.Kinds() {
		def, _ := reg.Def(kind)
		entry := PriceEntry{Kind: kind, Category: def.Family.Category()}
		if d, ok := familyDefaults[def.Family]; ok {
			entry.Buy, entry.Sell = d.buy, d.sell
		}
		c[kind] = entry
	}
	return c
}
