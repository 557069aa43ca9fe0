package domain

// DefaultRegistry returns the built-in vanilla item-kind registry. A host with
// a different item set (mods, data packs) supplies its own registry instead.
func DefaultRegistry() *Registry {
	var defs []ItemDef
	add := func(f Family, paths ...string) {
		for _, p := range paths {
			defs = append(defs, ItemDef{Kind: Kind(p), Family: f})
		}
	}

	// Ores, stone and deepslate variants.
	add(FamilyOre,
		"coal_ore", "deepslate_coal_ore",
		"iron_ore", "deepslate_iron_ore",
		"copper_ore", "deepslate_copper_ore",
		"gold_ore", "deepslate_gold_ore", "nether_gold_ore",
		"lapis_ore", "deepslate_lapis_ore",
		"redstone_ore", "deepslate_redstone_ore",
		"diamond_ore", "deepslate_diamond_ore",
		"emerald_ore", "deepslate_emerald_ore",
		"nether_quartz_ore", "ancient_debris",
	)

	add(FamilyRawOre, "raw_iron", "raw_gold", "raw_copper")

	add(FamilyIngot, "iron_ingot", "gold_ingot", "copper_ingot", "netherite_ingot", "netherite_scrap")
	add(FamilyNugget, "iron_nugget", "gold_nugget")
	add(FamilyGem, "diamond", "emerald", "lapis_lazuli", "quartz", "amethyst_shard", "prismarine_shard", "prismarine_crystals")
	add(FamilyCoal, "coal", "charcoal")

	// Storage / compressed blocks.
	add(FamilyBlock,
		"coal_block", "iron_block", "gold_block", "copper_block", "netherite_block",
		"diamond_block", "emerald_block", "lapis_block", "redstone_block",
		"raw_iron_block", "raw_gold_block", "raw_copper_block",
		"quartz_block", "amethyst_block", "glowstone", "hay_block", "dried_kelp_block",
		"slime_block", "honey_block", "bone_block", "snow_block", "clay", "melon",
	)

	// Generic building blocks.
	add(FamilyBlock,
		"stone", "cobblestone", "mossy_cobblestone", "stone_bricks", "mossy_stone_bricks",
		"cracked_stone_bricks", "chiseled_stone_bricks", "smooth_stone",
		"granite", "polished_granite", "diorite", "polished_diorite",
		"andesite", "polished_andesite", "deepslate", "cobbled_deepslate",
		"polished_deepslate", "deepslate_bricks", "deepslate_tiles", "tuff", "calcite",
		"dirt", "coarse_dirt", "rooted_dirt", "grass_block", "podzol", "mycelium", "mud",
		"packed_mud", "mud_bricks", "sand", "red_sand", "gravel", "sandstone",
		"smooth_sandstone", "chiseled_sandstone", "cut_sandstone", "red_sandstone",
		"smooth_red_sandstone", "terracotta", "bricks", "obsidian", "crying_obsidian",
		"netherrack", "soul_sand", "soul_soil", "basalt", "smooth_basalt", "polished_basalt",
		"blackstone", "polished_blackstone", "polished_blackstone_bricks", "gilded_blackstone",
		"end_stone", "end_stone_bricks", "purpur_block", "purpur_pillar",
		"prismarine", "prismarine_bricks", "dark_prismarine", "sea_lantern",
		"glass", "tinted_glass", "ice", "packed_ice", "blue_ice", "magma_block",
		"sponge", "wet_sponge", "moss_block", "sculk", "nether_bricks",
		"red_nether_bricks", "chiseled_nether_bricks", "nether_wart_block", "warped_wart_block",
		"shroomlight", "ochre_froglight", "verdant_froglight", "pearlescent_froglight",
	)

	add(FamilyStairs,
		"stone_stairs", "cobblestone_stairs", "stone_brick_stairs", "granite_stairs",
		"diorite_stairs", "andesite_stairs", "sandstone_stairs", "red_sandstone_stairs",
		"brick_stairs", "nether_brick_stairs", "quartz_stairs", "purpur_stairs",
		"prismarine_stairs", "prismarine_brick_stairs", "dark_prismarine_stairs",
		"blackstone_stairs", "polished_blackstone_stairs", "polished_blackstone_brick_stairs",
		"cobbled_deepslate_stairs", "polished_deepslate_stairs", "deepslate_brick_stairs",
		"deepslate_tile_stairs", "end_stone_brick_stairs", "mud_brick_stairs",
		"oak_stairs", "spruce_stairs", "birch_stairs", "jungle_stairs", "acacia_stairs",
		"dark_oak_stairs", "mangrove_stairs", "cherry_stairs", "pale_oak_stairs",
		"bamboo_stairs", "crimson_stairs", "warped_stairs",
	)

	add(FamilySlab,
		"stone_slab", "cobblestone_slab", "stone_brick_slab", "smooth_stone_slab",
		"granite_slab", "diorite_slab", "andesite_slab", "sandstone_slab",
		"red_sandstone_slab", "brick_slab", "nether_brick_slab", "quartz_slab",
		"purpur_slab", "prismarine_slab", "prismarine_brick_slab", "dark_prismarine_slab",
		"blackstone_slab", "polished_blackstone_slab", "polished_blackstone_brick_slab",
		"cobbled_deepslate_slab", "polished_deepslate_slab", "deepslate_brick_slab",
		"deepslate_tile_slab", "end_stone_brick_slab", "mud_brick_slab",
		"oak_slab", "spruce_slab", "birch_slab", "jungle_slab", "acacia_slab",
		"dark_oak_slab", "mangrove_slab", "cherry_slab", "pale_oak_slab",
		"bamboo_slab", "crimson_slab", "warped_slab",
	)

	add(FamilyWall,
		"cobblestone_wall", "mossy_cobblestone_wall", "stone_brick_wall",
		"mossy_stone_brick_wall", "granite_wall", "diorite_wall", "andesite_wall",
		"sandstone_wall", "red_sandstone_wall", "brick_wall", "nether_brick_wall",
		"red_nether_brick_wall", "blackstone_wall", "polished_blackstone_wall",
		"polished_blackstone_brick_wall", "cobbled_deepslate_wall", "polished_deepslate_wall",
		"deepslate_brick_wall", "deepslate_tile_wall", "end_stone_brick_wall",
		"mud_brick_wall", "prismarine_wall",
	)

	// Wood.
	add(FamilyLog,
		"oak_log", "spruce_log", "birch_log", "jungle_log", "acacia_log",
		"dark_oak_log", "mangrove_log", "cherry_log", "pale_oak_log",
		"crimson_stem", "warped_stem", "bamboo_block",
		"stripped_oak_log", "stripped_spruce_log", "stripped_birch_log",
		"stripped_jungle_log", "stripped_acacia_log", "stripped_dark_oak_log",
		"stripped_mangrove_log", "stripped_cherry_log", "stripped_pale_oak_log",
		"stripped_crimson_stem", "stripped_warped_stem",
	)

	add(FamilyPlanks,
		"oak_planks", "spruce_planks", "birch_planks", "jungle_planks",
		"acacia_planks", "dark_oak_planks", "mangrove_planks", "cherry_planks",
		"pale_oak_planks", "bamboo_planks", "crimson_planks", "warped_planks",
	)

	// Food and crops.
	add(FamilyFood,
		"apple", "golden_apple", "enchanted_golden_apple", "bread", "cookie", "cake",
		"pumpkin_pie", "melon_slice", "sweet_berries", "glow_berries", "chorus_fruit",
		"carrot", "golden_carrot", "potato", "baked_potato", "poisonous_potato",
		"beetroot", "beetroot_soup", "mushroom_stew", "rabbit_stew", "suspicious_stew",
		"beef", "cooked_beef", "porkchop", "cooked_porkchop", "chicken", "cooked_chicken",
		"mutton", "cooked_mutton", "rabbit", "cooked_rabbit", "cod", "cooked_cod",
		"salmon", "cooked_salmon", "tropical_fish", "pufferfish", "dried_kelp",
		"honey_bottle", "milk_bucket", "wheat", "wheat_seeds", "beetroot_seeds",
		"pumpkin_seeds", "melon_seeds", "torchflower_seeds", "pitcher_pod",
		"sugar_cane", "sugar", "egg", "pumpkin", "carved_pumpkin", "kelp", "cactus",
		"cocoa_beans", "nether_wart", "brown_mushroom", "red_mushroom",
	)

	// Common mob drops.
	add(FamilyMobDrop,
		"rotten_flesh", "bone", "bone_meal", "string", "spider_eye", "gunpowder",
		"ender_pearl", "ender_eye", "blaze_rod", "blaze_powder", "ghast_tear",
		"slime_ball", "magma_cream", "phantom_membrane", "rabbit_hide", "rabbit_foot",
		"leather", "feather", "ink_sac", "glow_ink_sac", "honeycomb", "turtle_scute",
		"armadillo_scute", "shulker_shell", "nautilus_shell", "heart_of_the_sea",
		"echo_shard", "breeze_rod", "wither_skeleton_skull", "dragon_breath",
		"experience_bottle", "fermented_spider_eye", "glistering_melon_slice",
		"glowstone_dust",
	)

	// Dyes.
	add(FamilyDye,
		"white_dye", "orange_dye", "magenta_dye", "light_blue_dye", "yellow_dye",
		"lime_dye", "pink_dye", "gray_dye", "light_gray_dye", "cyan_dye",
		"purple_dye", "blue_dye", "brown_dye", "green_dye", "red_dye", "black_dye",
	)

	// Redstone components.
	add(FamilyRedstone,
		"redstone", "redstone_torch", "repeater", "comparator", "piston",
		"sticky_piston", "observer", "hopper", "dropper", "dispenser", "lever",
		"daylight_detector", "target", "tripwire_hook", "note_block", "tnt",
		"rail", "powered_rail", "detector_rail", "activator_rail", "lightning_rod",
		"redstone_lamp", "sculk_sensor", "calibrated_sculk_sensor", "crafter",
	)

	// Brewing ingredients (nether_wart lives under food/crops above).
	add(FamilyBrewing, "brewing_stand", "cauldron", "glass_bottle")

	// Books and paper.
	add(FamilyBook, "book", "paper", "writable_book", "bookshelf", "chiseled_bookshelf")

	// Miscellaneous utility items.
	add(FamilyMisc,
		"stick", "bowl", "bucket", "water_bucket", "lava_bucket", "flint",
		"flint_and_steel", "shears", "compass", "recovery_compass", "clock",
		"fishing_rod", "lead", "name_tag", "saddle", "spyglass", "brush", "bundle",
		"totem_of_undying", "nether_star", "dragon_egg", "dragon_head", "heavy_core",
		"beacon", "conduit", "end_crystal", "ender_chest", "chest", "crafting_table",
		"furnace", "blast_furnace", "smoker", "anvil", "chipped_anvil", "damaged_anvil",
		"grindstone", "smithing_table", "fletching_table", "cartography_table",
		"stonecutter", "loom", "barrel", "composter", "lectern", "scaffolding",
		"ladder", "torch", "soul_torch", "lantern", "soul_lantern", "campfire",
		"soul_campfire", "item_frame", "glow_item_frame", "painting", "armor_stand",
		"flower_pot", "clay_ball", "brick", "nether_brick", "snowball",
		"firework_rocket", "firework_star", "arrow", "spectral_arrow",
		"map", "shulker_box", "respawn_anchor", "lodestone", "chain", "iron_bars",
		"candle", "amethyst_cluster", "pointed_dripstone", "dripstone_block",
		"frogspawn", "sniffer_egg", "turtle_egg", "goat_horn",
	)

	// Excluded-by-rule kinds still live in the registry so the catalog covers
	// them with blank entries.
	add(FamilyEquipment,
		"wooden_sword", "stone_sword", "iron_sword", "golden_sword", "diamond_sword",
		"netherite_sword", "bow", "crossbow", "trident", "shield", "mace", "elytra",
		"leather_helmet", "leather_chestplate", "leather_leggings", "leather_boots",
		"iron_helmet", "iron_chestplate", "iron_leggings", "iron_boots",
		"golden_helmet", "golden_chestplate", "golden_leggings", "golden_boots",
		"diamond_helmet", "diamond_chestplate", "diamond_leggings", "diamond_boots",
		"netherite_helmet", "netherite_chestplate", "netherite_leggings", "netherite_boots",
		"chainmail_helmet", "chainmail_chestplate", "chainmail_leggings", "chainmail_boots",
		"turtle_helmet", "iron_horse_armor", "golden_horse_armor", "diamond_horse_armor",
		"leather_horse_armor",
	)

	add(FamilyPotion, "potion", "splash_potion", "lingering_potion", "tipped_arrow", "ominous_bottle")

	add(FamilyDisc,
		"music_disc_13", "music_disc_cat", "music_disc_blocks", "music_disc_chirp",
		"music_disc_far", "music_disc_mall", "music_disc_mellohi", "music_disc_stal",
		"music_disc_strad", "music_disc_ward", "music_disc_11", "music_disc_wait",
		"music_disc_otherside", "music_disc_pigstep", "music_disc_relic",
		"music_disc_5", "music_disc_creator", "music_disc_precipice", "disc_fragment_5",
	)

	add(FamilySpawnEgg,
		"allay_spawn_egg", "axolotl_spawn_egg", "bee_spawn_egg", "blaze_spawn_egg",
		"cat_spawn_egg", "chicken_spawn_egg", "cow_spawn_egg", "creeper_spawn_egg",
		"enderman_spawn_egg", "fox_spawn_egg", "ghast_spawn_egg", "horse_spawn_egg",
		"pig_spawn_egg", "sheep_spawn_egg", "skeleton_spawn_egg", "spider_spawn_egg",
		"villager_spawn_egg", "wither_skeleton_spawn_egg", "wolf_spawn_egg",
		"zombie_spawn_egg",
	)

	add(FamilyCosmetic,
		"coast_armor_trim_smithing_template", "dune_armor_trim_smithing_template",
		"eye_armor_trim_smithing_template", "host_armor_trim_smithing_template",
		"netherite_upgrade_smithing_template", "raiser_armor_trim_smithing_template",
		"rib_armor_trim_smithing_template", "sentry_armor_trim_smithing_template",
		"shaper_armor_trim_smithing_template", "silence_armor_trim_smithing_template",
		"snout_armor_trim_smithing_template", "spire_armor_trim_smithing_template",
		"tide_armor_trim_smithing_template", "vex_armor_trim_smithing_template",
		"ward_armor_trim_smithing_template", "wayfinder_armor_trim_smithing_template",
		"wild_armor_trim_smithing_template", "flow_armor_trim_smithing_template",
		"bolt_armor_trim_smithing_template",
		"creeper_banner_pattern", "skull_banner_pattern", "flower_banner_pattern",
		"mojang_banner_pattern", "globe_banner_pattern", "piglin_banner_pattern",
		"angler_pottery_sherd", "archer_pottery_sherd", "arms_up_pottery_sherd",
		"blade_pottery_sherd", "brewer_pottery_sherd", "burn_pottery_sherd",
		"danger_pottery_sherd", "explorer_pottery_sherd", "friend_pottery_sherd",
		"heart_pottery_sherd", "heartbreak_pottery_sherd", "howl_pottery_sherd",
		"miner_pottery_sherd", "mourner_pottery_sherd", "plenty_pottery_sherd",
		"prize_pottery_sherd", "sheaf_pottery_sherd", "shelter_pottery_sherd",
		"skull_pottery_sherd", "snort_pottery_sherd",
	)

	add(FamilyBook, "enchanted_book")

	add(FamilyAdmin,
		"command_block", "chain_command_block", "repeating_command_block",
		"command_block_minecart", "structure_block", "structure_void", "jigsaw",
		"barrier", "bedrock", "spawner", "trial_spawner", "vault", "light",
		"debug_stick", "knowledge_book", "reinforced_deepslate", "end_portal_frame",
	)

	return NewRegistry(defs)
}
