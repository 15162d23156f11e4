package config

import (
	"fmt"
	"strings"
)

// SpawnReason is the host's reason for a creature spawn.
type SpawnReason string

const (
	SpawnNatural            SpawnReason = "NATURAL"
	SpawnJockey             SpawnReason = "JOCKEY"
	SpawnChunkGen           SpawnReason = "CHUNK_GEN"
	SpawnSpawner            SpawnReason = "SPAWNER"
	SpawnEgg                SpawnReason = "EGG"
	SpawnSpawnerEgg         SpawnReason = "SPAWNER_EGG"
	SpawnLightning          SpawnReason = "LIGHTNING"
	SpawnBuildSnowman       SpawnReason = "BUILD_SNOWMAN"
	SpawnBuildIronGolem     SpawnReason = "BUILD_IRONGOLEM"
	SpawnBuildWither        SpawnReason = "BUILD_WITHER"
	SpawnVillageDefense     SpawnReason = "VILLAGE_DEFENSE"
	SpawnVillageInvasion    SpawnReason = "VILLAGE_INVASION"
	SpawnBreeding           SpawnReason = "BREEDING"
	SpawnSlimeSplit         SpawnReason = "SLIME_SPLIT"
	SpawnReinforcements     SpawnReason = "REINFORCEMENTS"
	SpawnNetherPortal       SpawnReason = "NETHER_PORTAL"
	SpawnDispenseEgg        SpawnReason = "DISPENSE_EGG"
	SpawnInfection          SpawnReason = "INFECTION"
	SpawnCured              SpawnReason = "CURED"
	SpawnOcelotBaby         SpawnReason = "OCELOT_BABY"
	SpawnSilverfishBlock    SpawnReason = "SILVERFISH_BLOCK"
	SpawnMount              SpawnReason = "MOUNT"
	SpawnTrap               SpawnReason = "TRAP"
	SpawnEnderPearl         SpawnReason = "ENDER_PEARL"
	SpawnShoulderEntity     SpawnReason = "SHOULDER_ENTITY"
	SpawnDrowned            SpawnReason = "DROWNED"
	SpawnSheared            SpawnReason = "SHEARED"
	SpawnExplosion          SpawnReason = "EXPLOSION"
	SpawnRaid               SpawnReason = "RAID"
	SpawnPatrol             SpawnReason = "PATROL"
	SpawnBeehive            SpawnReason = "BEEHIVE"
	SpawnPiglinZombified    SpawnReason = "PIGLIN_ZOMBIFIED"
	SpawnSpell              SpawnReason = "SPELL"
	SpawnFrozen             SpawnReason = "FROZEN"
	SpawnMetamorphosis      SpawnReason = "METAMORPHOSIS"
	SpawnDuplication        SpawnReason = "DUPLICATION"
	SpawnCommand            SpawnReason = "COMMAND"
	SpawnEnchantment        SpawnReason = "ENCHANTMENT"
	SpawnOminousItemSpawner SpawnReason = "OMINOUS_ITEM_SPAWNER"
	SpawnBucket             SpawnReason = "BUCKET"
	SpawnPotionEffect       SpawnReason = "POTION_EFFECT"
	SpawnRehydration        SpawnReason = "REHYDRATION"
	SpawnTrialSpawner       SpawnReason = "TRIAL_SPAWNER"
	SpawnCustom             SpawnReason = "CUSTOM"
	SpawnDefault            SpawnReason = "DEFAULT"
)

var knownSpawnReasons = map[SpawnReason]struct{}{}

func init() {
	for _, r := range []SpawnReason{
		SpawnNatural, SpawnJockey, SpawnChunkGen, SpawnSpawner, SpawnEgg,
		SpawnSpawnerEgg, SpawnLightning, SpawnBuildSnowman, SpawnBuildIronGolem,
		SpawnBuildWither, SpawnVillageDefense, SpawnVillageInvasion, SpawnBreeding,
		SpawnSlimeSplit, SpawnReinforcements, SpawnNetherPortal, SpawnDispenseEgg,
		SpawnInfection, SpawnCured, SpawnOcelotBaby, SpawnSilverfishBlock,
		SpawnMount, SpawnTrap, SpawnEnderPearl, SpawnShoulderEntity, SpawnDrowned,
		SpawnSheared, SpawnExplosion, SpawnRaid, SpawnPatrol, SpawnBeehive,
		SpawnPiglinZombified, SpawnSpell, SpawnFrozen, SpawnMetamorphosis,
		SpawnDuplication, SpawnCommand, SpawnEnchantment, SpawnOminousItemSpawner,
		SpawnBucket, SpawnPotionEffect, SpawnRehydration, SpawnTrialSpawner,
		SpawnCustom, SpawnDefault,
	} {
		knownSpawnReasons[r] = struct{}{}
	}
}

// ParseSpawnReason converts a configuration token into a SpawnReason.
// Matching ignores case and surrounding whitespace; unknown names are an error.
func ParseSpawnReason(s string) (SpawnReason, error) {
	r := SpawnReason(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := knownSpawnReasons[r]; !ok {
		return "", fmt.Errorf("unknown spawn reason %q", s)
	}
	return r, nil
}
