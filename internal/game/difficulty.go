package game

import "time"

// spawnTier is one step of the difficulty curve: from the given number of
// destroyed asteroids on, a new asteroid spawns every interval.
type spawnTier struct {
	from     int
	interval time.Duration
}

// spawnTiers is ordered by from, descending.
var spawnTiers = []spawnTier{
	{150, 400 * time.Millisecond},
	{120, 600 * time.Millisecond},
	{100, 800 * time.Millisecond},
	{80, 1000 * time.Millisecond},
	{60, 1200 * time.Millisecond},
	{30, 1500 * time.Millisecond},
	{0, 2000 * time.Millisecond},
}

// SpawnInterval returns the time between asteroid spawns for a player who
// has destroyed the given number of asteroids. It never increases as
// destroyed grows.
func SpawnInterval(destroyed int) time.Duration {
	for _, tier := range spawnTiers {
		if destroyed >= tier.from {
			return tier.interval
		}
	}
	return spawnTiers[len(spawnTiers)-1].interval
}
