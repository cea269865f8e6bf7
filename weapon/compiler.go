package weapon

import "github.com/seltf/shape-game/vmath"

// Compute folds the owned upgrade multiset onto base stats.
// Entries with unmet prerequisites are ignored. One-time upgrades
// apply at most once. The fold walks the pool in registry order,
// so the result depends only on the multiset
func Compute(owned []UpgradeID) Stats {
	counts := make(map[UpgradeID]int, len(owned))
	for _, id := range owned {
		counts[id]++
	}

	stats := BaseStats()
	for i := range Pool {
		def := &Pool[i]
		n := counts[def.ID]
		if n == 0 {
			continue
		}
		if !prereqsMet(def, counts) {
			continue
		}
		if def.OneTime && n > 1 {
			n = 1
		}
		for j := 0; j < n; j++ {
			def.Apply(&stats)
		}
	}
	return stats
}

func prereqsMet(def *Def, counts map[UpgradeID]int) bool {
	for _, req := range def.Requires {
		if counts[req] == 0 {
			return false
		}
	}
	return true
}

// Eligible returns the upgrades that may be offered to a player
// owning the given multiset: prerequisites met, one-time upgrades
// not already owned, and shield not past its cap
func Eligible(owned []UpgradeID) []UpgradeID {
	counts := make(map[UpgradeID]int, len(owned))
	for _, id := range owned {
		counts[id]++
	}

	var out []UpgradeID
	for i := range Pool {
		def := &Pool[i]
		if def.OneTime && counts[def.ID] > 0 {
			continue
		}
		if def.ID == UpgradeShield && counts[UpgradeShield] >= ShieldLevelCap {
			continue
		}
		if !prereqsMet(def, counts) {
			continue
		}
		out = append(out, def.ID)
	}
	return out
}

// Offer samples up to n distinct eligible upgrades
func Offer(owned []UpgradeID, rng *vmath.FastRand, n int) []UpgradeID {
	pool := Eligible(owned)
	// Fisher-Yates prefix shuffle
	for i := 0; i < len(pool)-1; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}
