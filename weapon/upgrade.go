package weapon

// UpgradeID identifies an upgrade in the pool
type UpgradeID uint8

const (
	UpgradeNone UpgradeID = iota
	UpgradeExtraBounce
	UpgradeShrapnel
	UpgradeSpeedBoost
	UpgradeBlackHole
	UpgradeHoming
	UpgradeShield
	UpgradeExplosiveShrapnel
	UpgradeChainLightning
)

// Def describes one upgrade: its display name, stacking rules,
// prerequisites, and the stat delta it applies
type Def struct {
	ID       UpgradeID
	Name     string
	OneTime  bool        // at most one copy has effect
	Requires []UpgradeID // all must be owned for the upgrade to apply or be offered
	Apply    func(*Stats)
}

// Pool is the upgrade registry in fixed application order.
// Compute folds upgrades in this order, which makes the result
// independent of the order copies were acquired in
var Pool = []Def{
	{
		ID:   UpgradeExtraBounce,
		Name: "Ricochet",
		Apply: func(s *Stats) {
			s.Bounces++
		},
	},
	{
		ID:   UpgradeShrapnel,
		Name: "Shrapnel",
		Apply: func(s *Stats) {
			s.ShrapnelLevel++
		},
	},
	{
		ID:   UpgradeSpeedBoost,
		Name: "Speed Boost",
		Apply: func(s *Stats) {
			s.ProjectileSpeed += 3
		},
	},
	{
		ID:   UpgradeBlackHole,
		Name: "Black Hole",
		Apply: func(s *Stats) {
			s.BlackHoleLevel++
		},
	},
	{
		ID:      UpgradeHoming,
		Name:    "Homing",
		OneTime: true,
		Apply: func(s *Stats) {
			s.Homing = 0.35
		},
	},
	{
		ID:   UpgradeShield,
		Name: "Shield",
		Apply: func(s *Stats) {
			if s.ShieldLevel < ShieldLevelCap {
				s.ShieldLevel++
			}
		},
	},
	{
		ID:       UpgradeExplosiveShrapnel,
		Name:     "Explosive Shrapnel",
		Requires: []UpgradeID{UpgradeShrapnel},
		Apply: func(s *Stats) {
			s.ExplosiveLevel++
		},
	},
	{
		ID:       UpgradeChainLightning,
		Name:     "Chain Lightning",
		Requires: []UpgradeID{UpgradeSpeedBoost, UpgradeExtraBounce},
		Apply: func(s *Stats) {
			s.ChainLevel++
		},
	},
}

// lookup returns the pool entry for an id, or nil
func lookup(id UpgradeID) *Def {
	for i := range Pool {
		if Pool[i].ID == id {
			return &Pool[i]
		}
	}
	return nil
}

// Name returns the display name for an upgrade id
func Name(id UpgradeID) string {
	if d := lookup(id); d != nil {
		return d.Name
	}
	return "Unknown"
}
