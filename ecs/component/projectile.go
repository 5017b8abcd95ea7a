package component

// Projectile flies along (DirX, DirY) and damages bodies of TargetFaction.
// Its time to live is tracked by a TTL component.
type Projectile struct {
	Speed         float64
	Damage        float64
	TargetFaction Faction
	DirX          float64
	DirY          float64
	// Owner is the raw handle of the firing entity, kept for logging.
	Owner uint64
	// Spent is set on the first qualifying impact; the entity is destroyed
	// at the end of the damage pass.
	Spent bool
}

var ProjectileComponent = NewComponent[Projectile]()
