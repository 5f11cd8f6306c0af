package ninja

// Combat is the health and invulnerability state shared by the player and
// enemies.
type Combat struct {
	Health    int
	MaxHealth int
	Damage    int // Dealt to whatever this entity hits
	IWindow   int // Invulnerable ticks granted after surviving a hit
	IFrames   int // Remaining invulnerable ticks
}

// NewCombat creates full-health combat stats.
func NewCombat(health, damage, iwindow int) Combat {
	return Combat{
		Health:    health,
		MaxHealth: health,
		Damage:    damage,
		IWindow:   iwindow,
	}
}

// TakeDamage subtracts n from health and reports whether the entity is still
// alive.
func (c *Combat) TakeDamage(n int) bool {
	c.Health -= n
	return c.Health > 0
}

// Vulnerable reports whether a hit would land.
func (c *Combat) Vulnerable() bool {
	return c.IFrames == 0
}

// Stagger starts the invulnerability window after a survived hit.
func (c *Combat) Stagger() {
	c.IFrames += c.IWindow
}

// Tick counts invulnerability down by one.
func (c *Combat) Tick() {
	if c.IFrames > 0 {
		c.IFrames--
	}
}

// Heal restores full health and clears invulnerability.
func (c *Combat) Heal() {
	c.Health = c.MaxHealth
	c.IFrames = 0
}
