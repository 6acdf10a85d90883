package card

// GenericMinion has no special abilities. It is played and fights like normal.
type GenericMinion struct {
	CardName string
	Atk      int
	Hp       int
	Price    Cost
}

func (m *GenericMinion) Name() string             { return m.CardName }
func (m *GenericMinion) Description() string      { return "" }
func (m *GenericMinion) Cost() Cost               { return m.Price.Clone() }
func (m *GenericMinion) Attack() (int, bool)      { return m.Atk, true }
func (m *GenericMinion) Health() (int, bool)      { return m.Hp, true }
func (m *GenericMinion) PlayEffects() []PlayEffect { return summon }

func (m *GenericMinion) SetHealth(h int) bool {
	m.Hp = h
	return true
}

func (m *GenericMinion) Clone() Card {
	c := *m
	c.Price = m.Price.Clone()
	return &c
}

// LightElemental always has the same attack as health.
type LightElemental struct {
	Hp int
}

func (l *LightElemental) Name() string { return "Light elemental" }

func (l *LightElemental) Description() string {
	return "Will always have the same\nattack as health."
}

func (l *LightElemental) Cost() Cost               { return Cost{{White, 2}} }
func (l *LightElemental) Attack() (int, bool)      { return l.Hp, true }
func (l *LightElemental) Health() (int, bool)      { return l.Hp, true }
func (l *LightElemental) PlayEffects() []PlayEffect { return summon }

func (l *LightElemental) SetHealth(h int) bool {
	l.Hp = h
	return true
}

func (l *LightElemental) Clone() Card {
	c := *l
	return &c
}

type BuffCard struct{}

func (BuffCard) Name() string        { return "Buff card" }
func (BuffCard) Description() string { return "Gives a minion +1/+1" }
func (BuffCard) Cost() Cost          { return Cost{{White, 1}} }
func (BuffCard) Attack() (int, bool) { return 0, false }
func (BuffCard) Health() (int, bool) { return 0, false }
func (BuffCard) SetHealth(int) bool  { return false }
func (BuffCard) Clone() Card         { return BuffCard{} }

func (BuffCard) PlayEffects() []PlayEffect {
	return []PlayEffect{{Kind: Target, Target: TargetOwnMinion | TargetOpponentMinion}}
}

type DamageSpell struct{}

func (DamageSpell) Name() string        { return "Damage spell card" }
func (DamageSpell) Description() string { return "Deal 3 damage to a target" }
func (DamageSpell) Cost() Cost          { return Cost{{Red, 2}} }
func (DamageSpell) Attack() (int, bool) { return 0, false }
func (DamageSpell) Health() (int, bool) { return 0, false }
func (DamageSpell) SetHealth(int) bool  { return false }
func (DamageSpell) Clone() Card         { return DamageSpell{} }

func (DamageSpell) PlayEffects() []PlayEffect {
	return []PlayEffect{{Kind: Target, Target: TargetEverything}}
}
