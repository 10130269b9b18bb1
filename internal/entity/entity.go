package entity

// StatusKind identifies a status effect carried by an entity.
type StatusKind string

const (
	// Strength raises outgoing damage by 1 per point. Permanent for the
	// duration of a combat.
	Strength StatusKind = "strength"
	// Weak reduces outgoing damage to 75% for its remaining turns.
	Weak StatusKind = "weak"
	// Vulnerable raises incoming damage to 150% for its remaining turns.
	Vulnerable StatusKind = "vulnerable"
	// Barricade keeps block from clearing at the start of the owner's turn.
	Barricade StatusKind = "barricade"
)

// rule describes how a status kind behaves when applied and at turn start.
type rule struct {
	// Stacks: new applications add to the existing magnitude. Non-stacking
	// kinds keep the larger of the old and new magnitude.
	Stacks bool
	// Decays: magnitude counts turns and drops by 1 at the owner's turn start.
	Decays bool
	// RetainsBlock: block is not cleared while this status is present.
	RetainsBlock bool
}

var rules = map[StatusKind]rule{
	Strength:   {Stacks: true},
	Weak:       {Stacks: true, Decays: true},
	Vulnerable: {Stacks: true, Decays: true},
	Barricade:  {Stacks: false, Decays: true, RetainsBlock: true},
}

// Known reports whether kind is a status the rule table understands.
func Known(kind StatusKind) bool {
	_, ok := rules[kind]
	return ok
}

// Entity is the combat state shared by the player and every monster. There is
// no subtyping; anything player-specific (energy, piles) lives on the session.
type Entity struct {
	Name   string             `json:"name"`
	HP     int                `json:"hp"`
	MaxHP  int                `json:"max_hp"`
	Block  int                `json:"block"`
	Status map[StatusKind]int `json:"status,omitempty"`
}

func New(name string, maxHP int) *Entity {
	return &Entity{
		Name:   name,
		HP:     maxHP,
		MaxHP:  maxHP,
		Status: map[StatusKind]int{},
	}
}

// ApplyDamage deals amount to the entity. Block absorbs first, one for one;
// the excess comes off HP, which never drops below zero. Returns the block
// absorbed and the HP actually lost.
func (e *Entity) ApplyDamage(amount int) (absorbed, lost int) {
	if amount <= 0 {
		return 0, 0
	}

	absorbed = amount
	if absorbed > e.Block {
		absorbed = e.Block
	}
	e.Block -= absorbed

	lost = amount - absorbed
	if lost > e.HP {
		lost = e.HP
	}
	e.HP -= lost

	return absorbed, lost
}

// AddBlock adds amount to the entity's block. Block is uncapped.
func (e *Entity) AddBlock(amount int) {
	if amount <= 0 {
		return
	}
	e.Block += amount
}

// ApplyStatus applies magnitude points of kind, stacking or overwriting per
// the kind's rule. Zero or negative magnitudes are ignored.
func (e *Entity) ApplyStatus(kind StatusKind, magnitude int) {
	if magnitude <= 0 {
		return
	}
	if e.Status == nil {
		e.Status = map[StatusKind]int{}
	}
	if rules[kind].Stacks {
		e.Status[kind] += magnitude
		return
	}
	if magnitude > e.Status[kind] {
		e.Status[kind] = magnitude
	}
}

// StatusAmount returns the current magnitude of kind, zero if absent.
func (e *Entity) StatusAmount(kind StatusKind) int {
	return e.Status[kind]
}

// Defeated reports whether the entity's HP has reached zero.
func (e *Entity) Defeated() bool {
	return e.HP <= 0
}

// StartTurn applies turn-start upkeep: block clears unless a retaining status
// is present, and every decaying status loses one turn.
func (e *Entity) StartTurn() {
	retain := false
	for kind, magnitude := range e.Status {
		if magnitude > 0 && rules[kind].RetainsBlock {
			retain = true
			break
		}
	}
	if !retain {
		e.Block = 0
	}

	for kind, magnitude := range e.Status {
		if !rules[kind].Decays || magnitude <= 0 {
			continue
		}
		if magnitude == 1 {
			delete(e.Status, kind)
			continue
		}
		e.Status[kind] = magnitude - 1
	}
}

// Clone returns a deep copy, for read-only snapshots.
func (e *Entity) Clone() *Entity {
	out := *e
	out.Status = make(map[StatusKind]int, len(e.Status))
	for k, v := range e.Status {
		out.Status[k] = v
	}
	return &out
}

// ClearCombatState resets block and all statuses, keeping HP. Used between
// encounters when a player carries over into the next fight.
func (e *Entity) ClearCombatState() {
	e.Block = 0
	e.Status = map[StatusKind]int{}
}

// DamageDealt computes the damage attacker inflicts on target for a base
// amount. Strength adds before the multipliers; weak on the attacker and
// vulnerable on the target multiply together before truncation so the result
// is floored exactly once.
func DamageDealt(attacker, target *Entity, base int) int {
	if base <= 0 && attacker.StatusAmount(Strength) <= 0 {
		return 0
	}
	amount := float64(base + attacker.StatusAmount(Strength))
	if attacker.StatusAmount(Weak) > 0 {
		amount *= 0.75
	}
	if target.StatusAmount(Vulnerable) > 0 {
		amount *= 1.5
	}
	if amount < 0 {
		return 0
	}
	return int(amount)
}
