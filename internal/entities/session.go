package entities

import (
	"slices"
	"strings"
	"time"
)

// ActionState holds per-rest action resource usage.
type ActionState struct {
	IsRaging            bool `json:"isRaging"`
	RageUsed            int  `json:"rageUsed"`
	ZealousPresenceUsed int  `json:"zealousPresenceUsed"`
	EldritchCannonUsed  int  `json:"eldritchCannonUsed"`
	RabbitHopUsed       int  `json:"rabbitHopUsed"`
}

// SpellState holds prepared spells and per-rest spell resources.
type SpellState struct {
	PreparedByLevel     map[int][]string `json:"preparedByLevel,omitempty"`
	SlotsSpent          map[int]int      `json:"slotsSpent,omitempty"`
	KiSpent             int              `json:"kiSpent"`
	ChannelDivinityUsed int              `json:"channelDivinityUsed"`
	WildShapeUsed       int              `json:"wildShapeUsed"`
	SymbioticActive     bool             `json:"symbioticActive"`
	// KnownInfusions is nil until the player picks infusions; the
	// character's own list applies until then.
	KnownInfusions []string `json:"knownInfusions,omitempty"`
}

// IsPrepared reports whether name is prepared at level.
func (s *SpellState) IsPrepared(level int, name string) bool {
	return slices.ContainsFunc(s.PreparedByLevel[level], func(n string) bool {
		return strings.EqualFold(n, name)
	})
}

// PreparedCount counts prepared spells across all levels above cantrips.
func (s *SpellState) PreparedCount() int {
	n := 0
	for level, names := range s.PreparedByLevel {
		if level > 0 {
			n += len(names)
		}
	}
	return n
}

// Vitals overlays the character's hit points once the sheet is in play.
type Vitals struct {
	CurrentHP  int        `json:"currentHP"`
	TempHP     int        `json:"tempHP"`
	DeathSaves DeathSaves `json:"deathSaves"`
}

// SessionState is the mutable per-character sheet state.
type SessionState struct {
	CharacterID string          `json:"characterId"`
	Actions     ActionState     `json:"actionState"`
	Spells      SpellState      `json:"spellState"`
	Conditions  []ConditionKind `json:"conditions,omitempty"`
	Vitals      *Vitals         `json:"vitals,omitempty"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewSessionState returns an empty state for a character.
func NewSessionState(characterID string) *SessionState {
	return &SessionState{CharacterID: characterID}
}

// HasCondition reports whether the condition is active.
func (s *SessionState) HasCondition(c ConditionKind) bool {
	return slices.Contains(s.Conditions, c)
}

// Clone returns a deep copy so mutators never touch their input.
func (s *SessionState) Clone() *SessionState {
	if s == nil {
		return nil
	}
	out := *s
	if s.Spells.PreparedByLevel != nil {
		out.Spells.PreparedByLevel = make(map[int][]string, len(s.Spells.PreparedByLevel))
		for k, v := range s.Spells.PreparedByLevel {
			out.Spells.PreparedByLevel[k] = slices.Clone(v)
		}
	}
	if s.Spells.SlotsSpent != nil {
		out.Spells.SlotsSpent = make(map[int]int, len(s.Spells.SlotsSpent))
		for k, v := range s.Spells.SlotsSpent {
			out.Spells.SlotsSpent[k] = v
		}
	}
	out.Spells.KnownInfusions = slices.Clone(s.Spells.KnownInfusions)
	out.Conditions = slices.Clone(s.Conditions)
	if s.Vitals != nil {
		v := *s.Vitals
		out.Vitals = &v
	}
	return &out
}

// SeedVitals fills Vitals from the character record the first time the
// sheet needs them. Current HP defaults to max.
func (s *SessionState) SeedVitals(c *Character) *Vitals {
	if s.Vitals != nil {
		return s.Vitals
	}
	s.Vitals = &Vitals{
		CurrentHP:  c.StartingHP(),
		TempHP:     c.TempHP,
		DeathSaves: c.DeathSaves,
	}
	return s.Vitals
}

// ActiveInfusion is an artificer infusion currently applied to an item.
// Active infusions are shared across characters: the owner need not be
// the artificer.
type ActiveInfusion struct {
	Name  string `json:"name"`
	Item  string `json:"item"`
	Owner string `json:"owner"`
	Bonus int    `json:"bonus"`
}

// AppliesTo reports whether the infusion sits on item owned by owner.
func (a ActiveInfusion) AppliesTo(item, owner string) bool {
	return a.Item == item && a.Owner == owner
}

// KnownInfusions is the state's pick when the player has made one, else
// the character's own list.
func (s *SessionState) KnownInfusions(c *Character) []string {
	if s != nil && s.Spells.KnownInfusions != nil {
		return s.Spells.KnownInfusions
	}
	if c == nil {
		return nil
	}
	return c.Infusions.Known
}
