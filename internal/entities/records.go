package entities

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var infusionTypeWords = regexp.MustCompile(`, | or `)

// Record is implemented by every catalog entry so the catalog can index
// entries by name and by SRD index.
type Record interface {
	RecordName() string
	RecordIndex() string
}

// Text is a description that may be written as a string or a list of
// paragraphs; lists are joined with newlines.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*t = Text(textOf(v))
	return nil
}

func (t Text) String() string { return string(t) }

func textOf(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []any:
		parts := make([]string, 0, len(x))
		for _, p := range x {
			parts = append(parts, textOf(p))
		}
		return strings.Join(parts, "\n")
	case nil:
		return ""
	}
	return asString(v)
}

// NamedText is a named entry written either as a bare name or as an
// object with a name (or index) and a description.
type NamedText struct {
	Name  string `json:"name"`
	Desc  Text   `json:"desc,omitempty"`
	Level int    `json:"level,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NamedText) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = namedTextOf(v)
	return nil
}

func namedTextOf(v any) NamedText {
	m := asMap(v)
	if m == nil {
		return NamedText{Name: asString(v)}
	}
	return NamedText{
		Name:  asString(lookup(m, "name", "index")),
		Desc:  Text(textOf(lookup(m, "desc", "description"))),
		Level: intOr(m["level"], 0),
	}
}

// NameList is a list of names written as strings or {name|index} objects.
type NameList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *NameList) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*l = nameList(v)
	return nil
}

// Contains reports whether the list holds name, ignoring case.
func (l NameList) Contains(name string) bool {
	return containsFold(l, name)
}

// LeveledFeature is one feature from a class or subclass progression.
// Unleveled is set for entries read from a flat feature list, which
// carry an optional level gate but no progression row.
type LeveledFeature struct {
	Level     int
	Name      string
	Desc      string
	Unleveled bool
}

// LeveledFeatures accepts the progression shapes found in class files:
// `[{level, features: [...]}]`, `{"1": [...], "3": [...]}` and a flat
// `[{name, desc, level?}]` list.
type LeveledFeatures []LeveledFeature

// UnmarshalJSON implements json.Unmarshaler.
func (l *LeveledFeatures) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*l = leveledFeaturesOf(v)
	return nil
}

func leveledFeaturesOf(v any) LeveledFeatures {
	var out LeveledFeatures
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return levelKey(keys[i]) < levelKey(keys[j]) })
		for _, k := range keys {
			out = append(out, rowFeatures(levelKey(k), t[k])...)
		}
	case []any:
		for _, item := range t {
			m := asMap(item)
			if m != nil && m["features"] != nil {
				out = append(out, rowFeatures(intOr(m["level"], 0), m["features"])...)
				continue
			}
			nt := namedTextOf(item)
			out = append(out, LeveledFeature{Level: nt.Level, Name: nt.Name, Desc: string(nt.Desc), Unleveled: true})
		}
	}
	return out
}

func rowFeatures(level int, v any) []LeveledFeature {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]LeveledFeature, 0, len(list))
	for _, item := range list {
		nt := namedTextOf(item)
		out = append(out, LeveledFeature{Level: level, Name: nt.Name, Desc: string(nt.Desc)})
	}
	return out
}

func levelKey(k string) int {
	n, err := strconv.Atoi(strings.TrimSpace(k))
	if err != nil {
		return 0
	}
	return n
}

// SpellsByLevel maps a character level key ("3") to spell names.
type SpellsByLevel map[string][]string

// UpTo returns the names whose level key is at most level, in key order.
func (s SpellsByLevel) UpTo(level int) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return levelKey(keys[i]) < levelKey(keys[j]) })
	var out []string
	for _, k := range keys {
		if levelKey(k) <= level {
			out = append(out, s[k]...)
		}
	}
	return out
}

// ActionRecord is a data-driven action attached to a class, subclass or
// race record.
type ActionRecord struct {
	Name      string `json:"name"`
	Desc      Text   `json:"desc,omitempty"`
	Type      string `json:"type,omitempty"`
	Level     int    `json:"level,omitempty"`
	Condition string `json:"condition,omitempty"`
	Badge     string `json:"badge,omitempty"`
}

// ClassRecord is a class entry from the rules catalog.
type ClassRecord struct {
	Index         string          `json:"index"`
	Name          string          `json:"name"`
	Levels        LeveledFeatures `json:"levels,omitempty"`
	Features      LeveledFeatures `json:"features,omitempty"`
	BonusCantrips SpellsByLevel   `json:"bonusCantrips,omitempty"`
	Actions       []ActionRecord  `json:"actions,omitempty"`
	// Remote is set when the record came from the SRD API.
	Remote bool `json:"-"`
}

func (r *ClassRecord) RecordName() string  { return r.Name }
func (r *ClassRecord) RecordIndex() string { return r.Index }

// Progression returns the class features in either file shape.
func (r *ClassRecord) Progression() LeveledFeatures {
	if len(r.Levels) > 0 {
		return r.Levels
	}
	return r.Features
}

// SubclassRecord is a subclass entry from the rules catalog.
type SubclassRecord struct {
	Index                string          `json:"index"`
	Name                 string          `json:"name"`
	Class                string          `json:"class"`
	Levels               LeveledFeatures `json:"levels,omitempty"`
	Features             LeveledFeatures `json:"features,omitempty"`
	BonusCantrips        SpellsByLevel   `json:"bonusCantrips,omitempty"`
	AlwaysPreparedSpells SpellsByLevel   `json:"alwaysPreparedSpells,omitempty"`
	Actions              []ActionRecord  `json:"actions,omitempty"`
}

func (r *SubclassRecord) RecordName() string  { return r.Name }
func (r *SubclassRecord) RecordIndex() string { return r.Index }

// Progression returns the subclass features in any file shape.
func (r *SubclassRecord) Progression() LeveledFeatures {
	if len(r.Levels) > 0 {
		return r.Levels
	}
	return r.Features
}

// Badge is the label shown on the subclass's always-prepared spells, the
// last word of its name ("Oath of Devotion" -> "Devotion").
func (r *SubclassRecord) Badge() string {
	fields := strings.Fields(r.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// RaceRecord is a race entry from the rules catalog.
type RaceRecord struct {
	Index             string          `json:"index"`
	Name              string          `json:"name"`
	Speed             int             `json:"speed,omitempty"`
	Traits            []NamedText     `json:"traits,omitempty"`
	TraitDescriptions map[string]Text `json:"trait_descriptions,omitempty"`
	Actions           []ActionRecord  `json:"actions,omitempty"`
	// Subraces lists the subraces a remote race offers.
	Subraces []Reference `json:"-"`
	Remote   bool        `json:"-"`
}

func (r *RaceRecord) RecordName() string  { return r.Name }
func (r *RaceRecord) RecordIndex() string { return r.Index }

// TraitDesc returns the description of a trait, falling back to the
// trait_descriptions table.
func (r *RaceRecord) TraitDesc(t NamedText) string {
	if t.Desc != "" {
		return string(t.Desc)
	}
	if d, ok := r.TraitDescriptions[t.Name]; ok {
		return string(d)
	}
	for k, d := range r.TraitDescriptions {
		if strings.EqualFold(k, t.Name) {
			return string(d)
		}
	}
	return ""
}

// HasTraitDescriptions reports whether any trait carries a description.
func (r *RaceRecord) HasTraitDescriptions() bool {
	for _, t := range r.Traits {
		if r.TraitDesc(t) != "" {
			return true
		}
	}
	return false
}

// BackgroundRecord is a background entry from the rules catalog.
type BackgroundRecord struct {
	Index    string      `json:"index"`
	Name     string      `json:"name"`
	Source   string      `json:"source,omitempty"`
	Features []NamedText `json:"features,omitempty"`
}

func (r *BackgroundRecord) RecordName() string  { return r.Name }
func (r *BackgroundRecord) RecordIndex() string { return r.Index }

// SpellRecord is a spell entry from the rules catalog.
type SpellRecord struct {
	Index         string   `json:"index"`
	Name          string   `json:"name"`
	Level         int      `json:"level"`
	School        string   `json:"school,omitempty"`
	CastingTime   string   `json:"casting_time,omitempty"`
	Range         string   `json:"range,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	Ritual        bool     `json:"ritual,omitempty"`
	Concentration bool     `json:"concentration,omitempty"`
	Desc          Text     `json:"desc,omitempty"`
	Classes       NameList `json:"classes,omitempty"`
}

func (r *SpellRecord) RecordName() string  { return r.Name }
func (r *SpellRecord) RecordIndex() string { return r.Index }

// IsBonusAction reports whether the spell is cast as a bonus action.
func (r *SpellRecord) IsBonusAction() bool {
	return strings.EqualFold(strings.TrimSpace(r.CastingTime), "1 bonus action")
}

// Reference is an SRD cross reference.
type Reference struct {
	Index string `json:"index,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Damage describes a weapon's damage roll.
type Damage struct {
	DamageDice string    `json:"damage_dice,omitempty"`
	DamageType Reference `json:"damage_type"`
}

// ArmorClass describes the AC an armor grants.
type ArmorClass struct {
	Base     int  `json:"base"`
	DexBonus bool `json:"dex_bonus"`
	// MaxBonus caps the DEX contribution; nil means uncapped.
	MaxBonus *int `json:"max_bonus,omitempty"`
}

// EquipmentRecord is a weapon, armor or gear entry from the rules catalog.
type EquipmentRecord struct {
	Index               string      `json:"index"`
	Name                string      `json:"name"`
	EquipmentCategory   Reference   `json:"equipment_category"`
	WeaponCategory      string      `json:"weapon_category,omitempty"`
	WeaponRange         string      `json:"weapon_range,omitempty"`
	Damage              *Damage     `json:"damage,omitempty"`
	Properties          []Reference `json:"properties,omitempty"`
	ArmorCategory       string      `json:"armor_category,omitempty"`
	ArmorClass          *ArmorClass `json:"armor_class,omitempty"`
	StrMinimum          int         `json:"str_minimum,omitempty"`
	StealthDisadvantage bool        `json:"stealth_disadvantage,omitempty"`
	AttackBonus         *int        `json:"attack_bonus,omitempty"`
	MagicBonus          *int        `json:"magic_bonus,omitempty"`
	DamageBonus         *int        `json:"damage_bonus,omitempty"`
	Desc                Text        `json:"desc,omitempty"`
}

func (r *EquipmentRecord) RecordName() string  { return r.Name }
func (r *EquipmentRecord) RecordIndex() string { return r.Index }

// HasProperty reports whether the item carries a property by index or name.
func (r *EquipmentRecord) HasProperty(prop string) bool {
	for _, p := range r.Properties {
		if strings.EqualFold(p.Index, prop) || strings.EqualFold(p.Name, prop) {
			return true
		}
	}
	return false
}

// IsShield reports whether the item is a shield.
func (r *EquipmentRecord) IsShield() bool {
	return strings.EqualFold(r.ArmorCategory, "shield") ||
		strings.EqualFold(r.EquipmentCategory.Index, "shield") ||
		strings.EqualFold(r.Index, "shield")
}

// IsRanged reports whether the weapon is a ranged weapon.
func (r *EquipmentRecord) IsRanged() bool {
	return strings.EqualFold(r.WeaponRange, "ranged")
}

// MagicAttack returns the magic to-hit bonus (attack_bonus, else magic_bonus).
func (r *EquipmentRecord) MagicAttack() int {
	if r.AttackBonus != nil {
		return *r.AttackBonus
	}
	if r.MagicBonus != nil {
		return *r.MagicBonus
	}
	return 0
}

// MagicDamage returns the magic damage bonus (damage_bonus, else magic_bonus).
func (r *EquipmentRecord) MagicDamage() int {
	if r.DamageBonus != nil {
		return *r.DamageBonus
	}
	if r.MagicBonus != nil {
		return *r.MagicBonus
	}
	return 0
}

// ConditionRecord is a condition entry from the rules catalog.
type ConditionRecord struct {
	Index string `json:"index"`
	Name  string `json:"name"`
	Desc  Text   `json:"desc,omitempty"`
}

func (r *ConditionRecord) RecordName() string  { return r.Name }
func (r *ConditionRecord) RecordIndex() string { return r.Index }

// InfusionRecord is an artificer infusion from the rules catalog.
type InfusionRecord struct {
	Index    string `json:"index"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	ItemType string `json:"item_type,omitempty"`
	Desc     Text   `json:"desc,omitempty"`
}

func (r *InfusionRecord) RecordName() string  { return r.Name }
func (r *InfusionRecord) RecordIndex() string { return r.Index }

// Matches reports whether an item satisfies the infusion's item type.
func (r *InfusionRecord) Matches(item *EquipmentRecord) bool {
	if item == nil || r.ItemType == "" {
		return false
	}
	kind := strings.ToLower(r.ItemType)
	category := strings.ToLower(item.EquipmentCategory.Index)

	if strings.Contains(kind, "simple or martial weapon") {
		if category != "weapon" {
			return false
		}
		wc := strings.ToLower(item.WeaponCategory)
		if wc != "simple" && wc != "martial" {
			return false
		}
		if strings.Contains(kind, "ammunition property") && !item.HasProperty("ammunition") {
			return false
		}
		if strings.Contains(kind, "thrown property") && !item.HasProperty("thrown") {
			return false
		}
		return true
	}
	if strings.Contains(kind, "armor or a shield") {
		return category == "armor" || category == "shield"
	}

	name := strings.ToLower(item.Name)
	for _, word := range infusionTypeWords.Split(kind, -1) {
		word = strings.TrimPrefix(strings.TrimSpace(word), "or ")
		if word != "" && strings.Contains(name, word) {
			return true
		}
	}
	return false
}

// FeatRecord is a feat entry from the rules catalog.
type FeatRecord struct {
	Index string `json:"index"`
	Name  string `json:"name"`
	Desc  Text   `json:"desc,omitempty"`
}

func (r *FeatRecord) RecordName() string  { return r.Name }
func (r *FeatRecord) RecordIndex() string { return r.Index }
