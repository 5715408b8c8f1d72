package entities

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

var coinGear = regexp.MustCompile(`(?i)^(\d+)\s*(pp|gp|sp|cp)\b`)

// NormalizeCharacter converts a decoded character document into the
// canonical Character. It accepts the key spellings seen across hand-written
// sheets (abilities in any case, build as a string or object, weapons at the
// top level or under equipment, HP as flat fields or an hp object).
func NormalizeCharacter(raw map[string]any) (*Character, error) {
	if raw == nil {
		return nil, errors.InvalidArgument("character document is empty")
	}
	raw = asMap(raw)

	c := &Character{
		Name:       asString(raw["name"]),
		Class:      asString(raw["class"]),
		Build:      normalizeBuild(raw["build"]),
		Race:       asString(raw["race"]),
		Background: asString(raw["background"]),
		Level:      rulesLevel(intOr(raw["level"], 1)),
		Abilities:  normalizeAbilities(asMap(raw["abilities"])),
		Spells:     nameList(raw["spells"]),
		Feats:      nameList(raw["feats"]),
		Traits:     nameList(raw["traits"]),
		Features:   nameList(raw["features"]),
		Armor:      nameList(raw["armor"]),
		Languages:  nameList(raw["languages"]),
		HitDie:     asString(lookup(raw, "hit_die", "hitDie")),

		AddChaToInitiative:     asBool(raw["add_cha_to_initiative"]),
		BonusPassivePerception: intOr(lookup(raw, "bonusPassivePerception", "bonus_passive_perception"), 0),
		SpellAttackBonusMod:    intOr(lookup(raw, "spellAttackBonusMod", "spell_attack_bonus_mod"), 0),
		SpellSaveDCMod:         intOr(lookup(raw, "spellSaveDCMod", "spell_save_dc_mod"), 0),

		PlayerName: asString(raw["player_name"]),
		Alignment:  asString(raw["alignment"]),
		Gender:     asString(raw["gender"]),
		EyesHair:   asString(raw["eyes_hair"]),
	}

	if detail := asMap(raw["race_detail"]); detail != nil {
		c.RaceAncestry = asString(detail["ancestry"])
	}
	if a := asString(raw["draconic_ancestry"]); a != "" {
		c.RaceAncestry = a
	}

	equipment := asMap(raw["equipment"])
	c.Weapons = nameList(raw["weapons"])
	if len(c.Weapons) == 0 && equipment != nil {
		c.Weapons = nameList(equipment["weapons"])
	}

	c.Coins = normalizeCoins(asMap(raw["coins"]))
	gearRaw := raw["gear"]
	if equipment != nil && equipment["gear"] != nil {
		gearRaw = equipment["gear"]
	}
	c.Gear = normalizeGear(gearRaw, &c.Coins)

	c.Proficiencies = normalizeProficiencies(asMap(raw["proficiencies"]))
	skillProfs := asMap(raw["skill_proficiencies"])
	if skillProfs != nil {
		c.Proficiencies.Skills = appendUnique(c.Proficiencies.Skills, nameList(skillProfs["skills"])...)
	}
	var saves any = raw["saving_throw_proficiencies"]
	if skillProfs != nil && skillProfs["saving throws"] != nil {
		saves = skillProfs["saving throws"]
	}
	c.SavingThrows = normalizeSaves(nameList(saves))
	c.SkillLevels = normalizeSkillLevels(asMap(raw["skills"]))

	hp := asMap(raw["hp"])
	c.MaxHP = intOr(lookup(raw, "maxHP", "max_hp", "hit_points"), 0)
	if hp != nil && c.MaxHP == 0 {
		c.MaxHP = intOr(hp["max"], 0)
	}
	if v := lookup(raw, "currentHP", "current_hp"); v != nil {
		if n, ok := asInt(v); ok {
			c.CurrentHP = &n
		}
	} else if hp != nil {
		if n, ok := asInt(hp["current"]); ok {
			c.CurrentHP = &n
		}
	}
	c.TempHP = max(0, intOr(lookup(raw, "tempHP", "temp_hp"), 0))
	if hp != nil && c.TempHP == 0 {
		c.TempHP = max(0, intOr(hp["temp"], 0))
	}
	if ds := asMap(lookup(raw, "deathSaves", "death_saves")); ds != nil {
		c.DeathSaves = DeathSaves{
			Successes: rules.Clamp(intOr(ds["successes"], 0), 0, 3),
			Failures:  rules.Clamp(intOr(ds["failures"], 0), 0, 3),
		}
	}

	if n, ok := raw["initiative_bonus"].(float64); ok {
		v := int(n)
		c.InitiativeBonus = &v
	} else if n, ok := raw["initiative_bonus"].(int); ok {
		c.InitiativeBonus = &n
	}

	if inf := asMap(raw["infusions"]); inf != nil {
		c.Infusions = InfusionSettings{
			Known:       nameList(inf["known"]),
			KnownLimit:  intOr(inf["known_limit"], 0),
			ActiveLimit: intOr(inf["active_limit"], 0),
		}
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid character")
	}
	return c, nil
}

func rulesLevel(level int) int {
	return rules.Clamp(level, 1, 20)
}

func normalizeBuild(v any) string {
	if m := asMap(v); m != nil {
		return asString(lookup(m, "subclass", "name"))
	}
	return asString(v)
}

func normalizeAbilities(m map[string]any) AbilityScores {
	out := make(AbilityScores, len(rules.Abilities))
	for k, v := range m {
		ab, ok := rules.ParseAbility(k)
		if !ok {
			continue
		}
		n, ok := asInt(v)
		if !ok {
			slog.Warn("Ignoring non-numeric ability score", "ability", k, "value", v)
			continue
		}
		out[ab] = n
	}
	return out
}

func normalizeCoins(m map[string]any) Coins {
	var c Coins
	for k, v := range m {
		c.Add(k, intOr(v, 0))
	}
	return c
}

func normalizeGear(v any, coins *Coins) []GearItem {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]GearItem, 0, len(list))
	for _, raw := range list {
		item := GearItem{Qty: 1}
		if m := asMap(raw); m != nil {
			item.Name = asString(m["name"])
			if q := intOr(m["qty"], 1); q > 0 {
				item.Qty = q
			}
			item.Ref = strings.ToLower(asString(m["ref"]))
			if d, ok := m["desc"].(string); ok {
				item.Desc = d
			}
		} else {
			item.Name = asString(raw)
		}
		if item.Name == "" {
			continue
		}
		if match := coinGear.FindStringSubmatch(item.Name); match != nil {
			coins.Add(match[2], intOr(match[1], 0))
			continue
		}
		out = append(out, item)
	}
	return out
}

func normalizeProficiencies(m map[string]any) Proficiencies {
	if m == nil {
		return Proficiencies{}
	}
	return Proficiencies{
		Armor:   appendUnique(nil, nameList(m["armor"])...),
		Weapons: appendUnique(nil, nameList(m["weapons"])...),
		Tools:   appendUnique(nil, nameList(m["tools"])...),
		Skills:  appendUnique(nil, nameList(m["skills"])...),
	}
}

func normalizeSaves(names []string) []rules.Ability {
	var out []rules.Ability
	seen := make(map[rules.Ability]bool)
	for _, n := range names {
		if len(n) > 3 {
			n = n[:3]
		}
		ab, ok := rules.ParseAbility(n)
		if ok && !seen[ab] {
			seen[ab] = true
			out = append(out, ab)
		}
	}
	return out
}

func normalizeSkillLevels(m map[string]any) map[string]ProficiencyLevel {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]ProficiencyLevel, len(m))
	for skill, v := range m {
		out[skill] = parseProficiencyLevel(v)
	}
	return out
}

func parseProficiencyLevel(v any) ProficiencyLevel {
	switch t := v.(type) {
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "expertise", "2":
			return ProficiencyExpertise
		case "half", "0.5":
			return ProficiencyHalf
		case "", "false", "0", "none":
			return ProficiencyNone
		}
		return ProficiencyProficient
	case bool:
		if t {
			return ProficiencyProficient
		}
		return ProficiencyNone
	case float64:
		switch {
		case t >= 2:
			return ProficiencyExpertise
		case t == 0.5:
			return ProficiencyHalf
		case t > 0:
			return ProficiencyProficient
		}
		return ProficiencyNone
	case int:
		return parseProficiencyLevel(float64(t))
	}
	return ProficiencyNone
}

// appendUnique appends values not already present (case-insensitive),
// dropping blanks.
func appendUnique(dst []string, values ...string) []string {
	seen := make(map[string]bool, len(dst))
	for _, d := range dst {
		seen[strings.ToLower(d)] = true
	}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[strings.ToLower(v)] {
			continue
		}
		seen[strings.ToLower(v)] = true
		dst = append(dst, v)
	}
	return dst
}
