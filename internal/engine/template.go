package engine

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// Placeholder keys recognized in action descriptions.
const (
	PlaceholderDC     = "DC"
	PlaceholderDamage = "DMG"
	PlaceholderHP     = "HP"
)

// Template replaces every {KEY} in desc with values[KEY] in a single pass.
// Unknown placeholders are left as written.
func Template(desc string, values map[string]string) string {
	if len(values) == 0 || !strings.Contains(desc, "{") {
		return desc
	}
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(desc)
}

func (e *engine) TemplateValues(c *entities.Character, actionName string) map[string]string {
	return TemplateValues(c, actionName)
}

// TemplateValues returns the placeholder values for the named action, or
// nil when the action has none.
func TemplateValues(c *entities.Character, actionName string) map[string]string {
	if c == nil {
		return nil
	}
	switch entities.Fold(actionName) {
	case "breath weapon":
		return map[string]string{
			PlaceholderDC:     strconv.Itoa(8 + c.ProficiencyBonus() + c.Abilities.Mod(rules.Constitution)),
			PlaceholderDamage: BreathWeaponDice(c.Level),
		}
	case "activate eldritch cannon", "eldritch cannon":
		return map[string]string{
			PlaceholderDC:     strconv.Itoa(8 + c.ProficiencyBonus() + c.Abilities.Mod(rules.Intelligence)),
			PlaceholderDamage: CannonDice(c.Level),
			PlaceholderHP:     "1d8" + rules.FormatSigned(c.Abilities.Mod(rules.Intelligence)),
		}
	}
	return nil
}

