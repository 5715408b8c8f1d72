package actions

import (
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

const (
	sourceBasicRules = "Basic Rules"
	sourceSpecial    = "Special Melee Attack"
	attackAction     = "Attack"
)

func universalActions() []entities.Action {
	basic := func(name, desc string) entities.Action {
		return entities.Action{Name: name, Desc: desc, Source: sourceBasicRules, Type: entities.ActionTypeAction}
	}
	special := func(name, desc string) entities.Action {
		return entities.Action{Name: name, Desc: desc, Source: sourceSpecial, Type: entities.ActionTypeAction}
	}
	return []entities.Action{
		basic(attackAction, "Make one melee or ranged attack. Certain features, such as the Extra Attack feature, "+
			"allow you to make more than one attack with this action."),
		special("Grapple", "As part of an Attack action, you can make a special melee attack to grapple. This replaces "+
			"one of your attacks. The target must be no more than one size larger than you and within your reach. "+
			"Make a Strength (Athletics) check contested by the target's Strength (Athletics) or Dexterity "+
			"(Acrobatics) check."),
		special("Shove", "As part of an Attack action, you can make a special melee attack to shove a creature, either "+
			"to knock it prone or push it 5 feet away from you. This replaces one of your attacks. The target must be "+
			"no more than one size larger than you and within your reach. Make a Strength (Athletics) check contested "+
			"by the target's Strength (Athletics) or Dexterity (Acrobatics) check."),
		basic("Cast a Spell", "Cast a spell with a casting time of 1 action."),
		basic("Dash", "Gain extra movement for the current turn."),
		basic("Disengage", "Your movement doesn't provoke opportunity attacks for the rest of the turn."),
		basic("Dodge", "Until the start of your next turn, any attack roll made against you has disadvantage if you "+
			"can see the attacker, and you make Dexterity saving throws with advantage."),
		basic("Help", "Give an ally advantage on an ability check or their next attack roll."),
		basic("Hide", "Make a Dexterity (Stealth) check to become unseen."),
		basic("Ready", "Ready an action to occur on a specific trigger."),
		basic("Search", "Make a Wisdom (Perception) or Intelligence (Investigation) check."),
		basic("Use an Object", "Interact with a second object on your turn."),
		basic("Don/Doff a Shield", "Donning or doffing a shield takes 1 action."),
	}
}

func universalBonusActions() []entities.Action {
	return []entities.Action{{
		Name: "Two-Weapon Fighting",
		Desc: "When you take the Attack action and attack with a light melee weapon that you're holding in one " +
			"hand, you can use a bonus action to attack with a different light melee weapon that you're holding in " +
			"the other hand. You don't add your ability modifier to the damage of the bonus attack, unless that " +
			"modifier is negative.",
		Source: sourceBasicRules,
		Type:   entities.ActionTypeBonus,
	}}
}

func universalReactions() []entities.Action {
	return []entities.Action{{
		Name: "Opportunity Attack",
		Desc: "You can make an opportunity attack when a hostile creature that you can see moves out of your " +
			"reach. You use your reaction to make one melee attack against the provoking creature.",
		Source: sourceBasicRules,
		Type:   entities.ActionTypeReaction,
	}}
}

// movementActions fills the jump distances from the character's Strength.
func movementActions(c *entities.Character) []entities.Action {
	str := c.Abilities.Score(rules.Strength)
	strMod := c.Abilities.Mod(rules.Strength)
	move := func(name, desc string) entities.Action {
		return entities.Action{Name: name, Desc: desc, Source: sourceBasicRules, Type: entities.ActionTypeMove}
	}
	return []entities.Action{
		move("Move", "You can move up to your speed on your turn. You can break up your movement, using some of it "+
			"before and after your action."),
		move("Stand Up", "You can stand up from prone by using half of your movement speed."),
		move("Drop Prone", "You can drop prone without using any of your speed."),
		move("Climb, Swim, or Crawl", "Each foot of movement costs 1 extra foot (2 extra feet in difficult terrain) "+
			"when you climb, swim, or crawl."),
		move("Long Jump", fmt.Sprintf("With a 10-foot run-up, you can long jump up to your Strength score in feet "+
			"(%d ft). Without a run-up, you can only jump half that distance.", str)),
		move("High Jump", fmt.Sprintf("With a 10-foot run-up, you can high jump up to 3 + your Strength modifier "+
			"feet (%d ft). Without a run-up, you can only jump half that distance.", 3+strMod)),
		move("Difficult Terrain", "Moving through difficult terrain costs 2 feet of speed for every 1 foot moved."),
	}
}
