package entities

import "github.com/KirkDiggler/rpg-sheet/internal/errors"

// ResourceKind identifies a per-rest resource tracked with dots.
type ResourceKind string

const (
	ResourceRage             ResourceKind = "rage"
	ResourceZealousPresence  ResourceKind = "zealous_presence"
	ResourceEldritchCannon   ResourceKind = "eldritch_cannon"
	ResourceRabbitHop        ResourceKind = "rabbit_hop"
	ResourceKi               ResourceKind = "ki"
	ResourceChannelDivinity  ResourceKind = "channel_divinity"
	ResourceWildShape        ResourceKind = "wild_shape"
	ResourceSpellSlot        ResourceKind = "spell_slot"
	ResourceDeathSaveSuccess ResourceKind = "death_save_success"
	ResourceDeathSaveFailure ResourceKind = "death_save_failure"
)

var resourceKinds = []ResourceKind{
	ResourceRage,
	ResourceZealousPresence,
	ResourceEldritchCannon,
	ResourceRabbitHop,
	ResourceKi,
	ResourceChannelDivinity,
	ResourceWildShape,
	ResourceSpellSlot,
	ResourceDeathSaveSuccess,
	ResourceDeathSaveFailure,
}

// ParseResourceKind validates a resource name.
func ParseResourceKind(s string) (ResourceKind, error) {
	for _, k := range resourceKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown resource %q", s)
}

func (k ResourceKind) String() string { return string(k) }
