package entities

import "strings"

// ArmorInfo is the AC-relevant view of a body armor or shield.
type ArmorInfo struct {
	Name     string `json:"name"`
	BaseAC   int    `json:"baseAC"`
	DexBonus bool   `json:"dexBonus"`
	// MaxDex caps the DEX contribution; nil means uncapped.
	MaxDex              *int `json:"maxDex,omitempty"`
	IsShield            bool `json:"isShield"`
	Bonus               int  `json:"bonus,omitempty"`
	StrMinimum          int  `json:"strMinimum,omitempty"`
	StealthDisadvantage bool `json:"stealthDisadvantage,omitempty"`
}

// ShieldBonus is the AC a shield adds.
const ShieldBonus = 2

// IsShieldName reports whether an armor entry names a shield.
func IsShieldName(name string) bool {
	key := Fold(name)
	return key == "shield" || strings.HasSuffix(key, " shield")
}

// ShieldInfo returns the armor info of a plain shield.
func ShieldInfo() *ArmorInfo {
	return &ArmorInfo{Name: "Shield", IsShield: true, Bonus: ShieldBonus}
}

// ArmorFromEquipment converts an armor record. Medium armor without an
// explicit cap limits DEX to +2. ok is false for non-armor items.
func ArmorFromEquipment(r *EquipmentRecord) (*ArmorInfo, bool) {
	if r == nil {
		return nil, false
	}
	if r.IsShield() {
		info := ShieldInfo()
		info.Name = r.Name
		return info, true
	}
	if r.ArmorClass == nil {
		return nil, false
	}
	info := &ArmorInfo{
		Name:                r.Name,
		BaseAC:              r.ArmorClass.Base,
		DexBonus:            r.ArmorClass.DexBonus,
		MaxDex:              r.ArmorClass.MaxBonus,
		StrMinimum:          r.StrMinimum,
		StealthDisadvantage: r.StealthDisadvantage,
	}
	if info.DexBonus && info.MaxDex == nil && strings.EqualFold(r.ArmorCategory, "medium") {
		two := 2
		info.MaxDex = &two
	}
	return info, true
}
