package domain

// EncounterStartedPayload is the event payload for encounter.started events
type EncounterStartedPayload struct {
	SessionID       string         `json:"session_id,omitempty"`
	MonsterName     string         `json:"monster_name"`
	Variant         MonsterVariant `json:"variant"`
	DefeatedEnemies int            `json:"defeated_enemies"`
}

// AttackResolvedPayload is the event payload for combat.attack events
type AttackResolvedPayload struct {
	SessionID    string `json:"session_id,omitempty"`
	Attacker     string `json:"attacker"`
	Target       string `json:"target"`
	Damage       int    `json:"damage"`
	Critical     bool   `json:"critical"`
	Enraged      bool   `json:"enraged,omitempty"`
	TargetHealth int    `json:"target_health"`
}

// MonsterDefeatedPayload is the event payload for monster.defeated events
type MonsterDefeatedPayload struct {
	SessionID   string         `json:"session_id,omitempty"`
	MonsterName string         `json:"monster_name"`
	Variant     MonsterVariant `json:"variant"`
	Souls       int            `json:"souls"`
	Gold        int            `json:"gold"`
}

// CharacterDefeatedPayload is the event payload for character.defeated events
type CharacterDefeatedPayload struct {
	SessionID       string `json:"session_id,omitempty"`
	CharacterName   string `json:"character_name"`
	KilledBy        string `json:"killed_by"`
	Level           int    `json:"level"`
	DefeatedEnemies int    `json:"defeated_enemies"`
}

// LootDroppedPayload is the event payload for loot.dropped events
type LootDroppedPayload struct {
	SessionID string `json:"session_id,omitempty"`
	ItemName  string `json:"item_name"`
	Rarity    Rarity `json:"rarity"`
}

// LevelUpPayload is the event payload for character.level_up events
type LevelUpPayload struct {
	SessionID string `json:"session_id,omitempty"`
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
}

// EncounterFledPayload is the event payload for encounter.fled events
type EncounterFledPayload struct {
	SessionID   string `json:"session_id,omitempty"`
	MonsterName string `json:"monster_name"`
	Success     bool   `json:"success"`
}

// ItemSoldPayload is the event payload for item.sold events
type ItemSoldPayload struct {
	SessionID string `json:"session_id,omitempty"`
	ItemName  string `json:"item_name"`
	Rarity    Rarity `json:"rarity"`
	Gold      int    `json:"gold"`
}

// ItemBoughtPayload is the event payload for item.bought events
type ItemBoughtPayload struct {
	SessionID string `json:"session_id,omitempty"`
	ItemName  string `json:"item_name"`
	Gold      int    `json:"gold"`
}
