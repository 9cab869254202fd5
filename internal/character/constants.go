package character

// ==================== Error Messages ====================

const (
	ErrMsgNameRequired         = "character name is required"
	ErrMsgEquipFmt             = "cannot equip %q: %w"
	ErrMsgUseFmt               = "cannot use %q: %w"
	ErrMsgUnequipFmt           = "nothing equipped in %s: %w"
	ErrMsgUnknownSlotFmt       = "%w: unknown slot %q"
	ErrMsgUnsupportedEffectFmt = "%w: %q has no usable effect on %q"
)
