package core

// Shortcut maps editing chords to command keys. Ctrl and Super both count as
// the command modifier so the same table serves every platform.
func Shortcut(k Key, mods Mod) Key {
	if !mods.Has(ModCtrl) && !mods.Has(ModSuper) {
		return k
	}
	switch k {
	case KeyA:
		return KeySelectAll
	case KeyC:
		return KeyCopy
	case KeyX:
		return KeyCut
	case KeyV:
		return KeyPaste
	case KeyY:
		return KeyRedo
	case KeyZ:
		if mods.Has(ModShift) {
			return KeyRedo
		}
		return KeyUndo
	}
	return k
}
