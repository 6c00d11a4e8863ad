package attach

import (
	"github.com/graftlabs/graft/extension"
)

// allow is the collision guard. It decides whether an attachment of name onto
// target may proceed, and never mutates state.
//
// An attachment is allowed when any of:
//   - overwrite was requested,
//   - (target, name) is in the history, meaning the existing attribute was
//     itself attached by this mechanism and may be redeclared freely,
//   - neither the native Go type nor the side table defines name.
func allow(store extension.ExtensionStore, history *extension.History, target extension.Target, name string, overwrite bool) bool {
	if overwrite {
		return true
	}
	if history.Seen(target, name) {
		return true
	}
	if target.HasNative(name) {
		return false
	}
	if extension.Has(store, target, name) {
		return false
	}

	return true
}
