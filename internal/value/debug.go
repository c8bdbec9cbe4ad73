package value

import "github.com/davecgh/go-spew/spew"

// debugConfig disables spew's pointer-address noise and method-call probing;
// DebugString is meant for developers staring at --trace output, not for
// proving two dumps byte-identical.
var debugConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableMethods:          true,
	DisableCapacities:       true,
}

// DebugString renders v's internal Go representation, UUID debug tags and
// all, for diagnostics. It is never used by Repr or Readable, which follow
// spec.md's exact printed-form rules instead.
func DebugString(v Value) string {
	return debugConfig.Sdump(v)
}
