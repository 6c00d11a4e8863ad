/*
Package attach provides the attachment engine for declaring functions,
properties, and constants as extensions of already-defined types.

Go types cannot gain attributes at runtime, so attachments land in a side
table (see package extension) and call sites dispatch through it. The engine
covers everything between a declaration and a recorded extension:

Attachable:
  - A single named value: a method (Func), a property accessor (Prop), or a
    constant (Const)
  - Property wrapping turns a one-parameter function F into an accessor whose
    read on instance i yields F(i)

Group:
  - An ordered batch of attachables declared together and attached in one
    request
  - GroupOf enumerates a scratch struct's exported fields and methods as
    group members

Engine:
  - Validates every (target, name) pair across the whole request before
    applying any record, so a rejected request mutates nothing
  - Consults the collision guard: an existing attribute rejects the request
    unless overwrite was passed or the attribute was itself attached earlier
    (tracked in the process-wide history), which keeps repeated interactive
    declarations from raising
  - Records a report for every invocation and clears top-level bindings
    through the scope port unless keep was passed

# Basic Usage

	eng := attach.New(attach.WithScope(scope))

	// Attach a property to a target type.
	err := eng.Attach(
		attach.Prop("size", func(b Box) int { return b.Value }),
		attach.To(extension.TargetOf[Box]()),
	)

	// Dispatch at the call site.
	size, err := extension.Get(eng.Store(), Box{Value: 7}, "size")
*/
package attach
