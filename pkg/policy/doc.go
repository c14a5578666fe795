// Package policy decides which output path a transform run uses.
//
// The user's relationship with the output field is tracked as an Intent:
//
//   - Unset: nothing chosen; the engine picks a destination.
//   - Auto: the document declares a default output and the user has not
//     overridden it. For override purposes Auto behaves like Unset.
//   - Explicit: the user typed into the output field or chose a file.
//
// Intent only changes through Intent.Next, whose switch covers every
// (state, event) pair.
package policy
