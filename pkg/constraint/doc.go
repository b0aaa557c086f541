// Package constraint defines the closed set of declarative constraints that can
// be attached to a promptable field, together with the option resolver that
// maps raw console input onto a position inside a parallel values list.
//
// Three families exist:
//
//   - option constraints (StringOptions, IntOptions, IntRange) restrict the
//     accepted input to an enumerable set and resolve a selection to an index;
//   - value sets (StringValues, IntValues, DoubleValues) either bound the
//     accepted literals or supply the values indexed by an option;
//   - NotNegative rejects negative numeric input.
//
// Every constraint carries its own user-facing error message. Resolving input
// never touches the target instance or the input stream.
package constraint
