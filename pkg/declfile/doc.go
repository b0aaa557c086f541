// Package declfile loads prompt declarations from JSON or YAML documents and
// overlays them onto entities declared in Go. A document lists entities by
// name and, per field, an optional prompt text and constraint declarations:
//
//	entities:
//	  user:
//	    fields:
//	      age:
//	        type: integer
//	        prompt: "Enter your age:"
//	        notNegative:
//	          errMsg: Age cannot be negative
//	      activity:
//	        intRange: {from: 1, to: 5, errMsg: Pick a number from 1 to 5}
//	        doubleValues: {values: [1.2, 1.375, 1.55, 1.725, 1.9]}
//
// Declared constraints replace attached constraints of the same kind and are
// appended otherwise; `replace: true` discards every Go-declared constraint
// of the field first. Overlays never change field names or types, so the
// result is still checked by package validation before prompting.
package declfile
