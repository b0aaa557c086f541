// Package model describes promptable entities without runtime reflection. An
// Entity lists its fields in declaration order; each Field couples a static
// FieldDescriptor (name, semantic type, prompt text, constraints) with a typed
// setter supplied by the entity definition.
//
//	users := model.NewEntity[User]("user").
//		Int("age", func(u *User, v int) { u.Age = v },
//			model.Message("Enter your age:"),
//			model.With(constraint.NotNegative{ErrMsg: "Age cannot be negative"})).
//		Float("activity", func(u *User, v float64) { u.Activity = v },
//			model.With(constraint.DefaultRange(""),
//				constraint.DoubleValues{Values: []float64{1.2, 1.375, 1.55, 1.725, 1.9}}))
//
// Descriptors are validated by package validation and consumed by package
// prompt; decorators (see package declfile) may adjust them before either runs.
package model
