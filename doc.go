// Package prompter populates Go values from line-based console input. Each
// field of a target type is declared once, with its prompt text and input
// constraints; a session then asks for every field in order and repeats the
// question until the answer is acceptable.
//
//	entity := prompter.NewEntity[User]("user").
//		Int("age", func(u *User, v int) { u.Age = v },
//			model.Message("Age:"),
//			model.With(constraint.NotNegative{ErrMsg: "Age cannot be negative"}))
//	user, err := prompter.PromptEntity(ctx, entity)
//
// Declarations are validated before the first prompt is written. The
// building blocks live in the pkg/ subpackages: constraint, model,
// validation, prompt, console, declfile and config.
package prompter
