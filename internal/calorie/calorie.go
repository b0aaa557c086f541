// Package calorie estimates a daily calorie norm from prompted body data
// using the Mifflin-St Jeor equation.
package calorie

import (
	"github.com/goliatone/go-prompter/pkg/constraint"
	"github.com/goliatone/go-prompter/pkg/model"
)

// EntityName identifies the user entity to declaration overlays.
const EntityName = "user"

// Coefficients of the Mifflin-St Jeor equation.
const (
	weightFactor = 10
	heightFactor = 6.25
	ageFactor    = 5
)

// Activity multipliers for the five activity levels, lowest first.
var ActivityFactors = []float64{1.2, 1.375, 1.550, 1.725, 1.900}

// Gender coefficients added to the base equation.
const (
	MaleCoefficient   = 5
	FemaleCoefficient = -161
)

// User is the data collected before estimating the norm.
type User struct {
	Age               int
	Height            int
	Weight            int
	PhysicalActivity  float64
	GenderCoefficient int
}

const activityPrompt = `Выберите степень Вашей физической активности от 1 до 5
1 - Малоподвижный образ жизни
2 - Низкая активность
3 - Умеренная активность
4 - Высокая активность
5 - Очень высокая активность
`

// Entity declares the prompted fields of User in prompting order.
func Entity() *model.Entity[User] {
	return model.NewEntity[User](EntityName).
		Int("age", func(u *User, v int) { u.Age = v },
			model.Message(" Введите Ваш возраст:"),
			model.With(constraint.NotNegative{ErrMsg: "Возраст не может быть отрицательным"})).
		Int("height", func(u *User, v int) { u.Height = v },
			model.Message("Введите Ваш рост, в см. :"),
			model.With(constraint.NotNegative{ErrMsg: "Рост не может быть отрицательным!"})).
		Int("weight", func(u *User, v int) { u.Weight = v },
			model.Message("Введите Ваш вес:"),
			model.With(constraint.NotNegative{ErrMsg: "Вес не может быть отрицательным!"})).
		Float("physicalActivity", func(u *User, v float64) { u.PhysicalActivity = v },
			model.Message(activityPrompt),
			model.With(
				constraint.DefaultRange("Число должно быть от 1 до 5 !"),
				constraint.DoubleValues{Values: ActivityFactors},
			)).
		Int("genderCoefficient", func(u *User, v int) { u.GenderCoefficient = v },
			model.Message("Введите Ваш пол (М или Ж) :"),
			model.With(
				constraint.StringOptions{Options: []string{"М", "Ж"}, ErrMsg: "Неверный ввод! Введите М или Ж!"},
				constraint.IntValues{Values: []int{MaleCoefficient, FemaleCoefficient}},
			))
}

// Calculate returns the daily calorie norm for u.
func Calculate(u User) float64 {
	base := float64(weightFactor*u.Weight) + heightFactor*float64(u.Height) - float64(ageFactor*u.Age) + float64(u.GenderCoefficient)
	return base * u.PhysicalActivity
}
