package constraint

import "strconv"

// Resolve returns the position of input inside the declared options.
func (c StringOptions) Resolve(input string) (int, error) {
	for i, option := range c.Options {
		if option == input {
			return i, nil
		}
	}
	return -1, Invalid(c.Message())
}

// Resolve parses input as an integer and returns its position inside the
// declared options. Parse failures report the constraint message.
func (c IntOptions) Resolve(input string) (int, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return -1, Invalid(c.Message())
	}
	for i, option := range c.Options {
		if option == n {
			return i, nil
		}
	}
	return -1, Invalid(c.Message())
}

// Resolve parses input as an integer and returns its offset from From.
func (c IntRange) Resolve(input string) (int, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return -1, Invalid(c.Message())
	}
	if n < c.From || n > c.To {
		return -1, Invalid(c.Message())
	}
	return n - c.From, nil
}

// Choices returns the declared options.
func (c StringOptions) Choices() []string {
	return append([]string(nil), c.Options...)
}

// Choices returns the declared options as decimal text.
func (c IntOptions) Choices() []string {
	out := make([]string, len(c.Options))
	for i, option := range c.Options {
		out[i] = strconv.Itoa(option)
	}
	return out
}

// Choices returns every integer of the range as decimal text. A broken range
// yields none.
func (c IntRange) Choices() []string {
	var out []string
	for n := c.From; n <= c.To; n++ {
		out = append(out, strconv.Itoa(n))
	}
	return out
}
