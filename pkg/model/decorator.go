package model

// Decorator enriches field descriptors with presentation metadata (labels,
// placeholders, help text) after the canonical signup fields are built.
type Decorator interface {
	Decorate([]Field) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func([]Field) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(fields []Field) error {
	return fn(fields)
}
