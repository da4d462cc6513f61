package codec

// Option is a Borsh Option<T>: one presence byte, then the value if present.
type Option[T any] struct {
	Value T
	Valid bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{Value: v, Valid: true}
}

// None returns an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.Value, o.Valid
}

type optional interface {
	present() bool
	value() interface{}
}

func (o Option[T]) present() bool      { return o.Valid }
func (o Option[T]) value() interface{} { return o.Value }
