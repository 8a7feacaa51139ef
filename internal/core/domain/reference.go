package domain

type RefState string

const (
	// RefUnset: the record never pointed anywhere.
	RefUnset RefState = "unset"
	// RefDangling: an id is set but no record answers to it.
	RefDangling RefState = "dangling"
	RefResolved RefState = "resolved"
)

// Reference is the outcome of looking up a soft foreign key.
type Reference[T any] struct {
	ID     string
	State  RefState
	Target *T
}

func UnsetRef[T any]() Reference[T] {
	return Reference[T]{State: RefUnset}
}

func DanglingRef[T any](id string) Reference[T] {
	return Reference[T]{ID: id, State: RefDangling}
}

func ResolvedRef[T any](id string, target *T) Reference[T] {
	return Reference[T]{ID: id, State: RefResolved, Target: target}
}

func (r Reference[T]) Found() bool {
	return r.State == RefResolved && r.Target != nil
}
