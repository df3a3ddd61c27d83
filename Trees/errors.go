package Trees

import "strconv"

// InsertError is returned by Insert when the call is rejected.
type InsertError struct {
	msg string
}

func (e *InsertError) Error() string {
	return e.msg
}

var (
	ErrNilTree  = &InsertError{"insert into nil tree"}
	ErrNilValue = &InsertError{"insert of nil value"}
)

// InvalidSliceError is the panic value of Build when the slice isn't sorted,
// I and J are the adjacent indexes found out of order.
type InvalidSliceError struct {
	I, J int
}

func (e InvalidSliceError) Error() string {
	return "slice isn't sorted at index " + strconv.Itoa(e.I) + " and " + strconv.Itoa(e.J)
}

// UsageError is the panic value for calls that break the caller's side of the contract.
type UsageError struct {
	msg string
}

func (e UsageError) Error() string {
	return e.msg
}

// InvariantError is returned by Verify. Rule is the number of the broken
// red-black rule as listed on RBTree.
type InvariantError struct {
	Rule int
	Msg  string
}

func (e *InvariantError) Error() string {
	return "rule " + strconv.Itoa(e.Rule) + ": " + e.Msg
}
