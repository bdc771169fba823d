package errors

import "strings"

// Append clubs together all provided errors. Nil values are ignored.
//
// If given error implements the multi error interface, it is flattened.
// Instead of nesting, all its errors are directly included in the result.
// Append returns nil when no non-nil error was provided.
func Append(errs ...error) error {
	var res multiError
	for _, e := range errs {
		switch e := e.(type) {
		case nil:
			continue
		case multiError:
			res = append(res, e...)
		default:
			res = append(res, e)
		}
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

type multiError []error

func (e multiError) Error() string {
	switch len(e) {
	case 0:
		return "<nil>"
	case 1:
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
