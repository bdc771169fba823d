/*
Package errors implements the error handling used across the vesting
module.

The idea is to reuse as many errors from this package as possible and
declare custom root errors only when necessary. Each root error carries a
unique code so that failure kinds can be distinguished programmatically.
Extensions register their own root errors using Register with a code from
a range reserved for that extension.

There is also support for stack traces. Ensure an error is created via
ErrXyz.New("...") or errors.Wrap(err, "...") at the point of creation so
that a stack trace is attached. If you wrap multiple times, only the first
wrap records the stack trace.

Once you have an error, use fmt verbs to get more context:

	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created
*/
package errors
