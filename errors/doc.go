/*
Package errors provides the root errors of the ledger and the functions to
wrap them.

Every failure returned to a client should wrap a root error, ie.

	return errors.Wrapf(errors.ErrNotFound, "photo %d", id)

The root error decides the code reported with ABCIInfo, and Is tells
whether an error has given root. Extensions declare their own root errors
with Register; the x/sale errors are an example.

The first Wrap records the stacktrace. Print an error with %+v or use
Stacktrace to read it.
*/
package errors
