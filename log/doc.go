/*
Package log implements the logging framework of the codec tools.

See https://github.com/cihub/seelog/wiki/Log-levels for an introduction to the
different logging levels.

Errors are logged once, as early as possible: When calling external packages
that create an error, we wrap that error in a log.Error() call. If we create
our own errors, we log them with log.Error() as well. A single error passed
to log.Error() is returned unchanged, wrapped sentinel errors (like the
decode errors of package encode) can therefore still be matched with
errors.Is. If we call panic() we create the error for that with
log.Critical[f]().

The logger is disabled until Init is called with a log directory or with
console logging enabled. Console logging goes to stderr.
*/
package log
