package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"caseshop/internal/app"
	"caseshop/internal/cart"
	"caseshop/internal/exitcode"
	"caseshop/internal/service"
	"caseshop/internal/session"
)

// usageError prints msg and returns the user error code.
func usageError(errOut io.Writer, format string, args ...any) int {
	fmt.Fprintf(errOut, "error: "+format+"\n", args...)
	return exitcode.UserError
}

// fail reports err and maps it to an exit code.
func fail(errOut io.Writer, err error) int {
	var verrs session.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		fields := make([]string, 0, len(verrs))
		for f := range verrs {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			fmt.Fprintf(errOut, "error: %s: %s\n", f, verrs[f])
		}
		return exitcode.UserError
	case errors.Is(err, app.ErrLoginRequired):
		fmt.Fprintln(errOut, "error: not logged in (run: caseshop login)")
		return exitcode.AuthError
	case errors.Is(err, cart.ErrInvalidQuantity):
		return usageError(errOut, "%v", err)
	}

	switch service.Kind(err) {
	case service.KindAuth:
		fmt.Fprintf(errOut, "error: auth error: %v\n", err)
		return exitcode.AuthError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}

// acknowledge prints the acknowledgement unless quiet.
func acknowledge(a *app.App, out io.Writer) int {
	if !a.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
