package ui

import (
	"fmt"
	"io"
)

// Dialog texts shared by the browser and the plain listing.
const (
	AppTitle = "White House Petitions"

	CreditsTitle   = "Credits"
	CreditsMessage = "Petitions from We the People at petitions.whitehouse.gov"

	LoadingErrorTitle   = "Loading Error"
	LoadingErrorMessage = "There was a problem loading the feed; please check your connection and try again."
)

func OK(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Success.Render(t.SymOK+" "+msg))
}

func Fail(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Error.Render(t.SymFail+" "+msg))
}
