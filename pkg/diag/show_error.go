package diag

import (
	"errors"
	"fmt"
	"io"
)

// Shower is implemented by errors that know how to show themselves with
// context.
type Shower interface {
	Show(indent string) string
}

// ShowError writes err to w, followed by a newline. If err or an error it
// wraps is a Shower, its Show method is used; otherwise the message is
// written in bold red.
func ShowError(w io.Writer, err error) {
	var shower Shower
	if errors.As(err, &shower) {
		fmt.Fprintln(w, shower.Show(""))
		return
	}
	fmt.Fprintf(w, "%s%s%s\n", messageStart, err.Error(), messageEnd)
}
