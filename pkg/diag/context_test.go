package diag

import "testing"

var contextTests = []struct {
	Name    string
	Context *Context
	Indent  string
	Want    string
}{
	{
		Name:    "single-line culprit",
		Context: contextMarked("[tty 1]", "2 <foo> +"),
		Want:    "[tty 1], line 1: 2 <foo> +",
	},
	{
		Name:    "multi-line culprit",
		Context: contextMarked("[doc]", "1 2 +\n3 <bad\nbad> *"),
		Indent:  "_",
		Want: lines(
			"[doc], line 2-3: 3 <bad>",
			"_                 <bad> *",
		),
	},
	{
		Name: "trailing newline in culprit is removed",
		//                              0123456 7
		Context: NewContext("[tty 1]", "2 foo\n", Ranging{2, 6}),
		Want:    "[tty 1], line 1: 2 <foo>",
	},
	{
		Name:    "culprit in later argument",
		Context: contextMarked("[arg 3]", "$x <$y> +"),
		Want:    "[arg 3], line 1: $x <$y> +",
	},
	{
		Name:    "empty culprit",
		Context: NewContext("[tty 1]", "2 +", Ranging{2, 2}),
		Want:    "[tty 1], line 1: 2 <^>+",
	},
	{
		Name:    "unknown culprit range",
		Context: NewContext("[tty 1]", "2 +", Ranging{-1, -1}),
		Want:    "[tty 1], unknown position",
	},
	{
		Name:    "invalid culprit range",
		Context: NewContext("[tty 1]", "2 +", Ranging{2, 1}),
		Want:    "[tty 1], invalid position 2-1",
	},
}

func TestContext(t *testing.T) {
	setCulpritMarkers(t, "<", ">")
	for _, test := range contextTests {
		t.Run(test.Name, func(t *testing.T) {
			if got := test.Context.Show(test.Indent); got != test.Want {
				t.Errorf("Show() -> %q, want %q", got, test.Want)
			}
		})
	}
}

func TestRanging_Shift(t *testing.T) {
	if got := (Ranging{2, 5}).Shift(4); got != (Ranging{6, 9}) {
		t.Errorf("Shift(4) -> %v, want {6 9}", got)
	}
}
