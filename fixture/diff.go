package fixture

import "github.com/sergi/go-diff/diffmatchpatch"

// Diff renders a readable difference between two outputs, for use in
// test failure messages.
func Diff(want, got string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	return dmp.DiffPrettyText(diffs)
}
