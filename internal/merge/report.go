package merge

import "github.com/sergi/go-diff/diffmatchpatch"

// ConflictReport renders a human-readable diff between a conflicted file's
// CUR and OTH sides, for callers that want more than the bare
// "Encountered a merge conflict." line (a supplemented, optional detail;
// the conflict marker written to the working tree is unaffected by this).
func ConflictReport(name string, curBytes, othBytes []byte) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(curBytes), string(othBytes), false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return name + ":\n" + dmp.DiffPrettyText(diffs)
}
