package remote

import (
	"os"
	"path/filepath"

	"github.com/biruktesfaye/gitlet/internal/fsutil"
	"github.com/google/uuid"
)

// acquireLock creates a transient, uniquely named marker file in the peer
// repository's .gitlet directory for the duration of a push, so two
// overlapping pushes from different local repositories leave distinguishable
// traces; the marker does not stop their writes from interleaving. This is best-effort
// bookkeeping, not a correctness mechanism: concurrent access by multiple
// processes is an explicit non-goal, so acquireLock never blocks or retries.
func acquireLock(remoteRoot string) (release func(), err error) {
	path := filepath.Join(remoteRoot, fsutil.GitletDirName, "push-"+uuid.NewString()+".lock")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		return nil, err
	}
	return func() { os.Remove(path) }, nil
}
