package remote

import (
	"github.com/biruktesfaye/gitlet/internal/config"
	"github.com/biruktesfaye/gitlet/internal/merge"
	"github.com/biruktesfaye/gitlet/internal/objects"
	"github.com/biruktesfaye/gitlet/internal/refs"
	"github.com/biruktesfaye/gitlet/internal/staging"
)

// Pull is fetch followed by a merge of the resulting mirror branch into the
// current branch (spec §4.9).
func Pull(root string, store *objects.Store, index *refs.Index, stage *staging.Area, cfg *config.Config, remoteName, branch string) (*merge.Outcome, error) {
	mirror, err := Fetch(store, index, cfg, remoteName, branch)
	if err != nil {
		return nil, err
	}
	return merge.Merge(root, store, index, stage, mirror)
}
