package store

import (
	"errors"
	"path/filepath"

	"github.com/gofrs/flock"
)

// AcquireRunLock takes an exclusive lock file in the data dir so two
// scheduler invocations can't overlap and double-post. Non-blocking:
// a held lock means another run is still going, and this one should bail.
func AcquireRunLock(dataDir string) (release func(), err error) {
	fl := flock.New(filepath.Join(dataDir, "jobcast.lock"))

	ok, err := fl.TryLock()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("another run holds the lock")
	}
	return func() { _ = fl.Unlock() }, nil
}
