package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// LockFileName is the installed-state file an external installer maintains.
const LockFileName = "kitn-lock.json"

// Lock maps installed component names to their pinned versions. An empty
// object is a valid lock: no entries are required.
type Lock map[string]string

// ParseLock reads a lock file. A missing file is not an error and yields an
// empty lock.
func ParseLock(path string) (Lock, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Lock{}, nil
		}
		return nil, fmt.Errorf("reading lock file %s: %w", path, err)
	}

	var lock Lock
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, fmt.Errorf("parsing lock file %s: %w", path, err)
	}
	if lock == nil {
		lock = Lock{}
	}
	return lock, nil
}
