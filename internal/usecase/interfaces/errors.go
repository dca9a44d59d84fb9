package interfaces

import "errors"

// ErrConditionFailed is returned by repositories when a guarded write loses:
// a uniqueness guard already exists or the record is no longer in the expected state.
var ErrConditionFailed = errors.New("conditional write failed")
