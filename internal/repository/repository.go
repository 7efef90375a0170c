package repository

import "errors"

// ErrDuplicateNCNo reports an append whose NC number already exists in the
// register. Possible when two submissions race the read-allocate-append
// sequence; the service re-allocates and retries once.
var ErrDuplicateNCNo = errors.New("nc number already exists in register")

// Repository aggregates the data-access interfaces.
type Repository struct {
	NCRecord NCRecordRepository
	Master   MasterRepository
	Images   ImageStore
}
