package database

import (
	"errors"

	"github.com/lib/pq"
)

// IsRetryable reports whether a failed transaction is worth retrying.
// The collection writes run at serializable isolation, so serialization
// failures and deadlocks are expected under concurrent writers; lock
// timeouts are transient. Everything else is permanent.
func IsRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40001", "40P01", "55P03":
			return true
		}
	}
	return false
}
