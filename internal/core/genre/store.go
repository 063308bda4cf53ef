package genre

import "context"

// Repository defines the data access contract.
//
// Get returns apperr.ErrNotFound for an unknown id.
type Repository interface {
	List(context context.Context) ([]Genre, error)
	Get(context context.Context, id int64) (*Genre, error)
}
