package mpa

import "context"

// Repository defines the data access contract.
//
// Get returns apperr.ErrNotFound for an unknown id.
type Repository interface {
	List(context context.Context) ([]Mpa, error)
	Get(context context.Context, id int64) (*Mpa, error)
}
