package repository

import "context"

// Transactor runs a function inside one atomic store transaction. The
// returned context must be passed to every repository call that should
// join the transaction; returning an error rolls everything back.
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
