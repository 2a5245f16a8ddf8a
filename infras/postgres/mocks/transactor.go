package mocks

import (
	"context"

	"grandplaza/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type transactorImpl struct {
}

// WithTransaction implements postgres.Transactor by running fn with a nil transaction.
// Repository mocks ignore the tx argument.
func (t *transactorImpl) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTransactor() postgres.Transactor {
	return &transactorImpl{}
}
