package service

import "github.com/lshigami/Gabarito/internal/repository"

// Actor is the account on whose behalf an operation runs.
type Actor struct {
	AccountID uint
	Admin     bool
}

func (a Actor) scope() repository.Scope {
	return repository.Scope{AccountID: a.AccountID, All: a.Admin}
}
