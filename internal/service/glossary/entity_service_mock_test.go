package glossary

import (
	"context"
	"sync"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

var _ entityService = &entityServiceMock{}

type entityServiceMock struct {
	ExistsFunc    func(ctx context.Context, urn domain.Urn) (bool, error)
	AddOwnersFunc func(ctx context.Context, entity domain.Urn, owners []domain.Owner, actor domain.Urn) error

	calls struct {
		Exists []struct {
			Ctx context.Context
			Urn domain.Urn
		}
		AddOwners []struct {
			Ctx    context.Context
			Entity domain.Urn
			Owners []domain.Owner
			Actor  domain.Urn
		}
	}
	lockExists    sync.RWMutex
	lockAddOwners sync.RWMutex
}

func (mock *entityServiceMock) Exists(ctx context.Context, urn domain.Urn) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("entityServiceMock.ExistsFunc: method is nil but entityService.Exists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Urn domain.Urn
	}{Ctx: ctx, Urn: urn}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, urn)
}

func (mock *entityServiceMock) ExistsCalls() []struct {
	Ctx context.Context
	Urn domain.Urn
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *entityServiceMock) AddOwners(ctx context.Context, entity domain.Urn, owners []domain.Owner, actor domain.Urn) error {
	if mock.AddOwnersFunc == nil {
		panic("entityServiceMock.AddOwnersFunc: method is nil but entityService.AddOwners was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Entity domain.Urn
		Owners []domain.Owner
		Actor  domain.Urn
	}{Ctx: ctx, Entity: entity, Owners: owners, Actor: actor}
	mock.lockAddOwners.Lock()
	mock.calls.AddOwners = append(mock.calls.AddOwners, callInfo)
	mock.lockAddOwners.Unlock()
	return mock.AddOwnersFunc(ctx, entity, owners, actor)
}

func (mock *entityServiceMock) AddOwnersCalls() []struct {
	Ctx    context.Context
	Entity domain.Urn
	Owners []domain.Owner
	Actor  domain.Urn
} {
	mock.lockAddOwners.RLock()
	calls := mock.calls.AddOwners
	mock.lockAddOwners.RUnlock()
	return calls
}
