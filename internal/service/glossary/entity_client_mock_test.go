package glossary

import (
	"context"
	"sync"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

var _ entityClient = &entityClientMock{}

type entityClientMock struct {
	ExistsFunc         func(ctx context.Context, urn domain.Urn, auth domain.Authentication) (bool, error)
	IngestProposalFunc func(ctx context.Context, proposal domain.ChangeProposal, auth domain.Authentication, async bool) (domain.Urn, error)

	calls struct {
		Exists []struct {
			Ctx  context.Context
			Urn  domain.Urn
			Auth domain.Authentication
		}
		IngestProposal []struct {
			Ctx      context.Context
			Proposal domain.ChangeProposal
			Auth     domain.Authentication
			Async    bool
		}
	}
	lockExists         sync.RWMutex
	lockIngestProposal sync.RWMutex
}

func (mock *entityClientMock) Exists(ctx context.Context, urn domain.Urn, auth domain.Authentication) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("entityClientMock.ExistsFunc: method is nil but entityClient.Exists was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Urn  domain.Urn
		Auth domain.Authentication
	}{Ctx: ctx, Urn: urn, Auth: auth}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, urn, auth)
}

func (mock *entityClientMock) ExistsCalls() []struct {
	Ctx  context.Context
	Urn  domain.Urn
	Auth domain.Authentication
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *entityClientMock) IngestProposal(ctx context.Context, proposal domain.ChangeProposal, auth domain.Authentication, async bool) (domain.Urn, error) {
	if mock.IngestProposalFunc == nil {
		panic("entityClientMock.IngestProposalFunc: method is nil but entityClient.IngestProposal was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Proposal domain.ChangeProposal
		Auth     domain.Authentication
		Async    bool
	}{Ctx: ctx, Proposal: proposal, Auth: auth, Async: async}
	mock.lockIngestProposal.Lock()
	mock.calls.IngestProposal = append(mock.calls.IngestProposal, callInfo)
	mock.lockIngestProposal.Unlock()
	return mock.IngestProposalFunc(ctx, proposal, auth, async)
}

func (mock *entityClientMock) IngestProposalCalls() []struct {
	Ctx      context.Context
	Proposal domain.ChangeProposal
	Auth     domain.Authentication
	Async    bool
} {
	mock.lockIngestProposal.RLock()
	calls := mock.calls.IngestProposal
	mock.lockIngestProposal.RUnlock()
	return calls
}
