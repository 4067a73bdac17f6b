package glossary

import (
	"context"
	"sync"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

var _ authorizer = &authorizerMock{}

type authorizerMock struct {
	CanManageChildrenFunc func(ctx context.Context, actor domain.Actor, parent *domain.Urn) (bool, error)

	calls struct {
		CanManageChildren []struct {
			Ctx    context.Context
			Actor  domain.Actor
			Parent *domain.Urn
		}
	}
	lockCanManageChildren sync.RWMutex
}

func (mock *authorizerMock) CanManageChildren(ctx context.Context, actor domain.Actor, parent *domain.Urn) (bool, error) {
	if mock.CanManageChildrenFunc == nil {
		panic("authorizerMock.CanManageChildrenFunc: method is nil but authorizer.CanManageChildren was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Actor  domain.Actor
		Parent *domain.Urn
	}{Ctx: ctx, Actor: actor, Parent: parent}
	mock.lockCanManageChildren.Lock()
	mock.calls.CanManageChildren = append(mock.calls.CanManageChildren, callInfo)
	mock.lockCanManageChildren.Unlock()
	return mock.CanManageChildrenFunc(ctx, actor, parent)
}

func (mock *authorizerMock) CanManageChildrenCalls() []struct {
	Ctx    context.Context
	Actor  domain.Actor
	Parent *domain.Urn
} {
	mock.lockCanManageChildren.RLock()
	calls := mock.calls.CanManageChildren
	mock.lockCanManageChildren.RUnlock()
	return calls
}
