package glossaryhandlers

import (
	"context"

	glossaryservice "github.com/Black-And-White-Club/doppelkopf/app/modules/glossary/application"
	"github.com/google/uuid"
)

// ------------------------
// Fake Glossary Service
// ------------------------

type FakeGlossaryService struct {
	trace []string

	ListTermsFunc       func(ctx context.Context) ([]glossaryservice.TermInfo, error)
	FindTermByValueFunc func(ctx context.Context, value string) (*glossaryservice.TermInfo, error)
	AddTermFunc         func(ctx context.Context, value string) (*glossaryservice.TermInfo, error)
	DeleteTermByIDFunc  func(ctx context.Context, id uuid.UUID) (bool, error)
}

func NewFakeGlossaryService() *FakeGlossaryService {
	return &FakeGlossaryService{trace: []string{}}
}

func (f *FakeGlossaryService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeGlossaryService) ListTerms(ctx context.Context) ([]glossaryservice.TermInfo, error) {
	f.record("ListTerms")
	if f.ListTermsFunc != nil {
		return f.ListTermsFunc(ctx)
	}
	return []glossaryservice.TermInfo{}, nil
}

func (f *FakeGlossaryService) FindTermByValue(ctx context.Context, value string) (*glossaryservice.TermInfo, error) {
	f.record("FindTermByValue")
	if f.FindTermByValueFunc != nil {
		return f.FindTermByValueFunc(ctx, value)
	}
	return nil, glossaryservice.ErrTermNotFound
}

func (f *FakeGlossaryService) AddTerm(ctx context.Context, value string) (*glossaryservice.TermInfo, error) {
	f.record("AddTerm")
	if f.AddTermFunc != nil {
		return f.AddTermFunc(ctx, value)
	}
	return nil, nil
}

func (f *FakeGlossaryService) DeleteTermByID(ctx context.Context, id uuid.UUID) (bool, error) {
	f.record("DeleteTermByID")
	if f.DeleteTermByIDFunc != nil {
		return f.DeleteTermByIDFunc(ctx, id)
	}
	return false, nil
}

func (f *FakeGlossaryService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ glossaryservice.Service = (*FakeGlossaryService)(nil)
