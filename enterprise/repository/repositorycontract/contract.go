// Package repositorycontract holds the behavior suite that every repository
// adapter has to satisfy. The suite describes the repository role interfaces
// from the consumer's point of view, so it can verify any implementation:
//
//	testcase.RunSuite(t, repositorycontract.Contract[TestEntity, string](repositorycontract.Config[TestEntity, string]{
//		MakeSubject:  func(tb testing.TB) repositorycontract.Subject[TestEntity, string] { ... },
//		MakeEntity:   func(tb testing.TB) TestEntity { ... },
//		ChangeEntity: func(tb testing.TB, ptr *TestEntity) { ... },
//	}))
package repositorycontract

import (
	"context"
	"testing"

	"go.llib.dev/testcase"

	"go.llib.dev/exemplar/enterprise/repository"
)

// Subject combines the repository role interfaces that the contract exercises.
type Subject[ENT, ID any] interface {
	repository.Creator[ENT]
	repository.ByIDFinder[ENT, ID]
	repository.AllFinder[ENT]
	repository.Updater[ENT]
	repository.ByIDDeleter[ID]
	repository.AllDeleter
}

// Config parametrises the Contract for a concrete adapter.
type Config[ENT, ID any] struct {
	// MakeSubject constructs a fresh, empty repository for a test run.
	MakeSubject func(tb testing.TB) Subject[ENT, ID]
	// MakeEntity returns a new entity value without an identifier set.
	MakeEntity func(tb testing.TB) ENT
	// ChangeEntity mutates a non identifier field of the entity,
	// so the suite can observe the effect of an update.
	ChangeEntity func(tb testing.TB, ptr *ENT)
	// MakeContext returns the context used for the repository operations.
	//
	// default: context.Background
	MakeContext func(tb testing.TB) context.Context
}

// Contract returns the behavior suite of the repository role interfaces.
func Contract[ENT, ID any](c Config[ENT, ID]) testcase.Suite {
	s := testcase.NewSpec(nil)

	var (
		subject = testcase.Let(s, func(t *testcase.T) Subject[ENT, ID] {
			return c.MakeSubject(t)
		})
		ctxVar = testcase.Let(s, func(t *testcase.T) context.Context {
			if c.MakeContext != nil {
				return c.MakeContext(t)
			}
			return context.Background()
		})
	)

	create := func(t *testcase.T) *ENT {
		ent := c.MakeEntity(t)
		t.Must.NoError(subject.Get(t).Create(ctxVar.Get(t), &ent))
		return &ent
	}

	idOf := func(t *testcase.T, ent ENT) ID {
		id, ok := repository.LookupID[ID](ent)
		t.Must.True(ok)
		return id
	}

	listAll := func(t *testcase.T) []ENT {
		var got []ENT
		for ent, err := range subject.Get(t).FindAll(ctxVar.Get(t)) {
			t.Must.NoError(err)
			got = append(got, ent)
		}
		return got
	}

	s.Describe(`Create`, func(s *testcase.Spec) {
		s.Test(`it assigns an identifier to the new entity`, func(t *testcase.T) {
			ptr := create(t)
			t.Must.NotEmpty(idOf(t, *ptr))
		})

		s.Test(`the created entity can be retrieved by its identifier`, func(t *testcase.T) {
			ptr := create(t)
			got, found, err := subject.Get(t).FindByID(ctxVar.Get(t), idOf(t, *ptr))
			t.Must.NoError(err)
			t.Must.True(found)
			t.Must.Equal(*ptr, got)
		})

		s.Test(`it accepts an identifier provided ahead of creation`, func(t *testcase.T) {
			ptr := create(t)
			id := idOf(t, *ptr)
			t.Must.NoError(subject.Get(t).DeleteByID(ctxVar.Get(t), id))
			t.Must.NoError(subject.Get(t).Create(ctxVar.Get(t), ptr))
			t.Must.Equal(id, idOf(t, *ptr))
		})

		s.Test(`creating with an already taken identifier reports a conflict`, func(t *testcase.T) {
			ptr := create(t)
			dupe := *ptr
			t.Must.ErrorIs(repository.ErrAlreadyExists, subject.Get(t).Create(ctxVar.Get(t), &dupe))
		})
	})

	s.Describe(`FindByID`, func(s *testcase.Spec) {
		s.Test(`a missing entity is reported through the found flag, not as an error`, func(t *testcase.T) {
			ptr := create(t)
			id := idOf(t, *ptr)
			t.Must.NoError(subject.Get(t).DeleteByID(ctxVar.Get(t), id))
			_, found, err := subject.Get(t).FindByID(ctxVar.Get(t), id)
			t.Must.NoError(err)
			t.Must.False(found)
		})
	})

	s.Describe(`FindAll`, func(s *testcase.Spec) {
		s.Test(`an empty repository yields nothing`, func(t *testcase.T) {
			t.Must.Empty(listAll(t))
		})

		s.Test(`it yields exactly the stored entities`, func(t *testcase.T) {
			var expected []ENT
			t.Random.Repeat(3, 7, func() {
				expected = append(expected, *create(t))
			})
			t.Must.ContainExactly(expected, listAll(t))
		})

		s.Test(`iteration can be abandoned midway`, func(t *testcase.T) {
			t.Random.Repeat(3, 7, func() {
				create(t)
			})
			var total int
			for _, err := range subject.Get(t).FindAll(ctxVar.Get(t)) {
				t.Must.NoError(err)
				total++
				break
			}
			t.Must.Equal(1, total)
		})
	})

	s.Describe(`Update`, func(s *testcase.Spec) {
		s.Test(`the changed values are visible afterwards`, func(t *testcase.T) {
			ptr := create(t)
			c.ChangeEntity(t, ptr)
			t.Must.NoError(subject.Get(t).Update(ctxVar.Get(t), ptr))
			got, found, err := subject.Get(t).FindByID(ctxVar.Get(t), idOf(t, *ptr))
			t.Must.NoError(err)
			t.Must.True(found)
			t.Must.Equal(*ptr, got)
		})

		s.Test(`updating an absent entity reports not found`, func(t *testcase.T) {
			ptr := create(t)
			t.Must.NoError(subject.Get(t).DeleteByID(ctxVar.Get(t), idOf(t, *ptr)))
			t.Must.ErrorIs(repository.ErrNotFound, subject.Get(t).Update(ctxVar.Get(t), ptr))
		})

		s.Test(`updating without an identifier is rejected`, func(t *testcase.T) {
			ent := c.MakeEntity(t)
			t.Must.ErrorIs(repository.ErrMissingID, subject.Get(t).Update(ctxVar.Get(t), &ent))
		})
	})

	s.Describe(`DeleteByID`, func(s *testcase.Spec) {
		s.Test(`the deleted entity is no longer findable`, func(t *testcase.T) {
			ptr := create(t)
			id := idOf(t, *ptr)
			t.Must.NoError(subject.Get(t).DeleteByID(ctxVar.Get(t), id))
			_, found, err := subject.Get(t).FindByID(ctxVar.Get(t), id)
			t.Must.NoError(err)
			t.Must.False(found)
		})

		s.Test(`deleting an absent entity reports not found`, func(t *testcase.T) {
			ptr := create(t)
			id := idOf(t, *ptr)
			t.Must.NoError(subject.Get(t).DeleteByID(ctxVar.Get(t), id))
			t.Must.ErrorIs(repository.ErrNotFound, subject.Get(t).DeleteByID(ctxVar.Get(t), id))
		})
	})

	s.Describe(`DeleteAll`, func(s *testcase.Spec) {
		s.Test(`it leaves the repository empty`, func(t *testcase.T) {
			t.Random.Repeat(3, 7, func() {
				create(t)
			})
			t.Must.NoError(subject.Get(t).DeleteAll(ctxVar.Get(t)))
			t.Must.Empty(listAll(t))
		})
	})

	s.Describe(`context cancellation`, func(s *testcase.Spec) {
		cancelled := testcase.Let(s, func(t *testcase.T) context.Context {
			ctx, cancel := context.WithCancel(ctxVar.Get(t))
			cancel()
			return ctx
		})

		s.Test(`every operation propagates the context error`, func(t *testcase.T) {
			repo := subject.Get(t)
			ptr := create(t)
			id := idOf(t, *ptr)
			ctx := cancelled.Get(t)
			t.Must.ErrorIs(context.Canceled, repo.Create(ctx, ptr))
			_, _, err := repo.FindByID(ctx, id)
			t.Must.ErrorIs(context.Canceled, err)
			t.Must.ErrorIs(context.Canceled, repo.Update(ctx, ptr))
			t.Must.ErrorIs(context.Canceled, repo.DeleteByID(ctx, id))
			t.Must.ErrorIs(context.Canceled, repo.DeleteAll(ctx))
			var iterErr error
			for _, err := range repo.FindAll(ctx) {
				iterErr = err
			}
			t.Must.ErrorIs(context.Canceled, iterErr)
		})
	})

	return s.AsSuite("Repository")
}
