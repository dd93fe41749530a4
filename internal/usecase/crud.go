package usecase

import (
	"context"
	"fmt"

	"tour-booking/internal/data/query"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
)

// Store is the persistence surface the generic CRUD operations run against.
// Every entity repository satisfies it.
type Store[E any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*E, error)
	FindAll(ctx context.Context, opts *query.Options) ([]*E, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, e *E) error
	Update(ctx context.Context, e *E) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ListResult pairs a page of entities with its pagination descriptor.
type ListResult[E any] struct {
	Items      []*E
	Pagination query.Pagination
}

// Crud implements the shared list/get/create/update/delete semantics once.
// afterWrite runs after a successful create or update, afterDelete after a
// successful delete; both receive the affected entity.
type Crud[E any] struct {
	store       Store[E]
	notFoundMsg string
	afterWrite  func(ctx context.Context, e *E) error
	afterDelete func(ctx context.Context, e *E) error
}

func NewCrud[E any](store Store[E], notFoundMsg string) *Crud[E] {
	return &Crud[E]{store: store, notFoundMsg: notFoundMsg}
}

func (c *Crud[E]) WithAfterWrite(hook func(ctx context.Context, e *E) error) *Crud[E] {
	c.afterWrite = hook
	return c
}

func (c *Crud[E]) WithAfterDelete(hook func(ctx context.Context, e *E) error) *Crud[E] {
	c.afterDelete = hook
	return c
}

// GetAll lists a page of entities. The page count is computed over the whole
// collection, not the filtered subset, so filtered results can report fewer
// pages of actual data than the descriptor promises.
func (c *Crud[E]) GetAll(ctx context.Context, opts *query.Options) (*ListResult[E], error) {
	items, err := c.store.FindAll(ctx, opts)
	if err != nil {
		return nil, err
	}

	total, err := c.store.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &ListResult[E]{
		Items:      items,
		Pagination: query.Paginate(opts.Page, opts.Limit, total),
	}, nil
}

func (c *Crud[E]) GetOne(ctx context.Context, id uuid.UUID) (*E, error) {
	item, err := c.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.NewNotFound(fmt.Sprintf("%s with id: %s", c.notFoundMsg, id.String()))
	}
	return item, nil
}

func (c *Crud[E]) CreateOne(ctx context.Context, e *E) error {
	if err := c.store.Create(ctx, e); err != nil {
		return err
	}
	if c.afterWrite != nil {
		return c.afterWrite(ctx, e)
	}
	return nil
}

func (c *Crud[E]) UpdateOne(ctx context.Context, e *E) error {
	if err := c.store.Update(ctx, e); err != nil {
		return err
	}
	if c.afterWrite != nil {
		return c.afterWrite(ctx, e)
	}
	return nil
}

func (c *Crud[E]) DeleteOne(ctx context.Context, id uuid.UUID) error {
	item, err := c.GetOne(ctx, id)
	if err != nil {
		return err
	}

	if err := c.store.Delete(ctx, id); err != nil {
		return err
	}
	if c.afterDelete != nil {
		return c.afterDelete(ctx, item)
	}
	return nil
}
