package main

import (
	"context"
	"fmt"

	mdsite "github.com/alnah/go-mdsite"
)

// PageConverter is the interface the batch needs from a converter.
type PageConverter interface {
	Convert(ctx context.Context, input mdsite.Input) (*mdsite.Page, error)
}

// Compile-time interface implementation check.
var _ PageConverter = (*mdsite.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (PageConverter, error)
	Release(PageConverter)
	Size() int
}

// poolAdapter adapts *mdsite.ConverterPool to Pool.
type poolAdapter struct {
	pool *mdsite.ConverterPool
}

var _ Pool = (*poolAdapter)(nil)

func (a *poolAdapter) Acquire() (PageConverter, error) {
	conv, err := a.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// Release panics on a converter the pool did not hand out: that is a
// programming error, not a runtime condition.
func (a *poolAdapter) Release(c PageConverter) {
	conv, ok := c.(*mdsite.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}
