package forms

import (
	"context"
	"io"
)

// Node is one renderable unit produced by a Style. The core never inspects a
// node; it only composes them through the style's Group and FormFrame
// operations and hands the result back to the caller.
type Node interface {
	Render(ctx context.Context, w io.Writer) error
}

// NodeFunc adapts a function into a Node.
type NodeFunc func(ctx context.Context, w io.Writer) error

// Render invokes the function.
func (f NodeFunc) Render(ctx context.Context, w io.Writer) error {
	return f(ctx, w)
}

// Nodes is an ordered sequence of nodes. Rendering writes each node in
// insertion order; order is semantically significant.
type Nodes []Node

// Render writes every node in sequence.
func (n Nodes) Render(ctx context.Context, w io.Writer) error {
	for _, node := range n {
		if node == nil {
			continue
		}
		if err := node.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}
