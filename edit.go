// Copyright (c) 2026 The subtree Authors.
//
// SPDX-License-Identifier: MPL-2.0

package subtree

import (
	"fmt"
	"strings"
)

const (
	// EditAssoc is the edit action associated with the Assoc operation.
	EditAssoc EditAction = "assoc"
	// EditDelete is the edit action associated with the Delete operation.
	EditDelete EditAction = "delete"
	// EditMerge is the edit action associated with the Merge operation.
	EditMerge EditAction = "merge"
)

// EditAction is an action that can be performed by the edit engine.
type EditAction string

// String returns the EditAction as a string.
func (e EditAction) String() string {
	return string(e)
}

// EditEntry contains the action to perform as well as the path to
// perform it at and the value, if any, to be used.
type EditEntry struct {
	Action EditAction
	Path   *Path
	Value  *Value
}

func (e *EditEntry) evalAssoc() func(*Tree) (*Tree, error) {
	path, value := e.Path, e.Value
	return func(t *Tree) (*Tree, error) {
		return t.Assoc(path, value)
	}
}

func (e *EditEntry) evalDelete() func(*Tree) (*Tree, error) {
	path := e.Path
	return func(t *Tree) (*Tree, error) {
		return t.Delete(path)
	}
}

func (e *EditEntry) evalMerge() func(*Tree) (*Tree, error) {
	path, value := e.Path, e.Value
	return func(t *Tree) (*Tree, error) {
		merged := value
		if val, found := t.Find(path); found {
			merged = val.Merge(value)
		}
		return t.Assoc(path, merged)
	}
}

func (e *EditEntry) eval() (func(*Tree) (*Tree, error), error) {
	switch e.Action {
	case EditAssoc:
		return e.evalAssoc(), nil
	case EditDelete:
		return e.evalDelete(), nil
	case EditMerge:
		return e.evalMerge(), nil
	default:
		return nil, fmt.Errorf("unknown edit-action %v", e.Action)
	}
}

// String returns a string representation of the EditEntry.
func (e EditEntry) String() string {
	if e.Value == nil {
		return fmt.Sprintf("%v %v", e.Action, e.Path)
	}
	return fmt.Sprintf("%v %v %v", e.Action, e.Path, e.Value)
}

// EditOperation holds edit actions, allowing large change sets to be
// captured as a piece of data that can be evaluated as tree operations
// and applied to a tree.
type EditOperation struct {
	Actions []EditEntry
}

// EditOperationNew produces a new EditOperation from the provided
// entries. This allows one to declaratively build an EditOperation.
func EditOperationNew(entries ...EditEntry) *EditOperation {
	return &EditOperation{
		Actions: entries,
	}
}

// String returns a string representation of the EditOperation.
func (e *EditOperation) String() string {
	out := make([]string, 0, len(e.Actions))
	for _, action := range e.Actions {
		out = append(out, action.String())
	}
	return strings.Join(out, "; ")
}

func (e *EditOperation) eval() (func(*Tree) (*Tree, error), error) {
	actions := make([]func(*Tree) (*Tree, error), len(e.Actions))
	for i, action := range e.Actions {
		fn, err := action.eval()
		if err != nil {
			return nil, err
		}
		actions[i] = fn
	}
	return func(t *Tree) (*Tree, error) {
		for _, action := range actions {
			var err error
			t, err = action(t)
			if err != nil {
				return nil, err
			}
		}
		return t, nil
	}, nil
}

// Edit applies an EditOperation to the tree. The entries are applied in
// order; the first failing entry aborts the whole operation, returning
// its error and leaving the input tree untouched.
func (t *Tree) Edit(edit *EditOperation) (*Tree, error) {
	op, err := edit.eval()
	if err != nil {
		return nil, err
	}
	return op(t)
}

type editEntryOptions struct {
	value *Value
}

// EditEntryOption is a constructor for the optional parts of an EditEntry.
type EditEntryOption func(*editEntryOptions)

// EditEntryValue produces an EditEntryOption that populates the value
// field of an EditEntry.
func EditEntryValue(val interface{}) EditEntryOption {
	return func(o *editEntryOptions) {
		o.value = ValueNew(val)
	}
}

// EditEntryNew constructs a new EditEntry from the provided parameters.
// The last option wins if two options write the same field.
func EditEntryNew(action EditAction, path string, options ...EditEntryOption) EditEntry {
	var opts editEntryOptions
	for _, option := range options {
		option(&opts)
	}
	return EditEntry{
		Action: action,
		Path:   PathNew(path),
		Value:  opts.value,
	}
}
