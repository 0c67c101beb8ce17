// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aeroSapphire/greprep/ent/drillevent"
)

// DrillEventCreate is the builder for creating a DrillEvent entity.
type DrillEventCreate struct {
	config
	mutation *DrillEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *DrillEventCreate) SetSequence(v int64) *DrillEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DrillEventCreate) SetTimestamp(v time.Time) *DrillEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DrillEventCreate) SetNillableTimestamp(v *time.Time) *DrillEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetClusterID sets the "cluster_id" field.
func (_c *DrillEventCreate) SetClusterID(v string) *DrillEventCreate {
	_c.mutation.SetClusterID(v)
	return _c
}

// SetDrillID sets the "drill_id" field.
func (_c *DrillEventCreate) SetDrillID(v string) *DrillEventCreate {
	_c.mutation.SetDrillID(v)
	return _c
}

// SetDrillType sets the "drill_type" field.
func (_c *DrillEventCreate) SetDrillType(v string) *DrillEventCreate {
	_c.mutation.SetDrillType(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *DrillEventCreate) SetCorrect(v bool) *DrillEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetWords sets the "words" field.
func (_c *DrillEventCreate) SetWords(v []string) *DrillEventCreate {
	_c.mutation.SetWords(v)
	return _c
}

// Mutation returns the DrillEventMutation object of the builder.
func (_c *DrillEventCreate) Mutation() *DrillEventMutation {
	return _c.mutation
}

// Save creates the DrillEvent in the database.
func (_c *DrillEventCreate) Save(ctx context.Context) (*DrillEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DrillEventCreate) SaveX(ctx context.Context) *DrillEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrillEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrillEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DrillEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := drillevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DrillEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "DrillEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "DrillEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ClusterID(); !ok {
		return &ValidationError{Name: "cluster_id", err: errors.New(`ent: missing required field "DrillEvent.cluster_id"`)}
	}
	if v, ok := _c.mutation.ClusterID(); ok {
		if err := drillevent.ClusterIDValidator(v); err != nil {
			return &ValidationError{Name: "cluster_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.cluster_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DrillID(); !ok {
		return &ValidationError{Name: "drill_id", err: errors.New(`ent: missing required field "DrillEvent.drill_id"`)}
	}
	if v, ok := _c.mutation.DrillID(); ok {
		if err := drillevent.DrillIDValidator(v); err != nil {
			return &ValidationError{Name: "drill_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.drill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DrillType(); !ok {
		return &ValidationError{Name: "drill_type", err: errors.New(`ent: missing required field "DrillEvent.drill_type"`)}
	}
	if v, ok := _c.mutation.DrillType(); ok {
		if err := drillevent.DrillTypeValidator(v); err != nil {
			return &ValidationError{Name: "drill_type", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.drill_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "DrillEvent.correct"`)}
	}
	return nil
}

func (_c *DrillEventCreate) sqlSave(ctx context.Context) (*DrillEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DrillEventCreate) createSpec() (*DrillEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &DrillEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(drillevent.Table, sqlgraph.NewFieldSpec(drillevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(drillevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(drillevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ClusterID(); ok {
		_spec.SetField(drillevent.FieldClusterID, field.TypeString, value)
		_node.ClusterID = value
	}
	if value, ok := _c.mutation.DrillID(); ok {
		_spec.SetField(drillevent.FieldDrillID, field.TypeString, value)
		_node.DrillID = value
	}
	if value, ok := _c.mutation.DrillType(); ok {
		_spec.SetField(drillevent.FieldDrillType, field.TypeString, value)
		_node.DrillType = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(drillevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Words(); ok {
		_spec.SetField(drillevent.FieldWords, field.TypeJSON, value)
		_node.Words = value
	}
	return _node, _spec
}

// DrillEventCreateBulk is the builder for creating many DrillEvent entities in bulk.
type DrillEventCreateBulk struct {
	config
	err      error
	builders []*DrillEventCreate
}

// Save creates the DrillEvent entities in the database.
func (_c *DrillEventCreateBulk) Save(ctx context.Context) ([]*DrillEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DrillEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DrillEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DrillEventCreateBulk) SaveX(ctx context.Context) []*DrillEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrillEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrillEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
