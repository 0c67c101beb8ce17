// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/aeroSapphire/greprep/ent/drillevent"
	"github.com/aeroSapphire/greprep/ent/predicate"
)

// DrillEventUpdate is the builder for updating DrillEvent entities.
type DrillEventUpdate struct {
	config
	hooks    []Hook
	mutation *DrillEventMutation
}

// Where appends a list predicates to the DrillEventUpdate builder.
func (_u *DrillEventUpdate) Where(ps ...predicate.DrillEvent) *DrillEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClusterID sets the "cluster_id" field.
func (_u *DrillEventUpdate) SetClusterID(v string) *DrillEventUpdate {
	_u.mutation.SetClusterID(v)
	return _u
}

// SetNillableClusterID sets the "cluster_id" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableClusterID(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetClusterID(*v)
	}
	return _u
}

// SetDrillID sets the "drill_id" field.
func (_u *DrillEventUpdate) SetDrillID(v string) *DrillEventUpdate {
	_u.mutation.SetDrillID(v)
	return _u
}

// SetNillableDrillID sets the "drill_id" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableDrillID(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetDrillID(*v)
	}
	return _u
}

// SetDrillType sets the "drill_type" field.
func (_u *DrillEventUpdate) SetDrillType(v string) *DrillEventUpdate {
	_u.mutation.SetDrillType(v)
	return _u
}

// SetNillableDrillType sets the "drill_type" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableDrillType(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetDrillType(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *DrillEventUpdate) SetCorrect(v bool) *DrillEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableCorrect(v *bool) *DrillEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetWords sets the "words" field.
func (_u *DrillEventUpdate) SetWords(v []string) *DrillEventUpdate {
	_u.mutation.SetWords(v)
	return _u
}

// AppendWords appends value to the "words" field.
func (_u *DrillEventUpdate) AppendWords(v []string) *DrillEventUpdate {
	_u.mutation.AppendWords(v)
	return _u
}

// ClearWords clears the value of the "words" field.
func (_u *DrillEventUpdate) ClearWords() *DrillEventUpdate {
	_u.mutation.ClearWords()
	return _u
}

// Mutation returns the DrillEventMutation object of the builder.
func (_u *DrillEventUpdate) Mutation() *DrillEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DrillEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DrillEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillEventUpdate) check() error {
	if v, ok := _u.mutation.ClusterID(); ok {
		if err := drillevent.ClusterIDValidator(v); err != nil {
			return &ValidationError{Name: "cluster_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.cluster_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DrillID(); ok {
		if err := drillevent.DrillIDValidator(v); err != nil {
			return &ValidationError{Name: "drill_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.drill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DrillType(); ok {
		if err := drillevent.DrillTypeValidator(v); err != nil {
			return &ValidationError{Name: "drill_type", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.drill_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drillevent.Table, drillevent.Columns, sqlgraph.NewFieldSpec(drillevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClusterID(); ok {
		_spec.SetField(drillevent.FieldClusterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DrillID(); ok {
		_spec.SetField(drillevent.FieldDrillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DrillType(); ok {
		_spec.SetField(drillevent.FieldDrillType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(drillevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Words(); ok {
		_spec.SetField(drillevent.FieldWords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, drillevent.FieldWords, value)
		})
	}
	if _u.mutation.WordsCleared() {
		_spec.ClearField(drillevent.FieldWords, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drillevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DrillEventUpdateOne is the builder for updating a single DrillEvent entity.
type DrillEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DrillEventMutation
}

// SetClusterID sets the "cluster_id" field.
func (_u *DrillEventUpdateOne) SetClusterID(v string) *DrillEventUpdateOne {
	_u.mutation.SetClusterID(v)
	return _u
}

// SetNillableClusterID sets the "cluster_id" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableClusterID(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetClusterID(*v)
	}
	return _u
}

// SetDrillID sets the "drill_id" field.
func (_u *DrillEventUpdateOne) SetDrillID(v string) *DrillEventUpdateOne {
	_u.mutation.SetDrillID(v)
	return _u
}

// SetNillableDrillID sets the "drill_id" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableDrillID(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetDrillID(*v)
	}
	return _u
}

// SetDrillType sets the "drill_type" field.
func (_u *DrillEventUpdateOne) SetDrillType(v string) *DrillEventUpdateOne {
	_u.mutation.SetDrillType(v)
	return _u
}

// SetNillableDrillType sets the "drill_type" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableDrillType(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetDrillType(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *DrillEventUpdateOne) SetCorrect(v bool) *DrillEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableCorrect(v *bool) *DrillEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetWords sets the "words" field.
func (_u *DrillEventUpdateOne) SetWords(v []string) *DrillEventUpdateOne {
	_u.mutation.SetWords(v)
	return _u
}

// AppendWords appends value to the "words" field.
func (_u *DrillEventUpdateOne) AppendWords(v []string) *DrillEventUpdateOne {
	_u.mutation.AppendWords(v)
	return _u
}

// ClearWords clears the value of the "words" field.
func (_u *DrillEventUpdateOne) ClearWords() *DrillEventUpdateOne {
	_u.mutation.ClearWords()
	return _u
}

// Mutation returns the DrillEventMutation object of the builder.
func (_u *DrillEventUpdateOne) Mutation() *DrillEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DrillEventUpdate builder.
func (_u *DrillEventUpdateOne) Where(ps ...predicate.DrillEvent) *DrillEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DrillEventUpdateOne) Select(field string, fields ...string) *DrillEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DrillEvent entity.
func (_u *DrillEventUpdateOne) Save(ctx context.Context) (*DrillEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillEventUpdateOne) SaveX(ctx context.Context) *DrillEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DrillEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillEventUpdateOne) check() error {
	if v, ok := _u.mutation.ClusterID(); ok {
		if err := drillevent.ClusterIDValidator(v); err != nil {
			return &ValidationError{Name: "cluster_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.cluster_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DrillID(); ok {
		if err := drillevent.DrillIDValidator(v); err != nil {
			return &ValidationError{Name: "drill_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.drill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DrillType(); ok {
		if err := drillevent.DrillTypeValidator(v); err != nil {
			return &ValidationError{Name: "drill_type", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.drill_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillEventUpdateOne) sqlSave(ctx context.Context) (_node *DrillEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drillevent.Table, drillevent.Columns, sqlgraph.NewFieldSpec(drillevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DrillEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, drillevent.FieldID)
		for _, f := range fields {
			if !drillevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != drillevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClusterID(); ok {
		_spec.SetField(drillevent.FieldClusterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DrillID(); ok {
		_spec.SetField(drillevent.FieldDrillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DrillType(); ok {
		_spec.SetField(drillevent.FieldDrillType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(drillevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Words(); ok {
		_spec.SetField(drillevent.FieldWords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, drillevent.FieldWords, value)
		})
	}
	if _u.mutation.WordsCleared() {
		_spec.ClearField(drillevent.FieldWords, field.TypeJSON)
	}
	_node = &DrillEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drillevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
