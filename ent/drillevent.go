// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aeroSapphire/greprep/ent/drillevent"
)

// DrillEvent is the model entity for the DrillEvent schema.
type DrillEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global sequence number, shared across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Word cluster the drill belongs to
	ClusterID string `json:"cluster_id,omitempty"`
	// Drill within the cluster
	DrillID string `json:"drill_id,omitempty"`
	// shade_distinction, intensity_ordering, ...
	DrillType string `json:"drill_type,omitempty"`
	// Whether the selection matched the answer key
	Correct bool `json:"correct,omitempty"`
	// Cluster words the drill exercised
	Words        []string `json:"words,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DrillEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case drillevent.FieldWords:
			values[i] = new([]byte)
		case drillevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case drillevent.FieldID, drillevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case drillevent.FieldClusterID, drillevent.FieldDrillID, drillevent.FieldDrillType:
			values[i] = new(sql.NullString)
		case drillevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DrillEvent fields.
func (_m *DrillEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case drillevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case drillevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case drillevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case drillevent.FieldClusterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cluster_id", values[i])
			} else if value.Valid {
				_m.ClusterID = value.String
			}
		case drillevent.FieldDrillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field drill_id", values[i])
			} else if value.Valid {
				_m.DrillID = value.String
			}
		case drillevent.FieldDrillType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field drill_type", values[i])
			} else if value.Valid {
				_m.DrillType = value.String
			}
		case drillevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case drillevent.FieldWords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field words", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Words); err != nil {
					return fmt.Errorf("unmarshal field words: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DrillEvent.
// This includes values selected through modifiers, order, etc.
func (_m *DrillEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DrillEvent.
// Note that you need to call DrillEvent.Unwrap() before calling this method if this DrillEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DrillEvent) Update() *DrillEventUpdateOne {
	return NewDrillEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DrillEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DrillEvent) Unwrap() *DrillEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DrillEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DrillEvent) String() string {
	var builder strings.Builder
	builder.WriteString("DrillEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("cluster_id=")
	builder.WriteString(_m.ClusterID)
	builder.WriteString(", ")
	builder.WriteString("drill_id=")
	builder.WriteString(_m.DrillID)
	builder.WriteString(", ")
	builder.WriteString("drill_type=")
	builder.WriteString(_m.DrillType)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("words=")
	builder.WriteString(fmt.Sprintf("%v", _m.Words))
	builder.WriteByte(')')
	return builder.String()
}

// DrillEvents is a parsable slice of DrillEvent.
type DrillEvents []*DrillEvent
