// Code generated by ent, DO NOT EDIT.

package drillevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the drillevent type in the database.
	Label = "drill_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldClusterID holds the string denoting the cluster_id field in the database.
	FieldClusterID = "cluster_id"
	// FieldDrillID holds the string denoting the drill_id field in the database.
	FieldDrillID = "drill_id"
	// FieldDrillType holds the string denoting the drill_type field in the database.
	FieldDrillType = "drill_type"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldWords holds the string denoting the words field in the database.
	FieldWords = "words"
	// Table holds the table name of the drillevent in the database.
	Table = "drill_events"
)

// Columns holds all SQL columns for drillevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldClusterID,
	FieldDrillID,
	FieldDrillType,
	FieldCorrect,
	FieldWords,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// ClusterIDValidator is a validator for the "cluster_id" field. It is called by the builders before save.
	ClusterIDValidator func(string) error
	// DrillIDValidator is a validator for the "drill_id" field. It is called by the builders before save.
	DrillIDValidator func(string) error
	// DrillTypeValidator is a validator for the "drill_type" field. It is called by the builders before save.
	DrillTypeValidator func(string) error
)

// OrderOption defines the ordering options for the DrillEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByClusterID orders the results by the cluster_id field.
func ByClusterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClusterID, opts...).ToFunc()
}

// ByDrillID orders the results by the drill_id field.
func ByDrillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrillID, opts...).ToFunc()
}

// ByDrillType orders the results by the drill_type field.
func ByDrillType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrillType, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}
