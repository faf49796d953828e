package model

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm/schema"
)

// SyncTimeColumn is the primary-key column every row type carries.
// Successive versions of the same logical row differ only in sync_time.
const SyncTimeColumn = "sync_time"

// Row is a versioned record written by the harvester
type Row interface {
	TableName() string
	SetSyncTime(t time.Time)
}

// Rows lists one zero value of every row type, in the order the tables are
// created and filled
func Rows() []Row {
	return []Row{
		&SurveyReport{},
		&Annotation{},
		&ResourceMeasurement{},
		&DirectoryMeasurement{},
		&FileMeasurement{},
		&ProfileMeasure{},
		&RequestForAction{},
	}
}

type column struct {
	name       string
	primaryKey bool
	index      int
}

func columns(t reflect.Type) []column {
	var cols []column
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag, ok := f.Tag.Lookup("gorm")
		if !ok || !f.IsExported() {
			continue
		}
		settings := schema.ParseTagSetting(tag, ";")
		name := settings["COLUMN"]
		if name == "" {
			continue
		}
		_, pk := settings["PRIMARYKEY"]
		cols = append(cols, column{name: name, primaryKey: pk, index: i})
	}
	return cols
}

func fields(row Row, keep func(column) bool) map[string]any {
	v := reflect.Indirect(reflect.ValueOf(row))
	out := map[string]any{}
	for _, c := range columns(v.Type()) {
		if c.name == SyncTimeColumn || !keep(c) {
			continue
		}
		out[c.name] = v.Field(c.index).Interface()
	}
	return out
}

// Key returns the identifying primary-key columns of row, without sync_time
func Key(row Row) map[string]any {
	return fields(row, func(c column) bool { return c.primaryKey })
}

// ID renders the table and key of row as a single comparable string
func ID(row Row) string {
	key := Key(row)
	names := make([]string, 0, len(key))
	for name := range key {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(row.TableName())
	for _, name := range names {
		fmt.Fprintf(&sb, "|%s=%v", name, key[name])
	}
	return sb.String()
}

// Values returns every column of row except sync_time
func Values(row Row) map[string]any {
	return fields(row, func(column) bool { return true })
}

// Changed reports whether any column in fresh differs from the same column
// in stored. Columns present only in stored are ignored.
func Changed(stored, fresh map[string]any) bool {
	for name, value := range fresh {
		if !Equal(stored[name], value) {
			return true
		}
	}
	return false
}
