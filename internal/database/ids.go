package database

import (
	"reflect"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// registerIDCallback makes every insert assign a random uuid to a string
// primary key left empty by the caller.
func registerIDCallback(gdb *gorm.DB) error {
	return gdb.Callback().Create().Before("gorm:create").Register("app:assign_ids", assignIDs)
}

func assignIDs(tx *gorm.DB) {
	if tx.Statement.Schema == nil {
		return
	}
	field := tx.Statement.Schema.PrioritizedPrimaryField
	if field == nil || field.DataType != schema.String {
		return
	}

	rv := tx.Statement.ReflectValue
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			setID(tx, field, rv.Index(i))
		}
	case reflect.Struct:
		setID(tx, field, rv)
	}
}

func setID(tx *gorm.DB, field *schema.Field, rv reflect.Value) {
	if _, zero := field.ValueOf(tx.Statement.Context, rv); zero {
		if err := field.Set(tx.Statement.Context, rv, uuid.NewString()); err != nil {
			_ = tx.AddError(err)
		}
	}
}
