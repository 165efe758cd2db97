package db

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// Every reference column in the models must be covered by a foreign key, so
// a dependent committed after a delete guard's count ran is still rejected
// at commit time.
func TestForeignKeysCoverEveryReferenceColumn(t *testing.T) {
	naming := schema.NamingStrategy{}
	uuidType := reflect.TypeOf(uuid.UUID{})

	tables := map[string]bool{}
	type ref struct{ table, column string }
	var refs []ref

	for _, model := range AllModels() {
		named, ok := model.(interface{ TableName() string })
		require.True(t, ok, "model %T has no table name", model)
		table := named.TableName()
		tables[table] = true

		modelType := reflect.TypeOf(model).Elem()
		for i := 0; i < modelType.NumField(); i++ {
			field := modelType.Field(i)
			if field.Type != uuidType || field.Name == "ID" {
				continue
			}
			refs = append(refs, ref{table: table, column: naming.ColumnName("", field.Name)})
		}
	}

	covered := map[ref]foreignKey{}
	for _, fk := range foreignKeys {
		covered[ref{table: fk.Table, column: fk.Column}] = fk
	}

	for _, r := range refs {
		fk, ok := covered[r]
		require.True(t, ok, "no foreign key for %s.%s", r.table, r.column)
		assert.True(t, tables[fk.RefTable], "foreign key %s.%s references unknown table %s", fk.Table, fk.Column, fk.RefTable)
	}
	assert.Len(t, foreignKeys, len(refs), "foreign keys not backed by a model column")
}

func TestForeignKeyDeleteBehavior(t *testing.T) {
	names := map[string]bool{}
	for _, fk := range foreignKeys {
		name := fmt.Sprintf("fk_%s_%s", fk.Table, fk.Column)
		assert.False(t, names[name], "duplicate constraint name %s", name)
		names[name] = true

		if fk.Table == "sale_item" && fk.Column == "sale_id" {
			// Sale items are owned by their sale.
			assert.Equal(t, "CASCADE", fk.OnDelete)
			continue
		}
		assert.Equal(t, "RESTRICT", fk.OnDelete, "%s.%s", fk.Table, fk.Column)
	}
}
