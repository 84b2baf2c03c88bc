package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Placeholders(t *testing.T) {
	pg := MustNew(DialectPostgres)
	query, args, err := pg.Select("id").From("slots").Where(squirrel.Eq{"merchant_id": 7, "slot_date": "2025-10-15"}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM slots WHERE merchant_id = $1 AND slot_date = $2", query)
	assert.Equal(t, []interface{}{7, "2025-10-15"}, args)

	lite := MustNew(DialectSQLite)
	query, _, err = lite.Update("slots").Set("is_booked", true).Where(squirrel.Eq{"id": 1}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE slots SET is_booked = ? WHERE id = ?", query)
}

func TestNew_UnknownDialect(t *testing.T) {
	_, err := New("oracle")
	assert.Error(t, err)
}
