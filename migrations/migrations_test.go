package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_EveryUpHasDown(t *testing.T) {
	names, err := fs.Glob(FS, "*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, up := range names {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		_, err := fs.Stat(FS, down)
		assert.NoError(t, err, "missing %s", down)
	}
}

func TestFS_SchemaGuardsFulfillment(t *testing.T) {
	b, err := FS.ReadFile("000001_init.up.sql")
	require.NoError(t, err)
	schema := string(b)

	// one order per payment, one item per unit position
	assert.Contains(t, schema, "UNIQUE KEY uq_order_payment_intent (payment_intent_id)")
	assert.Contains(t, schema, "UNIQUE KEY uq_order_item_position (order_id, position)")
	assert.Contains(t, schema, "UNIQUE KEY uq_order_item_key (digital_key_id)")
}
