package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hashicorp-forge/oid/pkg/oid"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(ModelsToAutoMigrate()...))
	return db
}

func TestIssuedID_Create(t *testing.T) {
	db := setupTestDB(t)

	t.Run("stores canonical text", func(t *testing.T) {
		id := oid.MustParseDynamic("USR-MF7TLUHVTH0U50LVVU412CDBU4")
		issued := &IssuedID{OID: id, Kind: "user", UUIDVersion: 4, Note: "fixture"}
		require.NoError(t, issued.Create(db))
		assert.NotZero(t, issued.ID)

		var text string
		require.NoError(t, db.Raw("SELECT oid FROM issued_ids WHERE id = ?", issued.ID).Scan(&text).Error)
		assert.Equal(t, "USR-MF7TLUHVTH0U50LVVU412CDBU4", text)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		id := oid.MustParseDynamic("ORD-MF7TLUHVTH0U50LVVU412CDBU4")
		require.NoError(t, (&IssuedID{OID: id, UUIDVersion: 4}).Create(db))
		assert.Error(t, (&IssuedID{OID: id, UUIDVersion: 4}).Create(db))
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name   string
			issued IssuedID
			want   string
		}{
			{
				name:   "zero identifier",
				issued: IssuedID{UUIDVersion: 4},
				want:   "cannot be blank",
			},
			{
				name:   "missing version",
				issued: IssuedID{OID: oid.MustParseDynamic("TST-0OQPKOAADLRUJ000J7U2UGNS2G")},
				want:   "UUIDVersion: cannot be blank",
			},
			{
				name:   "unknown version",
				issued: IssuedID{OID: oid.MustParseDynamic("TST-0OQPKOAADLRUJ000J7U2UGNS2G"), UUIDVersion: 1},
				want:   "UUIDVersion: must be a valid value",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.issued.Create(db)
				require.Error(t, err)
				assert.Contains(t, err.Error(), "validation error")
				assert.Contains(t, err.Error(), tt.want)
			})
		}
	})
}

func TestIssuedID_FirstByOID(t *testing.T) {
	db := setupTestDB(t)

	id := oid.MustParseDynamic("TST-0OQPKOAADLRUJ000J7U2UGNS2G")
	require.NoError(t, (&IssuedID{OID: id, Kind: "test", UUIDVersion: 7}).Create(db))

	var got IssuedID
	require.NoError(t, got.FirstByOID(db, id))
	assert.Equal(t, id, got.OID)
	assert.Equal(t, "test", got.Kind)
	assert.Equal(t, 7, got.UUIDVersion)

	var missing IssuedID
	err := missing.FirstByOID(db, oid.MustParseDynamic("tst-0OQPKOAADLRUJ000J7U2UGNS2G"))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.Error(t, missing.FirstByOID(db, oid.DynamicID{}))
}

func TestFindIssuedIDs(t *testing.T) {
	db := setupTestDB(t)

	var issued []oid.DynamicID
	for i := 0; i < 5; i++ {
		kind := "user"
		prefix := "USR"
		if i%2 == 1 {
			kind, prefix = "order", "ORD"
		}
		id, err := oid.NewDynamicV7(prefix)
		require.NoError(t, err)
		require.NoError(t, (&IssuedID{OID: id, Kind: kind, UUIDVersion: 7}).Create(db))
		issued = append(issued, id)
	}

	tests := []struct {
		name  string
		kind  string
		limit int
		want  []oid.DynamicID
	}{
		{name: "all", want: []oid.DynamicID{issued[4], issued[3], issued[2], issued[1], issued[0]}},
		{name: "limit", limit: 2, want: []oid.DynamicID{issued[4], issued[3]}},
		{name: "by kind", kind: "order", want: []oid.DynamicID{issued[3], issued[1]}},
		{name: "unknown kind", kind: "invoice", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindIssuedIDs(db, tt.kind, tt.limit)
			require.NoError(t, err)

			var ids []oid.DynamicID
			for _, g := range got {
				ids = append(ids, g.OID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
