package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/oid/internal/cmd/base"
	"github.com/hashicorp-forge/oid/pkg/database"
	"github.com/hashicorp-forge/oid/pkg/models"
	"github.com/hashicorp-forge/oid/pkg/oid"
)

func setup(t *testing.T) (*Command, *cli.MockUi) {
	t.Helper()

	dbPath := filepath.ToSlash(filepath.Join(t.TempDir(), "oid.db"))
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "oid.hcl", []byte(`
database {
  path = "`+dbPath+`"
}
`), 0o644))

	db, err := database.Connect(context.Background(), database.Config{Path: dbPath}, nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	for _, e := range []struct{ id, kind, note string }{
		{"USR-MF7TLUHVTH0U50LVVU412CDBU4", "user", "first"},
		{"ORD-MF7TLUHVTH0U50LVVU412CDBU4", "order", ""},
		{"USR-4GKFGPRVND4QT3PDR90PDKF66O", "user", ""},
	} {
		issued := &models.IssuedID{OID: oid.MustParseDynamic(e.id), Kind: e.kind, UUIDVersion: 4, Note: e.note}
		require.NoError(t, issued.Create(db))
	}
	require.NoError(t, database.Close(db))

	ui := cli.NewMockUi()
	return &Command{Command: &base.Command{
		Log: hclog.NewNullLogger(),
		UI:  ui,
		FS:  fs,
	}}, ui
}

func TestHistoryCommand(t *testing.T) {
	t.Run("all entries newest first", func(t *testing.T) {
		c, ui := setup(t)
		require.Equal(t, 0, c.Run([]string{"-config", "oid.hcl"}), ui.ErrorWriter.String())

		out := ui.OutputWriter.String()
		assert.Regexp(t, `(?s)USR-4GKFGPRVND4QT3PDR90PDKF66O  user\n.*ORD-MF7TLUHVTH0U50LVVU412CDBU4  order\n.*USR-MF7TLUHVTH0U50LVVU412CDBU4  user  first\n$`, out)
	})

	t.Run("filtered by kind with limit", func(t *testing.T) {
		c, ui := setup(t)
		require.Equal(t, 0, c.Run([]string{"-config", "oid.hcl", "-kind", "user", "-limit", "1"}))

		out := ui.OutputWriter.String()
		assert.Contains(t, out, "USR-4GKFGPRVND4QT3PDR90PDKF66O")
		assert.NotContains(t, out, "MF7TLUHVTH0U50LVVU412CDBU4")
	})

	t.Run("nothing recorded", func(t *testing.T) {
		c, ui := setup(t)
		require.Equal(t, 0, c.Run([]string{"-config", "oid.hcl", "-kind", "invoice"}))
		assert.Equal(t, "No identifiers recorded\n", ui.OutputWriter.String())
	})

	t.Run("negative limit", func(t *testing.T) {
		c, ui := setup(t)
		assert.Equal(t, 1, c.Run([]string{"-config", "oid.hcl", "-limit", "-1"}))
		assert.Contains(t, ui.ErrorWriter.String(), "-limit must not be negative")
	})
}
