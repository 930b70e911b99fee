package record

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/oid/internal/cmd/base"
)

const testConfig = `
kind "user" {
  prefix  = "USR"
  aliases = ["user", "users"]
}
`

func newCommand(t *testing.T) (*Command, *cli.MockUi) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "oid.hcl", []byte(testConfig), 0o644))

	ui := cli.NewMockUi()
	return &Command{Command: &base.Command{
		Log: hclog.NewNullLogger(),
		UI:  ui,
		FS:  fs,
	}}, ui
}

func TestRecordCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantOutput string
		wantError  string
	}{
		{
			name:       "table name is the prefix",
			args:       []string{"-table", "user", "-id", "b3cfdafa-3fec-41e2-82bf-ff881131abf1"},
			wantOutput: "user-MF7TLUHVTH0U50LVVU412CDBU4\n",
		},
		{
			name:       "configured alias",
			args:       []string{"-config", "oid.hcl", "-table", "users", "-id", "b3cfdafa-3fec-41e2-82bf-ff881131abf1"},
			wantOutput: "USR-MF7TLUHVTH0U50LVVU412CDBU4\n",
		},
		{
			name:       "document with base32 id",
			args:       []string{"-config", "oid.hcl", "-doc", `{"tb":"user","id":"MF7TLUHVTH0U50LVVU412CDBU4"}`},
			wantOutput: "USR-MF7TLUHVTH0U50LVVU412CDBU4\n",
		},
		{
			name:      "unknown table",
			args:      []string{"-config", "oid.hcl", "-table", "orders", "-id", "b3cfdafa-3fec-41e2-82bf-ff881131abf1"},
			wantCode:  1,
			wantError: "unknown kind",
		},
		{
			name:      "table is not a valid prefix",
			args:      []string{"-table", "user_accounts", "-id", "b3cfdafa-3fec-41e2-82bf-ff881131abf1"},
			wantCode:  1,
			wantError: "oid: invalid prefix",
		},
		{
			name:      "bad document",
			args:      []string{"-doc", `{"tb":`},
			wantCode:  1,
			wantError: "error parsing -doc",
		},
		{
			name:      "doc and table",
			args:      []string{"-doc", `{}`, "-table", "user"},
			wantCode:  1,
			wantError: "-doc cannot be combined",
		},
		{
			name:      "missing id",
			args:      []string{"-table", "user"},
			wantCode:  1,
			wantError: "-table and -id, or -doc, are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ui := newCommand(t)
			assert.Equal(t, tt.wantCode, c.Run(tt.args), ui.ErrorWriter.String())
			assert.Equal(t, tt.wantOutput, ui.OutputWriter.String())
			assert.Contains(t, ui.ErrorWriter.String(), tt.wantError)
		})
	}
}

func TestRecordCommand_ToDoc(t *testing.T) {
	c, ui := newCommand(t)
	code := c.Run([]string{"-to-doc", "USR-MF7TLUHVTH0U50LVVU412CDBU4", "bad"})
	assert.Equal(t, 1, code)
	assert.JSONEq(t, `{"tb":"USR","id":"b3cfdafa-3fec-41e2-82bf-ff881131abf1"}`, ui.OutputWriter.String())
	assert.Contains(t, ui.ErrorWriter.String(), `error parsing "bad"`)
}
