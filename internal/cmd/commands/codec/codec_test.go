package codec

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/hashicorp-forge/oid/internal/cmd/base"
)

func newBase() (*base.Command, *cli.MockUi) {
	ui := cli.NewMockUi()
	return &base.Command{
		Log: hclog.NewNullLogger(),
		UI:  ui,
		FS:  afero.NewMemMapFs(),
	}, ui
}

func TestEncodeCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantOutput string
		wantError  string
	}{
		{
			name:       "values",
			args:       []string{"b3cfdafa-3fec-41e2-82bf-ff881131abf1", "2428f867-7fbb-49ae-8f2d-da4196d1e636"},
			wantOutput: "MF7TLUHVTH0U50LVVU412CDBU4\n4GKFGPRVND4QT3PDR90PDKF66O\n",
		},
		{
			name:       "with prefix",
			args:       []string{"-prefix", "EXA", "2428f867-7fbb-49ae-8f2d-da4196d1e636"},
			wantOutput: "EXA-4GKFGPRVND4QT3PDR90PDKF66O\n",
		},
		{
			name:       "invalid uuid",
			args:       []string{"nope", "00000000-0000-0000-0000-000000000000"},
			wantCode:   1,
			wantOutput: "00000000000000000000000000\n",
			wantError:  `error parsing UUID "nope"`,
		},
		{
			name:      "invalid prefix",
			args:      []string{"-prefix", "E-A", "2428f867-7fbb-49ae-8f2d-da4196d1e636"},
			wantCode:  1,
			wantError: `invalid prefix "E-A"`,
		},
		{
			name:      "no arguments",
			wantCode:  1,
			wantError: "at least one UUID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ui := newBase()
			c := &EncodeCommand{Command: b}
			assert.Equal(t, tt.wantCode, c.Run(tt.args))
			assert.Equal(t, tt.wantOutput, ui.OutputWriter.String())
			assert.Contains(t, ui.ErrorWriter.String(), tt.wantError)
		})
	}
}

func TestDecodeCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantOutput string
		wantError  string
	}{
		{
			name:       "values and identifiers",
			args:       []string{"MF7TLUHVTH0U50LVVU412CDBU4", "EXA-4GKFGPRVND4QT3PDR90PDKF66O"},
			wantOutput: "b3cfdafa-3fec-41e2-82bf-ff881131abf1\n2428f867-7fbb-49ae-8f2d-da4196d1e636\n",
		},
		{
			name:      "lowercase is not base32hex",
			args:      []string{"mf7tluhvth0u50lvvu412cdbu4"},
			wantCode:  1,
			wantError: "oid: base32hex decode",
		},
		{
			name:      "short value",
			args:      []string{"000000000000000000000000"},
			wantCode:  1,
			wantError: "oid: invalid UUID",
		},
		{
			name:      "empty prefix after end of options",
			args:      []string{"--", "-4GKFGPRVND4QT3PDR90PDKF66O"},
			wantCode:  1,
			wantError: "oid: missing prefix",
		},
		{
			name:      "leading separator read as a flag",
			args:      []string{"-4GKFGPRVND4QT3PDR90PDKF66O"},
			wantCode:  1,
			wantError: "error parsing flags",
		},
		{
			name:      "no arguments",
			wantCode:  1,
			wantError: "at least one value is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ui := newBase()
			c := &DecodeCommand{Command: b}
			assert.Equal(t, tt.wantCode, c.Run(tt.args))
			assert.Equal(t, tt.wantOutput, ui.OutputWriter.String())
			assert.Contains(t, ui.ErrorWriter.String(), tt.wantError)
		})
	}
}

func TestHelp_EndOfOptions(t *testing.T) {
	b, _ := newBase()
	assert.Contains(t, (&EncodeCommand{Command: b}).Help(), `after "--"`)
	assert.Contains(t, (&DecodeCommand{Command: b}).Help(), "oid decode [--] <value>...")
}
