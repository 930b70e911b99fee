package oid_test

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const markersSource = `package check

import "github.com/hashicorp-forge/oid/pkg/oid"

type user struct{}

func (user) Prefix() string { return "USR" }

type order struct{}

func (order) Prefix() string { return "USR" }

var (
	a = oid.New[user]()
	b = oid.New[order]()
)
`

// typeCheck type-checks markersSource followed by body and returns every
// error reported by the checker.
func typeCheck(t *testing.T, body string) []string {
	t.Helper()

	filename, err := filepath.Abs("check_markers.go")
	require.NoError(t, err)

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, markersSource+body, 0)
	require.NoError(t, err)

	var errs []string
	conf := types.Config{
		Importer: importer.ForCompiler(fset, "source", nil),
		Error:    func(err error) { errs = append(errs, err.Error()) },
	}
	_, _ = conf.Check("check", fset, []*ast.File{f}, nil)
	return errs
}

func TestID_MarkersDoNotMix(t *testing.T) {
	if testing.Short() {
		t.Skip("type-checks the package from source")
	}

	t.Run("same marker compiles", func(t *testing.T) {
		errs := typeCheck(t, `
var _ = a == oid.New[user]()
var _ oid.ID[order] = b
`)
		assert.Empty(t, errs)
	})

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "comparison", body: "var _ = a == b\n", want: "mismatched types"},
		{name: "assignment", body: "var _ oid.ID[order] = a\n", want: "cannot use a"},
		{name: "conversion", body: "var _ = oid.ID[order](a)\n", want: "cannot convert a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := typeCheck(t, tt.body)
			require.Len(t, errs, 1, "errors: %v", errs)
			assert.Contains(t, errs[0], tt.want)
		})
	}
}
