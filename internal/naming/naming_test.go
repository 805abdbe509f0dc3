package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/esplo/pikmin-aggregator/pkg/errors"
)

func TestForSource(t *testing.T) {
	testCases := []struct {
		name     string
		source   string
		assertFn func(t *testing.T, names Names, err error)
	}{
		{
			name:   "derives all table names",
			source: "bffx",
			assertFn: func(t *testing.T, names Names, err error) {
				require.NoError(t, err)
				assert.Equal(t, "trades_bffx", names.Source)
				assert.Equal(t, "ref_trades_bffx", names.Target)
				assert.Equal(t, "step1__trades_bffx", names.Index)
				assert.Equal(t, "tmp__step1__trades_bffx", names.WorkingIndex)
				assert.Equal(t, "step2__trades_bffx", names.Staging)
			},
		},
		{
			name:   "underscores and digits allowed",
			source: "bffx_v2",
			assertFn: func(t *testing.T, names Names, err error) {
				require.NoError(t, err)
				assert.Equal(t, "trades_bffx_v2", names.Source)
			},
		},
		{
			name:   "empty source rejected",
			source: "",
			assertFn: func(t *testing.T, _ Names, err error) {
				require.Error(t, err)
				code, ok := pkgerrors.CodeOf(err)
				require.True(t, ok)
				assert.Equal(t, pkgerrors.InvalidSourceError, code)
			},
		},
		{
			name:   "uppercase rejected",
			source: "Bffx",
			assertFn: func(t *testing.T, _ Names, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:   "leading digit rejected",
			source: "1bffx",
			assertFn: func(t *testing.T, _ Names, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:   "sql metacharacters rejected",
			source: "bffx; drop table trades_bffx",
			assertFn: func(t *testing.T, _ Names, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:   "overlong identifier rejected",
			source: strings.Repeat("a", maxSourceLen+1),
			assertFn: func(t *testing.T, _ Names, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			names, err := ForSource(tc.source)
			tc.assertFn(t, names, err)
		})
	}
}

func TestDumpFile(t *testing.T) {
	first := DumpFile("bffx")
	second := DumpFile("bffx")

	assert.Contains(t, first, "bffx")
	assert.NotEqual(t, first, second, "consecutive dump files must not collide")
}
