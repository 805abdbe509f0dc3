// Package naming derives every table and file name used by the aggregation
// pipeline from a data-source identifier. It is the only place identifiers
// are produced, so repositories never build SQL names from raw input.
package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync/atomic"
	"time"

	pkgerrors "github.com/esplo/pikmin-aggregator/pkg/errors"
)

const (
	sourcePrefix  = "trades_"
	targetPrefix  = "ref_"
	indexPrefix   = "step1__"
	stagingPrefix = "step2__"
	workingPrefix = "tmp__"

	// Postgres identifiers are capped at 63 bytes; the longest derived name
	// adds len("tmp__step1__trades_") = 19 characters to the source id.
	maxSourceLen = 32
)

// sourcePattern restricts identifiers to a charset that is safe to splice
// into DDL, where placeholders cannot be used.
var sourcePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Names holds the full set of table names for one data source.
type Names struct {
	// Source is the raw execution table, e.g. trades_bffx.
	Source string
	// Target is the published aggregated table, e.g. ref_trades_bffx.
	Target string
	// Index is the timestamp work-queue table, e.g. step1__trades_bffx.
	Index string
	// WorkingIndex is the transient build copy of Index, renamed into place
	// once complete, e.g. tmp__step1__trades_bffx.
	WorkingIndex string
	// Staging is the aggregation result table renamed to Target on publish,
	// e.g. step2__trades_bffx.
	Staging string
}

// ForSource validates source and derives all table names from it.
func ForSource(source string) (Names, error) {
	if err := validateSource(source); err != nil {
		return Names{}, err
	}

	src := sourcePrefix + source
	return Names{
		Source:       src,
		Target:       targetPrefix + src,
		Index:        indexPrefix + src,
		WorkingIndex: workingPrefix + indexPrefix + src,
		Staging:      stagingPrefix + src,
	}, nil
}

var dumpSeq atomic.Uint64

// DumpFile returns a collision-free path for one bulk-transfer round trip.
// The name embeds the source id, a nanosecond timestamp and an in-process
// sequence number, so concurrent workers and repeated runs never share a
// file.
func DumpFile(source string) string {
	return filepath.Join(os.TempDir(),
		fmt.Sprintf("pikmin_aggregator_%s_%d_%d.tsv", source, time.Now().UnixNano(), dumpSeq.Add(1)))
}

func validateSource(source string) error {
	if len(source) == 0 || len(source) > maxSourceLen {
		return pkgerrors.NewPipelineError(pkgerrors.InvalidSourceError,
			fmt.Errorf("source identifier must be 1-%d characters, got %d", maxSourceLen, len(source)))
	}
	if !sourcePattern.MatchString(source) {
		return pkgerrors.NewPipelineError(pkgerrors.InvalidSourceError,
			fmt.Errorf("source identifier %q must match %s", source, sourcePattern))
	}
	return nil
}
