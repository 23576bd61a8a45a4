package catalog

import (
	"os"
	"strings"

	"github.com/ardnew/mung"
)

// PathEnv names the environment variable listing catalog files.
const PathEnv = "TEAMPORT_CATALOG_PATH"

// SearchPath returns the catalog files to load, highest precedence first.
// The files named explicitly come first, followed by the entries of list,
// a PATH-style list such as the value of [PathEnv]. Empty entries are
// dropped.
func SearchPath(list string, files ...string) []string {
	sep := string(os.PathListSeparator)

	joined := mung.Make(
		mung.WithSubjectItems(list),
		mung.WithDelim(sep),
		mung.WithPrefixItems(files...),
	).String()

	var out []string

	for p := range strings.SplitSeq(joined, sep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
