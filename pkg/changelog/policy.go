package changelog

import (
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// DefaultSourceURL is the public changelog of the payments switch this
// dashboard tracks.
const DefaultSourceURL = "https://raw.githubusercontent.com/juspay/hyperswitch/main/CHANGELOG.md"

// Policy holds the tunable parts of the parsing and grouping rules. The
// defaults match the documented behavior; a TOML file can override them.
type Policy struct {
	// FixKeywords are matched case-insensitively as substrings of the raw
	// bullet text; any hit classifies the item as a bug fix.
	FixKeywords []string

	// AnchorWeekday defines the week boundary for cycle grouping. An item's
	// cycle ends on the first occurrence of this weekday on or after its
	// release date.
	AnchorWeekday time.Weekday
}

// DefaultPolicy returns the documented parsing policy: the superset fix
// vocabulary and Wednesday-anchored cycles.
func DefaultPolicy() Policy {
	return Policy{
		FixKeywords:   []string{"fix", "bug", "resolves"},
		AnchorWeekday: time.Wednesday,
	}
}

type policyFile struct {
	FixKeywords   []string `toml:"fix_keywords"`
	AnchorWeekday string   `toml:"anchor_weekday"`
}

// LoadPolicy reads a TOML policy file. Fields absent from the file keep
// their default values; an unknown weekday name is an error.
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()

	raw, err := os.ReadFile(path)
	if err != nil {
		return policy, goerr.Wrap(err, "failed to read policy file", goerr.V("path", path))
	}

	var file policyFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return policy, goerr.Wrap(err, "failed to parse policy file", goerr.V("path", path))
	}

	if len(file.FixKeywords) > 0 {
		policy.FixKeywords = file.FixKeywords
	}
	if file.AnchorWeekday != "" {
		weekday, ok := parseWeekday(file.AnchorWeekday)
		if !ok {
			return policy, goerr.New("unknown anchor weekday",
				goerr.V("path", path), goerr.V("weekday", file.AnchorWeekday))
		}
		policy.AnchorWeekday = weekday
	}

	return policy, nil
}

func parseWeekday(name string) (time.Weekday, bool) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.EqualFold(day.String(), name) {
			return day, true
		}
	}
	return 0, false
}
