package changelog

import (
	"cmp"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/m-hayashi/relcycle/pkg/domain/model"
)

const dateLayout = "2006-01-02"

// liveLagDays is the gap between a cycle closing and its release going live
const liveLagDays = 8

// CycleEnd returns the first occurrence of the anchor weekday on or after d.
// A date already on the anchor weekday is its own cycle end.
func CycleEnd(d time.Time, anchor time.Weekday) time.Time {
	offset := (int(anchor) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset)
}

// GroupCycles buckets a flat item list into weekly release cycles, most
// recent cycle first. Item order within a cycle follows the input order, so
// grouping the same list twice yields identical output.
func GroupCycles(items []model.ReleaseItem, policy Policy, now time.Time) []model.ReleaseCycle {
	today := now.Format(dateLayout)
	buckets := map[string]*model.ReleaseCycle{}
	var keys []string

	for _, item := range items {
		date, err := time.Parse(dateLayout, item.OriginalDate)
		if err != nil {
			continue
		}
		end := CycleEnd(date, policy.AnchorWeekday)
		key := end.Format(dateLayout)

		cycle, ok := buckets[key]
		if !ok {
			cycle = &model.ReleaseCycle{
				CycleKey:         key,
				Headline:         headline(end),
				IsCurrentCycle:   key >= today,
				ExpectedLiveDate: end.AddDate(0, 0, liveLagDays).Format(dateLayout),
			}
			buckets[key] = cycle
			keys = append(keys, key)
		}

		cycle.Items = append(cycle.Items, item)
		if item.Version != "" && CompareVersions(item.Version, cycle.ReleaseVersion) > 0 {
			cycle.ReleaseVersion = item.Version
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	cycles := make([]model.ReleaseCycle, 0, len(keys))
	for _, key := range keys {
		cycles = append(cycles, *buckets[key])
	}
	return cycles
}

// CompareVersions orders version ids like "2026.1.7.2" by numeric component,
// so unpadded components compare correctly ("2026.1.11.0" > "2026.1.5.0").
// An empty string sorts before everything.
func CompareVersions(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return -1
	}
	if b == "" {
		return 1
	}

	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		ai, _ := strconv.Atoi(as[i])
		bi, _ := strconv.Atoi(bs[i])
		if c := cmp.Compare(ai, bi); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(as), len(bs))
}

// Digest renders a cycle as the plain-text bullet list handed to the LLM
// collaborator and to chat notifications.
func Digest(cycle model.ReleaseCycle) string {
	var sb strings.Builder
	for _, item := range cycle.Items {
		sb.WriteString("- " + item.Title)
		if item.PRNumber != "" {
			sb.WriteString(fmt.Sprintf(" (PR #%s)", item.PRNumber))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// headline renders the 7-day span ending at the cycle end date
func headline(end time.Time) string {
	start := end.AddDate(0, 0, -6)
	if start.Year() != end.Year() {
		return fmt.Sprintf("%s - %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
}
