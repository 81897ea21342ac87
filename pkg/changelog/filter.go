package changelog

import "github.com/m-hayashi/relcycle/pkg/domain/model"

// Apply returns the items satisfying every set field of the filter,
// preserving input order. A zero filter returns the input unchanged. The
// date range is inclusive on both ends; ISO dates compare correctly as
// strings.
func Apply(items []model.ReleaseItem, filter model.Filter) []model.ReleaseItem {
	if filter.IsZero() {
		return items
	}

	connector := filter.Connector
	if connector != "" {
		connector = NormalizeConnector(connector)
	}

	out := make([]model.ReleaseItem, 0, len(items))
	for _, item := range items {
		if connector != "" && item.Connector != connector {
			continue
		}
		if filter.Type != "" && item.Type != filter.Type {
			continue
		}
		if filter.FromDate != "" && item.OriginalDate < filter.FromDate {
			continue
		}
		if filter.ToDate != "" && item.OriginalDate > filter.ToDate {
			continue
		}
		out = append(out, item)
	}
	return out
}
