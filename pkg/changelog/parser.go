// Package changelog implements the parsing and grouping pipeline for the
// release changelog: line classification, bullet parsing, title and
// connector normalization, filtering, and weekly cycle grouping. Everything
// here is a pure function over the fetched document text.
package changelog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/m-hayashi/relcycle/pkg/domain/model"
)

var (
	// Header lines look like "## [2026.1.5.0]"; the brackets are optional.
	// Header-like lines that fail this pattern are treated as prose.
	headerRe = regexp.MustCompile(`^##\s*\[?(\d{4})\.(\d{1,2})\.(\d{1,2})\.(\d{1,2})\]?`)

	// Connector tags are bracketed plain tokens like "[Adyen]". The PR-link
	// bracket "[#123]" never matches because "#" is outside the class.
	connectorRe = regexp.MustCompile(`\[([A-Za-z0-9_ ]+)\]`)

	// PR links have the exact shape "[#123](https://github.com/...)".
	prLinkRe = regexp.MustCompile(`\[#(\d+)\]\((https://github\.com/[^\s)]+)\)`)
)

// Parse splits the raw changelog document into version sections with their
// parsed bullet items. Lines matching neither a header nor a bullet are
// ignored, as are bullets appearing before the first header.
func Parse(raw string, policy Policy) []model.VersionSection {
	var sections []model.VersionSection
	var current *model.VersionSection

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		if m := headerRe.FindStringSubmatch(line); m != nil {
			month, _ := strconv.Atoi(m[2])
			day, _ := strconv.Atoi(m[3])
			sections = append(sections, model.VersionSection{
				VersionID:   fmt.Sprintf("%s.%s.%s.%s", m[1], m[2], m[3], m[4]),
				ReleaseDate: fmt.Sprintf("%s-%02d-%02d", m[1], month, day),
			})
			current = &sections[len(sections)-1]
			continue
		}

		if strings.HasPrefix(line, "-") && current != nil {
			if item, ok := parseBullet(strings.TrimSpace(line[1:]), current, policy); ok {
				current.Items = append(current.Items, item)
			}
		}
	}

	return sections
}

// Items flattens parsed sections into a single list in document order
func Items(sections []model.VersionSection) []model.ReleaseItem {
	var items []model.ReleaseItem
	for _, section := range sections {
		items = append(items, section.Items...)
	}
	return items
}

// parseBullet extracts structured fields from the content of one bullet line
// (the text after the leading "-"). Field extraction reads the original raw
// content; only the title goes through cleaning. A bullet whose title cleans
// to nothing is dropped.
func parseBullet(raw string, section *model.VersionSection, policy Policy) (model.ReleaseItem, bool) {
	title := CleanTitle(raw)
	if title == "" {
		return model.ReleaseItem{}, false
	}

	item := model.ReleaseItem{
		Title:        title,
		Type:         classify(raw, policy),
		OriginalDate: section.ReleaseDate,
		Version:      section.VersionID,
	}

	if m := connectorRe.FindStringSubmatch(raw); m != nil {
		item.Connector = NormalizeConnector(m[1])
	}
	if m := prLinkRe.FindStringSubmatch(raw); m != nil {
		item.PRNumber = m[1]
		item.PRURL = m[2]
	}

	return item, true
}

func classify(raw string, policy Policy) model.ChangeType {
	lower := strings.ToLower(raw)
	for _, keyword := range policy.FixKeywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return model.ChangeTypeBugFix
		}
	}
	return model.ChangeTypeFeature
}
