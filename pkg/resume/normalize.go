package resume

import (
	"strings"
)

// PeriodSeparator sits between the start and end of a date range.
const PeriodSeparator = " – "

// PresentToken ends the period of a role the user still holds.
const PresentToken = "Present"

// Period formats a date range for display. Without a start date the period
// is empty. A current role ends in PresentToken and a range without an end
// shows the start alone.
func Period(start string, end string, current bool) (period string) {
	start = strings.TrimSpace(start)
	if start == "" {
		return period
	}

	end = strings.TrimSpace(end)
	if current {
		end = PresentToken
	}

	if end == "" {
		period = start
		return period
	}

	period = start + PeriodSeparator + end
	return period
}

func matchKey(s string) (key string) {
	key = strings.ToLower(strings.TrimSpace(s))
	return key
}

func copyStrings(items []string) (out []string) {
	out = make([]string, len(items))
	copy(out, items)
	return out
}

// NormalizeExperience merges manual roles with generated ones. Output order
// and length follow manual exactly. A generated role is matched on title
// alone, the first match wins, and only its bullets are taken, and only when
// it has some.
func NormalizeExperience(manual []ManualExperience, generated List[AIExperience]) (entries []ExperienceEntry) {
	entries = make([]ExperienceEntry, 0, len(manual))

	for _, m := range manual {
		entry := ExperienceEntry{
			Company:  m.Company,
			Role:     m.Role,
			Location: "",
			Period:   Period(m.StartDate, m.EndDate, m.Current),
			Bullets:  m.Description.ByLine(),
		}

		key := matchKey(m.Role)
		for _, g := range generated.Items {
			if matchKey(g.Title) != key {
				continue
			}

			if g.Bullets.State() == Present {
				entry.Bullets = copyStrings(g.Bullets.Items)
			}
			break
		}

		entries = append(entries, entry)
	}

	return entries
}

// NormalizeProjects merges manual projects with generated ones, matching on
// the trimmed, case-folded title. The title is kept trimmed. When generated names collide the last one
// wins. Only non-empty generated bullets replace the manual description.
func NormalizeProjects(manual []ManualProject, generated List[AIProject]) (entries []ProjectEntry) {
	entries = make([]ProjectEntry, 0, len(manual))

	byName := make(map[string][]string, len(generated.Items))
	for _, g := range generated.Items {
		key := matchKey(g.Name)
		if key == "" {
			continue
		}

		if g.Bullets.State() == Present {
			byName[key] = g.Bullets.Items
		} else {
			delete(byName, key)
		}
	}

	for _, m := range manual {
		entry := ProjectEntry{
			Title:      strings.TrimSpace(m.Title),
			Duration:   m.Duration,
			TechStack:  m.TechStack.ByComma(),
			Bullets:    m.Description.ByLine(),
			GitHubLink: m.GitHubLink,
		}

		if bullets, ok := byName[matchKey(m.Title)]; ok {
			entry.Bullets = copyStrings(bullets)
		}

		entries = append(entries, entry)
	}

	return entries
}

// NormalizeSkills splits a skill field on commas and newlines, trims each
// skill, and drops empties and repeats. First occurrence order is kept.
func NormalizeSkills(field StringList) (skills []string) {
	skills = make([]string, 0)
	seen := make(map[string]bool)

	for _, item := range field.Split(",\n") {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}

		seen[item] = true
		skills = append(skills, item)
	}

	return skills
}
