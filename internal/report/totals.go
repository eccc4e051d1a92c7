// Package report aggregates parsed time entries into the value structures
// the renderers consume: flat per-tag totals with percentages, per-tag task
// details, hierarchical day/week/month/year breakdown trees, and the
// tracking period actually covered by the data. Everything here is a pure
// function over a ParseResult.
package report

import (
	"math"
	"sort"

	"github.com/blackwell-systems/trackdown/internal/track"
)

// NoDescription stands in for entries whose line carried no free text when
// tasks are grouped by description.
const NoDescription = "(no description)"

// TimeTotal is one row of a flat report: a grouping key, its minutes, and
// its rounded share of the report total.
type TimeTotal struct {
	Label      string `json:"label"`
	Minutes    int    `json:"minutes"`
	Percentage int    `json:"percentage"`
}

// TagUsage is one row of an outcome report: how many entries carry the tag
// and how much time they account for. Minutes overlap between rows when
// entries carry several outcome tags.
type TagUsage struct {
	Tag        string `json:"tag"`
	Count      int    `json:"count"`
	Minutes    int    `json:"minutes"`
	Percentage int    `json:"percentage"`
}

// TaskSummary is one description-level row inside a tag's task details.
// Percentage is relative to the tag's own total, not the grand total.
type TaskSummary struct {
	Description string `json:"description"`
	Minutes     int    `json:"minutes"`
	Percentage  int    `json:"percentage"`
}

// TagDetails pairs a tag with its per-task breakdown. Minutes covers every
// entry carrying the tag anywhere in its tag list.
type TagDetails struct {
	Tag     string        `json:"tag"`
	Minutes int           `json:"minutes"`
	Tasks   []TaskSummary `json:"tasks"`
}

// Totals sums minutes per main tag. Rows are sorted by minutes descending,
// ties by label ascending.
func Totals(res track.ParseResult) []TimeTotal {
	byTag := make(map[string]int)
	for _, entries := range res.Entries {
		for _, e := range entries {
			byTag[e.MainTag().Raw()] += e.Minutes
		}
	}
	return sortedTotals(byTag, res.TotalMinutes())
}

// OutcomeTotals sums minutes and entry counts per outcome tag, so every tag
// after an entry's main tag. Percentages are shares of the grand total and
// may sum past 100 when entries carry several outcomes.
func OutcomeTotals(res track.ParseResult) []TagUsage {
	type acc struct{ count, minutes int }
	byTag := make(map[string]*acc)
	for _, entries := range res.Entries {
		for _, e := range entries {
			for _, tag := range e.OutcomeTags() {
				a := byTag[tag.Raw()]
				if a == nil {
					a = &acc{}
					byTag[tag.Raw()] = a
				}
				a.count++
				a.minutes += e.Minutes
			}
		}
	}
	total := res.TotalMinutes()
	out := make([]TagUsage, 0, len(byTag))
	for raw, a := range byTag {
		out = append(out, TagUsage{
			Tag:        raw,
			Count:      a.count,
			Minutes:    a.minutes,
			Percentage: percentage(a.minutes, total),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes > out[j].Minutes
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

// TaskDetails groups the entries carrying tag by description and annotates
// each task with its share of the tag's own total.
func TaskDetails(res track.ParseResult, tag track.Tag) []TaskSummary {
	byDesc := make(map[string]int)
	tagTotal := 0
	for _, entries := range res.Entries {
		for _, e := range entries {
			if !e.HasTag(tag) {
				continue
			}
			desc := e.Description
			if desc == "" {
				desc = NoDescription
			}
			byDesc[desc] += e.Minutes
			tagTotal += e.Minutes
		}
	}
	totals := sortedTotals(byDesc, tagTotal)
	out := make([]TaskSummary, len(totals))
	for i, t := range totals {
		out[i] = TaskSummary{Description: t.Label, Minutes: t.Minutes, Percentage: t.Percentage}
	}
	return out
}

// Details builds the task breakdown for every tag appearing as a main tag,
// in the same order Totals reports them.
func Details(res track.ParseResult) []TagDetails {
	var out []TagDetails
	for _, t := range Totals(res) {
		tasks := TaskDetails(res, track.ParseTag(t.Label))
		minutes := 0
		for _, task := range tasks {
			minutes += task.Minutes
		}
		out = append(out, TagDetails{Tag: t.Label, Minutes: minutes, Tasks: tasks})
	}
	return out
}

// LimitTotals cuts a sorted totals list once the running percentage share
// reaches threshold. The row that crosses the threshold is kept, so a
// threshold just above a round share (the default is 90.01) lets an exact
// 90 percent run stay complete.
func LimitTotals(totals []TimeTotal, threshold float64) []TimeTotal {
	var out []TimeTotal
	acc := 0
	for _, t := range totals {
		out = append(out, t)
		acc += t.Percentage
		if float64(acc) >= threshold {
			break
		}
	}
	return out
}

func sortedTotals(byKey map[string]int, total int) []TimeTotal {
	out := make([]TimeTotal, 0, len(byKey))
	for key, minutes := range byKey {
		out = append(out, TimeTotal{Label: key, Minutes: minutes, Percentage: percentage(minutes, total)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes > out[j].Minutes
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// percentage rounds the share of minutes in total to the nearest whole
// percent; an empty total reports zero rather than dividing by it.
func percentage(minutes, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(minutes) / float64(total)))
}
