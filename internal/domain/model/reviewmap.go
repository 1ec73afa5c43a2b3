package model

import "sort"

// ReviewItem identifies one pull request awaiting review.
type ReviewItem struct {
	Title string
	URL   string
}

// ReviewMap groups pull requests needing attention by assignee login.
// The inner set keeps each PR at most once per assignee, however many
// repositories or teams surfaced it.
type ReviewMap map[string]map[ReviewItem]struct{}

// NewReviewMap returns an empty ReviewMap.
func NewReviewMap() ReviewMap {
	return make(ReviewMap)
}

// Add records item as needing attention from the given assignee.
func (m ReviewMap) Add(assignee string, item ReviewItem) {
	set, ok := m[assignee]
	if !ok {
		set = make(map[ReviewItem]struct{})
		m[assignee] = set
	}
	set[item] = struct{}{}
}

// Assignees returns every assignee login in sorted order.
func (m ReviewMap) Assignees() []string {
	logins := make([]string, 0, len(m))
	for login := range m {
		logins = append(logins, login)
	}
	sort.Strings(logins)
	return logins
}

// Items returns the assignee's pending review items sorted by title, then URL.
func (m ReviewMap) Items(assignee string) []ReviewItem {
	set := m[assignee]
	items := make([]ReviewItem, 0, len(set))
	for item := range set {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Title != items[j].Title {
			return items[i].Title < items[j].Title
		}
		return items[i].URL < items[j].URL
	})
	return items
}
