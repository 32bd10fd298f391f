package catalog

import "sort"

// Topic is a single topical article.
type Topic struct {
	ID        string
	Name      string
	Category  string
	SortOrder int
}

// Topics is the topic catalog, ordered by category sequence and then by
// explicit sort order within each category.
type Topics struct {
	topics     []Topic
	byID       map[string]int
	categories []string
}

// NewTopics builds a topic catalog. The categories slice fixes the
// category sequence; categories not listed sort after the known ones in
// name order. Within a category, topics order by SortOrder then name.
func NewTopics(topics []Topic, categories []string) *Topics {
	rank := make(map[string]int, len(categories))
	for i, cat := range categories {
		rank[cat] = i
	}
	ordered := make([]Topic, len(topics))
	copy(ordered, topics)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		ra, aok := rank[a.Category]
		rb, bok := rank[b.Category]
		switch {
		case aok && bok && ra != rb:
			return ra < rb
		case aok != bok:
			return aok
		case !aok && !bok && a.Category != b.Category:
			return a.Category < b.Category
		}
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.Name < b.Name
	})
	t := &Topics{topics: ordered, byID: make(map[string]int, len(ordered))}
	for i, topic := range ordered {
		t.byID[topic.ID] = i
	}
	seen := make(map[string]struct{})
	for _, topic := range ordered {
		if _, ok := seen[topic.Category]; ok {
			continue
		}
		seen[topic.Category] = struct{}{}
		t.categories = append(t.categories, topic.Category)
	}
	return t
}

// Len reports the total number of topics. A nil catalog has length 0.
func (t *Topics) Len() int {
	if t == nil {
		return 0
	}
	return len(t.topics)
}

// Categories returns the category sequence actually present in the
// catalog, in display order.
func (t *Topics) Categories() []string {
	if t == nil {
		return nil
	}
	dup := make([]string, len(t.categories))
	copy(dup, t.categories)
	return dup
}

// Index resolves a topic id to its absolute index, or NotFound.
func (t *Topics) Index(id string) int {
	if t == nil || len(t.topics) == 0 {
		return NotFound
	}
	pos, ok := t.byID[id]
	if !ok {
		return NotFound
	}
	return pos
}

// At resolves an absolute index back to its topic. The index must
// already be wrapped into [0, Len).
func (t *Topics) At(index int) (Topic, bool) {
	if t == nil || index < 0 || index >= len(t.topics) {
		return Topic{}, false
	}
	return t.topics[index], true
}

// InCategory returns the topics of one category in catalog order.
func (t *Topics) InCategory(category string) []Topic {
	if t == nil {
		return nil
	}
	var out []Topic
	for _, topic := range t.topics {
		if topic.Category == category {
			out = append(out, topic)
		}
	}
	return out
}

// First returns the deterministic default topic, or the zero topic when
// the catalog is empty.
func (t *Topics) First() Topic {
	if t == nil || len(t.topics) == 0 {
		return Topic{}
	}
	return t.topics[0]
}
