package state

import "github.com/verse-mate/versemate-tui/internal/catalog"

type TopicStore interface {
	Entries() []catalog.Topic
	SetEntries([]catalog.Topic)
	Categories() []string
	SetCategories([]string)
	Language() string
	SetLanguage(string)
	Loaded() bool
}

type topicStore struct {
	entries    []catalog.Topic
	categories []string
	language   string
	loaded     bool
}

func NewTopicStore() TopicStore {
	return &topicStore{}
}

func (s *topicStore) Entries() []catalog.Topic {
	if len(s.entries) == 0 {
		return nil
	}
	dup := make([]catalog.Topic, len(s.entries))
	copy(dup, s.entries)
	return dup
}

func (s *topicStore) SetEntries(entries []catalog.Topic) {
	if len(entries) == 0 {
		s.entries = nil
	} else {
		s.entries = make([]catalog.Topic, len(entries))
		copy(s.entries, entries)
	}
	s.loaded = true
}

func (s *topicStore) Categories() []string {
	if len(s.categories) == 0 {
		return nil
	}
	dup := make([]string, len(s.categories))
	copy(dup, s.categories)
	return dup
}

func (s *topicStore) SetCategories(categories []string) {
	if len(categories) == 0 {
		s.categories = nil
		return
	}
	s.categories = make([]string, len(categories))
	copy(s.categories, categories)
}

func (s *topicStore) Language() string {
	return s.language
}

func (s *topicStore) SetLanguage(language string) {
	s.language = language
}

func (s *topicStore) Loaded() bool {
	return s.loaded
}
