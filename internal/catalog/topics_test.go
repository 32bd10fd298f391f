package catalog

import "testing"

func testTopics() *Topics {
	topics := []Topic{
		{ID: "grace", Name: "Grace", Category: "doctrine", SortOrder: 2},
		{ID: "faith", Name: "Faith", Category: "doctrine", SortOrder: 1},
		{ID: "prayer", Name: "Prayer", Category: "practice", SortOrder: 1},
		{ID: "fasting", Name: "Fasting", Category: "practice", SortOrder: 2},
		{ID: "zeal", Name: "Zeal", Category: "misc", SortOrder: 1},
	}
	return NewTopics(topics, []string{"doctrine", "practice"})
}

func TestTopicOrderingFollowsCategorySequence(t *testing.T) {
	topics := testTopics()
	wantIDs := []string{"faith", "grace", "prayer", "fasting", "zeal"}
	if topics.Len() != len(wantIDs) {
		t.Fatalf("expected %d topics, got %d", len(wantIDs), topics.Len())
	}
	for i, id := range wantIDs {
		topic, ok := topics.At(i)
		if !ok {
			t.Fatalf("At(%d) failed", i)
		}
		if topic.ID != id {
			t.Fatalf("position %d = %q, want %q", i, topic.ID, id)
		}
	}
}

func TestTopicBijection(t *testing.T) {
	topics := testTopics()
	for i := 0; i < topics.Len(); i++ {
		topic, ok := topics.At(i)
		if !ok {
			t.Fatalf("At(%d) failed", i)
		}
		if got := topics.Index(topic.ID); got != i {
			t.Fatalf("Index(At(%d)) = %d", i, got)
		}
	}
}

func TestTopicIndexUnknown(t *testing.T) {
	topics := testTopics()
	if got := topics.Index("nope"); got != NotFound {
		t.Fatalf("Index(unknown) = %d, want NotFound", got)
	}
	var nilTopics *Topics
	if got := nilTopics.Index("faith"); got != NotFound {
		t.Fatalf("nil catalog Index = %d, want NotFound", got)
	}
}

func TestTopicCategories(t *testing.T) {
	topics := testTopics()
	got := topics.Categories()
	want := []string{"doctrine", "practice", "misc"}
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories = %v, want %v", got, want)
		}
	}
}

func TestTopicInCategory(t *testing.T) {
	topics := testTopics()
	practice := topics.InCategory("practice")
	if len(practice) != 2 || practice[0].ID != "prayer" || practice[1].ID != "fasting" {
		t.Fatalf("InCategory(practice) = %v", practice)
	}
}

func TestTopicFirst(t *testing.T) {
	if got := testTopics().First(); got.ID != "faith" {
		t.Fatalf("First() = %v", got)
	}
	var nilTopics *Topics
	if got := nilTopics.First(); got.ID != "" {
		t.Fatalf("nil First() = %v", got)
	}
}
