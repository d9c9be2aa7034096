package resume

import (
	"errors"
	"testing"
)

func TestToggleSectionRoundTrip(t *testing.T) {
	doc := DefaultData()

	doc.ToggleSection(SectionProjects)
	if enabled := sectionEnabled(t, doc, SectionProjects); enabled {
		t.Fatal("projects should be disabled after first toggle")
	}

	doc.ToggleSection(SectionProjects)
	if enabled := sectionEnabled(t, doc, SectionProjects); !enabled {
		t.Fatal("projects should be enabled again after second toggle")
	}
}

func TestToggleSectionUnknownIDIsNoop(t *testing.T) {
	doc := DefaultData()
	before := append([]SectionConfig(nil), doc.Sections...)

	doc.ToggleSection("nonexistent")

	for i, section := range doc.Sections {
		if section != before[i] {
			t.Fatalf("section %d changed: %+v != %+v", i, section, before[i])
		}
	}
}

func TestReorderSections(t *testing.T) {
	doc := DefaultData()

	// skills 从位置 4 移到位置 0。
	if err := doc.ReorderSections(4, 0); err != nil {
		t.Fatalf("reorder: %v", err)
	}

	ordered := doc.EnabledSectionsInOrder()
	if ordered[0].ID != SectionSkills {
		t.Fatalf("expected skills first, got %s", ordered[0].ID)
	}
	if ordered[1].ID != SectionPersonal {
		t.Fatalf("expected personal second, got %s", ordered[1].ID)
	}

	for i, section := range ordered {
		if section.Order != i {
			t.Fatalf("order not dense: index %d has order %d", i, section.Order)
		}
	}
}

func TestReorderSectionsOutOfRange(t *testing.T) {
	doc := DefaultData()

	for _, pair := range [][2]int{{-1, 0}, {0, -1}, {9, 0}, {0, 9}} {
		err := doc.ReorderSections(pair[0], pair[1])
		if !errors.Is(err, ErrSectionIndexOutOfRange) {
			t.Fatalf("ReorderSections(%d, %d) = %v, want ErrSectionIndexOutOfRange", pair[0], pair[1], err)
		}
	}
}

func TestEnabledSectionsInOrder(t *testing.T) {
	doc := DefaultData()
	doc.ToggleSection(SectionReferences)
	doc.ToggleSection(SectionLanguages)

	ordered := doc.EnabledSectionsInOrder()
	if len(ordered) != 7 {
		t.Fatalf("expected 7 enabled sections, got %d", len(ordered))
	}
	for _, section := range ordered {
		if !section.Enabled {
			t.Fatalf("disabled section %s returned", section.ID)
		}
		if section.ID == SectionReferences || section.ID == SectionLanguages {
			t.Fatalf("toggled-off section %s returned", section.ID)
		}
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Order > ordered[i].Order {
			t.Fatal("sections not sorted by order")
		}
	}
}

func TestRepairSections(t *testing.T) {
	doc := DefaultData()
	// 模拟损坏的快照：缺节、重复、未知 id、稀疏 order。
	doc.Sections = []SectionConfig{
		{ID: SectionSkills, Title: "Skills", Icon: "star", Enabled: true, Order: 7},
		{ID: SectionPersonal, Title: "Personal Information", Icon: "user", Enabled: true, Order: 2},
		{ID: SectionSkills, Title: "Skills copy", Icon: "star", Enabled: false, Order: 9},
		{ID: "bogus", Title: "Bogus", Icon: "x", Enabled: true, Order: 0},
	}

	doc.RepairSections()

	if len(doc.Sections) != len(AllSectionIDs) {
		t.Fatalf("expected %d sections, got %d", len(AllSectionIDs), len(doc.Sections))
	}
	seen := map[SectionID]int{}
	for i, section := range doc.Sections {
		if section.Order != i {
			t.Fatalf("order not dense at %d: %d", i, section.Order)
		}
		seen[section.ID]++
	}
	for _, id := range AllSectionIDs {
		if seen[id] != 1 {
			t.Fatalf("section %s appears %d times", id, seen[id])
		}
	}
	// 幸存条目排在补齐条目之前，且保持相对顺序。
	if doc.Sections[0].ID != SectionPersonal || doc.Sections[1].ID != SectionSkills {
		t.Fatalf("unexpected leading sections: %s, %s", doc.Sections[0].ID, doc.Sections[1].ID)
	}
}

func TestApplyExperienceClearsEndDateWhenCurrent(t *testing.T) {
	doc := DefaultData()
	doc.Apply(SetExperience{Experience: []Experience{
		{
			Company:           "Acme",
			Position:          "Engineer",
			StartDate:         "2021-03",
			EndDate:           "2023-05",
			IsCurrentPosition: true,
		},
	}})

	if len(doc.Experience) != 1 {
		t.Fatalf("expected 1 experience, got %d", len(doc.Experience))
	}
	got := doc.Experience[0]
	if got.EndDate != "" {
		t.Fatalf("end date not cleared for current position: %q", got.EndDate)
	}
	if got.ID == "" {
		t.Fatal("missing id was not assigned")
	}
}

func TestApplyKeepsExistingIDs(t *testing.T) {
	doc := DefaultData()
	doc.Apply(SetEducation{Education: []Education{
		{ID: "stable-id", Institution: "MIT", Degree: "BSc", Field: "CS"},
	}})

	if doc.Education[0].ID != "stable-id" {
		t.Fatalf("existing id regenerated: %q", doc.Education[0].ID)
	}
}

func sectionEnabled(t *testing.T, doc Data, id SectionID) bool {
	t.Helper()
	for _, section := range doc.Sections {
		if section.ID == id {
			return section.Enabled
		}
	}
	t.Fatalf("section %s not found", id)
	return false
}
