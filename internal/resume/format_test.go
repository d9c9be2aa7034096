package resume

import "testing"

func TestFormatMonthYear(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2020-01", "Jan 2020"},
		{"2022-06", "Jun 2022"},
		{"2022-12", "Dec 2022"},
		{"1999-09", "Sep 1999"},
		{"", ""},
		{"2020", ""},
		{"2020-", ""},
		{"-01", ""},
		{"abcd-ef", ""},
		{"2020-xx", ""},
	}

	for _, tc := range cases {
		if got := FormatMonthYear(tc.input); got != tc.want {
			t.Errorf("FormatMonthYear(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFormatDateRange(t *testing.T) {
	cases := []struct {
		name      string
		start     string
		end       string
		isCurrent bool
		want      string
	}{
		{"both present", "2020-01", "2022-06", false, "Jan 2020 - Jun 2022"},
		{"current position", "2020-01", "", true, "Jan 2020 - Present"},
		{"current ignores end", "2020-01", "2022-06", true, "Jan 2020 - Present"},
		{"both empty", "", "", false, ""},
		{"only start", "2020-01", "", false, "Jan 2020"},
		{"only end", "", "2022-06", false, "Jun 2022"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatDateRange(tc.start, tc.end, tc.isCurrent); got != tc.want {
				t.Errorf("FormatDateRange(%q, %q, %v) = %q, want %q",
					tc.start, tc.end, tc.isCurrent, got, tc.want)
			}
		})
	}
}

func TestFormatDateRangeCurrentWithEmptyStart(t *testing.T) {
	// 在职但起始为空时保留 " - Present"，与历史行为一致。
	if got := FormatDateRange("", "", true); got != " - Present" {
		t.Errorf("got %q, want %q", got, " - Present")
	}
}

func TestInitials(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Your Name", "YN"},
		{"alice", "A"},
		{"John Ronald Reuel Tolkien", "JR"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Initials(tc.input); got != tc.want {
			t.Errorf("Initials(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
