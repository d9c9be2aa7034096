package resume

import (
	"strconv"
	"strings"
	"time"
)

// FormatMonthYear 把 "YYYY-MM" 格式的日期转成 "Jan 2020" 形式。
// 空串或缺少年/月分量时返回空串。
// 构造日期时月份按 1 起算传入 time.Date，越界月份沿用其归一化行为
// （13 月进位到次年 1 月），与历史快照的展示保持一致。
func FormatMonthYear(dateString string) string {
	if dateString == "" {
		return ""
	}

	parts := strings.SplitN(dateString, "-", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return ""
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return ""
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return ""
	}

	date := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return date.Format("Jan 2006")
}

// FormatDateRange 生成日期区间的展示文本。
// isCurrent 为 true 时无条件追加 " - Present" 并忽略 end；
// 否则两端都有值输出 "start - end"，只有一端有值时单独输出该端。
func FormatDateRange(startDate, endDate string, isCurrent bool) string {
	formattedStart := FormatMonthYear(startDate)

	if isCurrent {
		return formattedStart + " - Present"
	}

	formattedEnd := FormatMonthYear(endDate)

	if formattedStart != "" && formattedEnd != "" {
		return formattedStart + " - " + formattedEnd
	}
	if formattedStart != "" {
		return formattedStart
	}
	return formattedEnd
}

// Initials 取姓名每个单词的首字母，最多两位，全部大写。
func Initials(name string) string {
	if name == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Fields(name) {
		runes := []rune(part)
		if len(runes) == 0 {
			continue
		}
		b.WriteString(strings.ToUpper(string(runes[0])))
		if b.Len() >= 2 {
			break
		}
	}
	out := []rune(b.String())
	if len(out) > 2 {
		out = out[:2]
	}
	return string(out)
}
