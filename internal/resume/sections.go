package resume

import (
	"errors"
	"sort"
)

// ErrSectionIndexOutOfRange 表示重排下标越界。
// 注册表固定只有九条，调用方应当保证下标合法；这里选择报错而不是悄悄钳制。
var ErrSectionIndexOutOfRange = errors.New("section index out of range")

// ToggleSection 翻转指定节的 Enabled 标志。
// 未知标识静默忽略：固定集合默认总是在场，缺失不视为错误。
func (d *Data) ToggleSection(id SectionID) {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			d.Sections[i].Enabled = !d.Sections[i].Enabled
			return
		}
	}
}

// ReorderSections 把 from 位置的节移动到 to 位置（列表移动，不是交换），
// 然后把所有 Order 重新赋成紧凑的 0..N-1。
func (d *Data) ReorderSections(from, to int) error {
	n := len(d.Sections)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrSectionIndexOutOfRange
	}

	sections := append([]SectionConfig(nil), d.Sections...)
	moved := sections[from]
	sections = append(sections[:from], sections[from+1:]...)

	sections = append(sections, SectionConfig{})
	copy(sections[to+1:], sections[to:])
	sections[to] = moved

	for i := range sections {
		sections[i].Order = i
	}
	d.Sections = sections
	return nil
}

// EnabledSectionsInOrder 返回启用的节，按 Order 升序。
// 每次调用都重新计算，绝不缓存：翻转与重排都会影响结果。
func (d *Data) EnabledSectionsInOrder() []SectionConfig {
	enabled := make([]SectionConfig, 0, len(d.Sections))
	for _, section := range d.Sections {
		if section.Enabled {
			enabled = append(enabled, section)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Order < enabled[j].Order
	})
	return enabled
}

// RepairSections 把注册表修复成"九个固定节恰好各一条"的形态：
// 丢弃未知与重复的条目，按默认模板补齐缺失的节，最后按 Order 重新排紧。
// 只在加载持久化快照时调用，防止旧版本或损坏数据破坏不变量。
func (d *Data) RepairSections() {
	seen := make(map[SectionID]bool, len(AllSectionIDs))
	kept := make([]SectionConfig, 0, len(AllSectionIDs))
	for _, section := range d.Sections {
		if !ValidSectionID(section.ID) || seen[section.ID] {
			continue
		}
		seen[section.ID] = true
		kept = append(kept, section)
	}

	if len(kept) < len(AllSectionIDs) {
		for _, fallback := range DefaultData().Sections {
			if !seen[fallback.ID] {
				fallback.Order = len(AllSectionIDs) + fallback.Order
				kept = append(kept, fallback)
			}
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Order < kept[j].Order
	})
	for i := range kept {
		kept[i].Order = i
	}
	d.Sections = kept
}
