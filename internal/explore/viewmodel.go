package explore

import (
	"time"

	"github.com/alexanderramin/cramit/internal/domain"
)

// TabItem is one subject pill in the tab bar.
type TabItem struct {
	ID     string
	Name   string
	Color  domain.Color
	Active bool
}

// ChapterItem is one row of the chapter list.
type ChapterItem struct {
	Label    string
	Name     string
	Delay    time.Duration
	Selected bool
}

// SubtopicItem is one toggle row of the modal.
type SubtopicItem struct {
	Label    string
	Selected bool
	Focused  bool
}

// Tabs returns the tab bar in catalog order. Exactly one item is active.
func (s *State) Tabs() []TabItem {
	out := make([]TabItem, len(s.subjects))
	for i, subj := range s.subjects {
		out[i] = TabItem{ID: subj.ID, Name: subj.Name, Color: subj.Color, Active: i == s.active}
	}
	return out
}

// Chapters returns the active subject's chapter rows in original order with
// two-digit labels. Delay staggers each row's entrance by its position.
func (s *State) Chapters(stagger time.Duration) []ChapterItem {
	subj := s.ActiveSubject()
	if subj == nil {
		return nil
	}
	chapters := subj.ChapterList()
	out := make([]ChapterItem, len(chapters))
	for i, ch := range chapters {
		out[i] = ChapterItem{
			Label:    ch.Label(),
			Name:     ch.Name,
			Delay:    time.Duration(i) * stagger,
			Selected: i == s.cursor,
		}
	}
	return out
}

// Subtopics returns the modal toggle rows.
func (s *State) Subtopics() []SubtopicItem {
	out := make([]SubtopicItem, len(s.modal.selected))
	for i, on := range s.modal.selected {
		out[i] = SubtopicItem{Label: s.subtopics[i], Selected: on, Focused: i == s.modal.cursor}
	}
	return out
}

// TabWindow returns the inclusive range of tabs that fit in width, keeping
// the active tab inside the range and as close to its center as the ends of
// the bar allow. widthOf gives the rendered width of one tab, gap the space
// between tabs.
func TabWindow(tabs []TabItem, width, gap int, widthOf func(TabItem) int) (from, to int) {
	if len(tabs) == 0 {
		return 0, -1
	}
	active := 0
	for i, t := range tabs {
		if t.Active {
			active = i
			break
		}
	}

	from, to = active, active
	used := widthOf(tabs[active])
	for {
		grew := false
		// Alternate left and right so the active tab stays centered.
		if from > 0 {
			if w := widthOf(tabs[from-1]) + gap; used+w <= width {
				from--
				used += w
				grew = true
			}
		}
		if to < len(tabs)-1 {
			if w := widthOf(tabs[to+1]) + gap; used+w <= width {
				to++
				used += w
				grew = true
			}
		}
		if !grew {
			return from, to
		}
	}
}
