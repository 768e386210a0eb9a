package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Today     key.Binding
	Year      key.Binding
	Month     key.Binding
	Goto      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevMonth: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "上个月")),
		NextMonth: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "下个月")),
		PrevYear:  key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "上一年")),
		NextYear:  key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "下一年")),
		Left:      key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "前一天")),
		Right:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "后一天")),
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "上一周")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "下一周")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "选择")),
		Today:     key.NewBinding(key.WithKeys("."), key.WithHelp(".", "今天")),
		Year:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "输入年份")),
		Month:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "输入月份")),
		Goto:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "跳转日期")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "退出")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevMonth, k.NextMonth, k.Select, k.Today, k.Goto, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevMonth, k.NextMonth, k.PrevYear, k.NextYear},
		{k.Left, k.Right, k.Up, k.Down, k.Select},
		{k.Today, k.Year, k.Month, k.Goto, k.Quit},
	}
}
