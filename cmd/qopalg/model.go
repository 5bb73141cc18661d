package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
)

// Model holds the browser state: the catalog cursor plus a scrolling detail
// pane for the selected operation.
type Model struct {
	catCursor  int
	itemCursor int

	detail viewport.Model
	ready  bool

	width  int
	height int
}

func initialModel() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) clampItem() {
	entries := catalog[m.catCursor].entries
	if m.itemCursor >= len(entries) {
		m.itemCursor = len(entries) - 1
	}
	if m.itemCursor < 0 {
		m.itemCursor = 0
	}
}

// syncDetail rebuilds the detail pane for the selected entry.
func (m *Model) syncDetail() {
	if !m.ready {
		return
	}
	entry := catalog[m.catCursor].entries[m.itemCursor]
	op := entry.build()
	log.Debug().Str("operation", op.HQSLang()).Msg("rendering detail")
	m.detail.SetContent(renderDetail(op))
	m.detail.GotoTop()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		detailW := m.width - catalogW - 6
		if detailW < minDetailW {
			detailW = minDetailW
		}
		detailH := m.height - 5
		if detailH < 4 {
			detailH = 4
		}
		if !m.ready {
			m.detail = viewport.New(detailW, detailH)
			m.ready = true
		} else {
			m.detail.Width = detailW
			m.detail.Height = detailH
		}
		m.syncDetail()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.itemCursor > 0 {
				m.itemCursor--
				m.syncDetail()
			}
		case "down", "j":
			if m.itemCursor < len(catalog[m.catCursor].entries)-1 {
				m.itemCursor++
				m.syncDetail()
			}
		case "left", "h":
			if m.catCursor > 0 {
				m.catCursor--
				m.clampItem()
				m.syncDetail()
			}
		case "right", "l":
			if m.catCursor < len(catalog)-1 {
				m.catCursor++
				m.clampItem()
				m.syncDetail()
			}
		case "pgup":
			m.detail.HalfViewUp()
		case "pgdown":
			m.detail.HalfViewDown()
		case "home":
			m.catCursor = 0
			m.itemCursor = 0
			m.syncDetail()
		}
	}
	return m, nil
}

// renderCatalog renders the left pane: category tabs and the entry list.
func (m Model) renderCatalog() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Operations"))
	sb.WriteString("\n")

	// Category tabs
	for i, cat := range catalog {
		name := " " + cat.name + " "
		if i == m.catCursor {
			sb.WriteString(activeTabStyle.Render(name))
		} else {
			sb.WriteString(dimStyle.Render(name))
		}
		if (i+1)%3 == 0 && i < len(catalog)-1 {
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(strings.Repeat("─", catalogW-2)))
	sb.WriteString("\n")

	// Entries of the selected category
	for i, entry := range catalog[m.catCursor].entries {
		if i == m.itemCursor {
			sb.WriteString(selectedStyle.Render(" ▸ " + entry.name))
		} else {
			sb.WriteString(normalStyle.Render("   " + entry.name))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(" ↑↓ Select  ←→ Cat  PgUp/PgDn Scroll  q ✕"))
	return sb.String()
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	left := catalogStyle.Width(catalogW).Render(m.renderCatalog())
	right := detailStyle.Render(m.detail.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := dimStyle.Render(fmt.Sprintf(" %s · %d/%d",
		catalog[m.catCursor].name,
		m.itemCursor+1, len(catalog[m.catCursor].entries)))
	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}
