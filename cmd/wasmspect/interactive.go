package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/wasm-core/wasm"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectModel struct {
	err      error
	filename string
	data     []byte
	sections []wasm.SectionInfo
	selected int
	detail   viewport.Model
	ready    bool
}

type loadedMsg struct {
	err      error
	data     []byte
	sections []wasm.SectionInfo
}

func newInspectModel(filename string) *inspectModel {
	return &inspectModel{filename: filename}
}

func (m *inspectModel) Init() tea.Cmd {
	return m.loadModule
}

func (m *inspectModel) loadModule() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	if err := wasm.ValidateHeader(data); err != nil {
		return loadedMsg{err: err}
	}
	sections, err := wasm.ParseSections(data)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{data: data, sections: sections}
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.detail.SetContent(m.renderDetail())
				m.detail.GotoTop()
			}
			return m, nil

		case "down", "j":
			if m.selected < len(m.sections)-1 {
				m.selected++
				m.detail.SetContent(m.renderDetail())
				m.detail.GotoTop()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		listHeight := len(m.sections) + 5
		height := msg.Height - listHeight
		if height < 4 {
			height = 4
		}
		if !m.ready {
			m.detail = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.detail.Width = msg.Width
			m.detail.Height = height
		}
		m.detail.SetContent(m.renderDetail())

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.data = msg.data
		m.sections = msg.sections
		m.detail.SetContent(m.renderDetail())
	}

	// Remaining keys (pgup/pgdn, mouse wheel) scroll the hexdump pane.
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wasmspect: " + m.filename))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	if m.sections == nil {
		b.WriteString(dimStyle.Render("loading..."))
		b.WriteString("\n")
		return b.String()
	}

	for i, s := range m.sections {
		line := fmt.Sprintf("%2d  %-10s  offset 0x%06x  size %d", s.ID, s.Name, s.Offset, s.Size)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(sectionStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.ready {
		b.WriteString(m.detail.View())
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down: select section  pgup/pgdn: scroll  q: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *inspectModel) renderDetail() string {
	if len(m.sections) == 0 {
		return ""
	}
	s := m.sections[m.selected]

	end := s.Offset + int(s.Size)
	if end > len(m.data) {
		return errorStyle.Render(fmt.Sprintf("declared size %d exceeds buffer", s.Size))
	}
	content := m.data[s.Offset:end]

	var b strings.Builder
	for i := 0; i < len(content); i += 16 {
		row := content[i:min(i+16, len(content))]
		b.WriteString(fmt.Sprintf("%06x  ", s.Offset+i))
		for _, c := range row {
			b.WriteString(fmt.Sprintf("%02x ", c))
		}
		b.WriteString("\n")
	}
	return dimStyle.Render(b.String())
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInspectModel(filename), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
