package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/choice"
	"github.com/wippyai/choice/errors"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectOp modelState = iota
	stateInputArgs
	stateShowResult
)

type paramInfo struct {
	name string
	hint string
}

type opInfo struct {
	name   string
	params []paramInfo
	run    func(m *exploreModel, args []int32) (string, error)
}

type exploreModel struct {
	sh       shapes
	a        choice.Choice[string]
	b        choice.Choice[string]
	ops      []opInfo
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
	result   string
	err      error
}

type opResultMsg struct {
	err    error
	result string
}

func runInteractive() error {
	p := tea.NewProgram(newExploreModel())
	_, err := p.Run()
	return err
}

func newExploreModel() *exploreModel {
	m := &exploreModel{sh: newShapes(), state: stateSelectOp}
	m.a = m.sh.Empty.With()
	m.b = m.sh.Empty.With()
	m.ops = []opInfo{
		{name: "set a = empty", run: func(m *exploreModel, _ []int32) (string, error) {
			m.sh.Empty.Set(&m.a)
			return "retagged a to the unit variant", nil
		}},
		{name: "set a = weight(n)", params: []paramInfo{{"n", "i32"}},
			run: func(m *exploreModel, args []int32) (string, error) {
				m.sh.Weight.Set(&m.a, args[0])
				return fmt.Sprintf("a holds weight(%d)", args[0]), nil
			}},
		{name: "set a = point(x, y)", params: []paramInfo{{"x", "i32"}, {"y", "i32"}},
			run: func(m *exploreModel, args []int32) (string, error) {
				m.sh.Point.Set(&m.a, args[0], args[1])
				return fmt.Sprintf("a holds point(%d, %d)", args[0], args[1]), nil
			}},
		{name: "set b = weight(n)", params: []paramInfo{{"n", "i32"}},
			run: func(m *exploreModel, args []int32) (string, error) {
				m.sh.Weight.Set(&m.b, args[0])
				return fmt.Sprintf("b holds weight(%d)", args[0]), nil
			}},
		{name: "set b = point(x, y)", params: []paramInfo{{"x", "i32"}, {"y", "i32"}},
			run: func(m *exploreModel, args []int32) (string, error) {
				m.sh.Point.Set(&m.b, args[0], args[1])
				return fmt.Sprintf("b holds point(%d, %d)", args[0], args[1]), nil
			}},
		{name: "move a into b", run: func(m *exploreModel, _ []int32) (string, error) {
			m.b.MoveFrom(&m.a)
			return "payload transferred, a is now moved-from", nil
		}},
		{name: "clone a into b", run: func(m *exploreModel, _ []int32) (string, error) {
			c := m.a.Clone()
			m.b.MoveFrom(&c)
			return "b holds an independent copy of a", nil
		}},
		{name: "copy b into a", run: func(m *exploreModel, _ []int32) (string, error) {
			m.a.CopyFrom(&m.b)
			return "a now mirrors b", nil
		}},
		{name: "compare a and b", run: func(m *exploreModel, _ []int32) (string, error) {
			eq := m.a.Equal(&m.b)
			ord, ok := m.a.TryCompare(&m.b)
			if !ok {
				return fmt.Sprintf("equal=%v, unordered", eq), nil
			}
			return fmt.Sprintf("equal=%v, compare=%d", eq, ord), nil
		}},
		{name: "take weight out of a", run: func(m *exploreModel, _ []int32) (string, error) {
			v := m.sh.Weight.Take(&m.a)
			return fmt.Sprintf("took %d, a is now moved-from", v), nil
		}},
		{name: "destroy a", run: func(m *exploreModel, _ []int32) (string, error) {
			m.a.Destroy()
			return "a destroyed", nil
		}},
		{name: "destroy b", run: func(m *exploreModel, _ []int32) (string, error) {
			m.b.Destroy()
			return "b destroyed", nil
		}},
	}
	return m
}

func (m *exploreModel) Init() tea.Cmd {
	return nil
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(m.ops)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.callOp
				}
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.callOp

			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectOp
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}
		}

	case opResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
		m.inputs = nil
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *exploreModel) prepareInputs() {
	op := m.ops[m.selected]
	m.inputs = make([]textinput.Model, len(op.params))
	for i, p := range op.params {
		ti := textinput.New()
		ti.Placeholder = p.hint
		ti.Prompt = p.name + ": "
		ti.Width = 20
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

// callOp runs the selected operation, converting invariant aborts into a
// rendered error so a misuse demonstrates the checker instead of killing
// the program.
func (m *exploreModel) callOp() tea.Msg {
	op := m.ops[m.selected]
	args := make([]int32, len(m.inputs))
	for i, input := range m.inputs {
		v, err := strconv.ParseInt(input.Value(), 10, 32)
		if err != nil {
			return opResultMsg{err: fmt.Errorf("argument %s: %w", op.params[i].name, err)}
		}
		args[i] = int32(v)
	}

	result, err := m.runGuarded(op, args)
	return opResultMsg{result: result, err: err}
}

func (m *exploreModel) runGuarded(op opInfo, args []int32) (result string, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		fatal, ok := errors.AsFatal(r)
		if !ok {
			panic(r)
		}
		err = fatal
	}()
	return op.run(m, args)
}

func (m *exploreModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Choice Explorer"))
	b.WriteString(" ")
	b.WriteString(m.sh.S.Name())
	b.WriteString("\n\n")

	b.WriteString("a = ")
	b.WriteString(valueStyle.Render(m.a.String()))
	b.WriteString("\nb = ")
	b.WriteString(valueStyle.Render(m.b.String()))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectOp:
		b.WriteString("Select an operation:\n\n")
		for i, op := range m.ops {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + op.name))
			} else {
				b.WriteString("  " + opStyle.Render(op.name))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter run • q quit"))

	case stateInputArgs:
		op := m.ops[m.selected]
		b.WriteString(fmt.Sprintf("Arguments for %s\n\n", opStyle.Render(op.name)))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter run • esc back"))

	case stateShowResult:
		op := m.ops[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", opStyle.Render(op.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}
