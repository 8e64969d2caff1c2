package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/contribchart/pkg/contrib"
	"github.com/matzehuels/contribchart/pkg/errors"
	"github.com/matzehuels/contribchart/pkg/export"
	"github.com/matzehuels/contribchart/pkg/render/chart"
	"github.com/matzehuels/contribchart/pkg/theme"
	"github.com/matzehuels/contribchart/pkg/view"
)

func (c *CLI) tuiCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "tui [username]",
		Short: "Generate charts interactively in the terminal",
		Long: `Open the chart generator in the terminal. Type a username and press enter;
switch themes with tab, save with ctrl+d and share with ctrl+s.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errors.New(errors.ErrCodeInvalidInput, "tui needs an interactive terminal; use 'contribchart generate' instead")
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			cfg = opts.apply(*cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctrl := newController(cfg, newFetcher(cfg))
			m := newChartModel(cmd.Context(), ctrl, newSharer(cfg), opts.output)
			if len(args) == 1 {
				m.setUsername(args[0])
			}

			// Logs would tear the alt screen; keep only errors.
			level := c.Logger.GetLevel()
			c.Logger.SetLevel(log.ErrorLevel)
			defer c.Logger.SetLevel(level)

			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			if err != nil && cmd.Context().Err() != nil {
				return cmd.Context().Err()
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "initial theme")
	cmd.Flags().StringVarP(&opts.output, "output", "o", export.Filename, "file written by ctrl+d")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "pixel scale factor")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "contributions API base URL")
	cmd.RegisterFlagCompletionFunc("theme", themeCompletion)

	return cmd
}

// =============================================================================
// Messages
// =============================================================================

type fetchedMsg struct {
	username string
	data     *contrib.Data
	err      error
}

type savedMsg struct {
	path string
	ok   bool
	err  error
}

type sharedMsg struct {
	link string
	err  error
}

// =============================================================================
// chartModel
// =============================================================================

var (
	tuiThemeStyle    = lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
	tuiSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorCyan).Padding(0, 1)
	tuiButtonStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorGreen).Padding(0, 1)
	tuiDisabledStyle = lipgloss.NewStyle().Foreground(colorDim).Background(lipgloss.Color("236")).Padding(0, 1)
	tuiHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
)

// chartModel is the terminal rendition of the generator page. All state
// lives in the controller; the model only mirrors input focus and keeps
// transient notices.
type chartModel struct {
	ctx    context.Context
	ctrl   *view.Controller
	sharer view.Sharer
	output string

	input  textinput.Model
	spin   spinner.Model
	notice string
}

func newChartModel(ctx context.Context, ctrl *view.Controller, sharer view.Sharer, output string) chartModel {
	ti := textinput.New()
	ti.Placeholder = "Your GitHub Username"
	ti.Prompt = "@ "
	ti.CharLimit = 39
	ti.Focus()

	return chartModel{
		ctx:    ctx,
		ctrl:   ctrl,
		sharer: sharer,
		output: output,
		input:  ti,
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styleIconSpinner)),
	}
}

func (m *chartModel) setUsername(name string) {
	m.input.SetValue(name)
	m.ctrl.SetUsername(name)
}

func (m chartModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case fetchedMsg:
		m.ctrl.Resolve(m.ctx, msg.username, msg.data, msg.err)

	case savedMsg:
		switch {
		case msg.err != nil:
			m.notice = StyleError.Render(iconError + " " + errors.UserMessage(msg.err))
		case msg.ok:
			m.notice = StyleSuccess.Render(iconSuccess+" Saved ") + StyleValue.Render(msg.path)
		}

	case sharedMsg:
		switch {
		case msg.err != nil:
			m.notice = StyleError.Render(iconError + " " + errors.UserMessage(msg.err))
		case msg.link != "":
			m.notice = StyleSuccess.Render(iconSuccess+" Share link ") + StyleLink.Render(msg.link)
		}

	case spinner.TickMsg:
		if m.ctrl.State().Loading {
			m.spin, cmd = m.spin.Update(msg)
		}

	default:
		m.input, cmd = m.input.Update(msg)
	}

	m.syncFocus()
	return m, cmd
}

func (m chartModel) handleKey(msg tea.KeyMsg) (chartModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		username, err := m.ctrl.Begin()
		if err != nil {
			return m, nil
		}
		m.notice = ""
		return m, tea.Batch(m.spin.Tick, fetchCmd(m.ctx, m.ctrl, username))

	case "tab":
		return m, m.cycleTheme(1)
	case "shift+tab":
		return m, m.cycleTheme(-1)

	case "ctrl+d":
		return m, saveCmd(m.ctrl.Canvas(), m.output)
	case "ctrl+s":
		if m.sharer == nil || m.ctrl.Canvas().Blank() {
			return m, nil
		}
		m.notice = StyleDim.Render("Uploading...")
		return m, shareCmd(m.ctx, m.ctrl, m.sharer)
	}

	if !m.input.Focused() {
		switch msg.String() {
		case "right", "l":
			return m, m.cycleTheme(1)
		case "left", "h":
			return m, m.cycleTheme(-1)
		case "/":
			m.ctrl.Focus()
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetUsername(m.input.Value())
	return m, cmd
}

func (m chartModel) cycleTheme(step int) tea.Cmd {
	_, _ = m.ctrl.CycleTheme(m.ctx, step)
	return nil
}

// syncFocus mirrors the controller's focus flag onto the text input.
func (m *chartModel) syncFocus() {
	focused := m.ctrl.State().Focused
	switch {
	case focused && !m.input.Focused():
		m.input.Focus()
	case !focused && m.input.Focused():
		m.input.Blur()
	}
}

func fetchCmd(ctx context.Context, ctrl *view.Controller, username string) tea.Cmd {
	return func() tea.Msg {
		data, err := ctrl.Fetch(ctx, username)
		return fetchedMsg{username: username, data: data, err: err}
	}
}

func saveCmd(c *chart.Canvas, path string) tea.Cmd {
	return func() tea.Msg {
		ok, err := export.SaveFile(c, path)
		return savedMsg{path: path, ok: ok, err: err}
	}
}

func shareCmd(ctx context.Context, ctrl *view.Controller, s view.Sharer) tea.Cmd {
	return func() tea.Msg {
		link, err := ctrl.Share(ctx, s)
		return sharedMsg{link: link, err: err}
	}
}

func (m chartModel) View() string {
	state := m.ctrl.State()
	var b strings.Builder

	b.WriteString(StyleTitle.Render("GitHub Contributions Chart Generator"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("All your contributions in one image!"))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("  ")
	if state.CanSubmit() {
		b.WriteString(tuiButtonStyle.Render("✨ Generate!"))
	} else {
		b.WriteString(tuiDisabledStyle.Render("✨ Generate!"))
	}
	b.WriteString("\n\n")

	for _, t := range m.ctrl.Themes() {
		if t.ID == state.Theme {
			b.WriteString(tuiSelectedStyle.Render(t.Label))
		} else {
			b.WriteString(tuiThemeStyle.Render(t.Label))
		}
	}
	b.WriteString("\n\n")

	if state.Loading {
		b.WriteString(m.spin.View() + " " + StyleDim.Render("Please wait, I'm visiting your profile..."))
		b.WriteString("\n\n")
	}
	if state.Data != nil && !state.Loading && !m.ctrl.Canvas().Blank() {
		b.WriteString(preview(state.Data, m.ctrl.Theme().Palette))
		b.WriteString("\n")
	}
	if state.Err != "" {
		b.WriteString(StyleError.Render(state.Err))
		b.WriteString("\n\n")
	}
	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n\n")
	}

	b.WriteString(StyleDim.Render(helpLine(m.input.Focused(), m.sharer != nil)))
	return b.String()
}

func helpLine(focused, share bool) string {
	keys := []string{"⏎ generate", "tab theme"}
	if !focused {
		keys = append(keys, "←/→ theme", "/ edit")
	}
	keys = append(keys, "ctrl+d save")
	if share {
		keys = append(keys, "ctrl+s share")
	}
	return strings.Join(append(keys, "esc quit"), "  ")
}

// =============================================================================
// Preview
// =============================================================================

// preview draws the most recent year as a grid of colored cells, one column
// per week, on the theme's background.
func preview(data *contrib.Data, p theme.Palette) string {
	if data.Empty() {
		return ""
	}
	y := data.Years[0]
	start, err := time.Parse(contrib.DateLayout, y.Range.Start)
	if err != nil {
		return ""
	}
	end, err := time.Parse(contrib.DateLayout, y.Range.End)
	if err != nil {
		return ""
	}

	intensity := make(map[string]contrib.Intensity)
	for _, d := range data.Days(y) {
		intensity[d.Date.Format(contrib.DateLayout)] = d.Intensity
	}

	var rows [7]strings.Builder
	lead := int(start.Weekday())
	for wd := 0; wd < lead; wd++ {
		rows[wd].WriteString("  ")
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		level := intensity[d.Format(contrib.DateLayout)].Clamp()
		cell := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Grades[level]))
		rows[d.Weekday()].WriteString(cell.Render(iconCell) + " ")
	}

	lines := make([]string, 0, 9)
	lines = append(lines, tuiHeaderStyle.Foreground(lipgloss.Color(p.Text)).Render(chart.YearLabel(y)))
	for i := range rows {
		lines = append(lines, rows[i].String())
	}
	if len(data.Years) > 1 {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color(p.Meta)).
			Render(fmt.Sprintf("+ %d earlier years in the image", len(data.Years)-1)))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(p.Background)).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}
