package view

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/matzehuels/contribchart/pkg/contrib"
	"github.com/matzehuels/contribchart/pkg/errors"
	"github.com/matzehuels/contribchart/pkg/export"
	"github.com/matzehuels/contribchart/pkg/observability"
	"github.com/matzehuels/contribchart/pkg/render/chart"
	"github.com/matzehuels/contribchart/pkg/theme"
)

// DefaultFooter is printed at the bottom of every chart.
const DefaultFooter = "Made by @sallar & friends - github-contributions.now.sh"

// Fetcher retrieves a user's contribution calendar.
type Fetcher interface {
	Fetch(ctx context.Context, username string) (*contrib.Data, error)
}

// Renderer draws a chart onto a canvas.
type Renderer interface {
	Draw(c *chart.Canvas, o chart.Options) error
}

// Sharer publishes a drawn canvas and returns a link to open.
type Sharer interface {
	Share(ctx context.Context, c *chart.Canvas) (string, error)
}

// Controller is the state machine of one session. It is safe for concurrent
// use.
type Controller struct {
	fetcher  Fetcher
	renderer Renderer
	themes   *theme.Registry
	footer   string
	mount    func() *chart.Canvas

	mu     sync.Mutex
	state  State
	status Status
	canvas *chart.Canvas
	owner  string // username the current data was fetched for
}

// Option configures a Controller.
type Option func(*Controller)

// WithThemes sets the theme registry (default [theme.Builtin]).
func WithThemes(r *theme.Registry) Option {
	return func(c *Controller) { c.themes = r }
}

// WithTheme sets the theme selected at start. Unknown ids are ignored.
func WithTheme(id string) Option {
	return func(c *Controller) { c.state.Theme = id }
}

// WithFooter sets the chart footer text.
func WithFooter(text string) Option {
	return func(c *Controller) { c.footer = text }
}

// WithCanvasMount sets how the result canvas is obtained when a chart becomes
// ready. A mount that returns nil leaves nothing to draw on.
func WithCanvasMount(mount func() *chart.Canvas) Option {
	return func(c *Controller) { c.mount = mount }
}

// New creates a Controller in the Idle state with an empty, focused username
// field.
func New(f Fetcher, r Renderer, opts ...Option) *Controller {
	c := &Controller{
		fetcher:  f,
		renderer: r,
		themes:   theme.Builtin,
		footer:   DefaultFooter,
		mount:    chart.NewCanvas,
		state:    State{Theme: theme.Default, Focused: true},
		status:   Idle,
	}
	for _, opt := range opts {
		opt(c)
	}
	if !c.themes.Has(c.state.Theme) {
		c.state.Theme = theme.Default
		if ids := c.themes.IDs(); !c.themes.Has(theme.Default) && len(ids) > 0 {
			c.state.Theme = ids[0]
		}
	}
	return c
}

// State returns a snapshot of the session state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Status returns the current position in the submit flow.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Canvas returns the mounted canvas, or nil when no result is shown.
func (c *Controller) Canvas() *chart.Canvas {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canvas
}

// Themes returns the selectable themes in display order.
func (c *Controller) Themes() []theme.Theme {
	return c.themes.All()
}

// Theme returns the selected theme from the controller's registry.
func (c *Controller) Theme() theme.Theme {
	th, _ := c.themes.Lookup(c.State().Theme)
	return th
}

// SetUsername replaces the username field.
func (c *Controller) SetUsername(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Username = name
}

// CanSubmit reports whether the submit control is enabled.
func (c *Controller) CanSubmit() bool {
	return c.State().CanSubmit()
}

// Focus gives input focus back to the username field.
func (c *Controller) Focus() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Focused = true
}

// Begin enters Loading for the current username and returns it. The caller
// fetches and reports back through [Controller.Resolve].
func (c *Controller) Begin() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.CanSubmit() {
		return "", errors.New(errors.ErrCodeInvalidInput, "username is empty")
	}
	c.state.Loading = true
	c.state.Err = ""
	c.status = Loading
	c.canvas = nil
	return c.state.Username, nil
}

// Fetch runs the fetcher without touching session state.
func (c *Controller) Fetch(ctx context.Context, username string) (*contrib.Data, error) {
	return c.fetcher.Fetch(ctx, username)
}

// Resolve applies the outcome of a fetch started by Begin and returns the
// resulting status.
func (c *Controller) Resolve(ctx context.Context, username string, data *contrib.Data, err error) Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Loading = false
	switch {
	case err != nil:
		c.state.Err = errors.MsgFetchFailed
		c.status = Failed
	case data.Empty():
		c.state.Err = errors.MsgProfileNotFound
		c.state.Data = nil
		c.status = NotFound
	default:
		c.state.Data = data
		c.owner = username
		c.status = Ready
		c.canvas = c.mount()
		c.draw(ctx)
		c.state.Focused = false
	}
	return c.status
}

// Submit runs Begin, the fetch and Resolve in sequence.
func (c *Controller) Submit(ctx context.Context) (Status, error) {
	username, err := c.Begin()
	if err != nil {
		return c.Status(), err
	}
	data, err := c.Fetch(ctx, username)
	return c.Resolve(ctx, username, data, err), nil
}

// ChangeTheme selects a theme and redraws if a chart is shown.
func (c *Controller) ChangeTheme(ctx context.Context, id string) error {
	if !c.themes.Has(id) {
		return errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q", id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Theme = id
	if c.canvas != nil {
		c.draw(ctx)
	}
	return nil
}

// CycleTheme selects the theme step positions away from the current one in
// display order, wrapping at either end, and returns its id.
func (c *Controller) CycleTheme(ctx context.Context, step int) (string, error) {
	id := c.themes.Next(c.State().Theme, step)
	return id, c.ChangeTheme(ctx, id)
}

// Download writes the shown chart as PNG. Without a chart it does nothing.
func (c *Controller) Download(w io.Writer) error {
	return export.Download(c.Canvas(), w)
}

// Share publishes the shown chart through s. Without a chart it does nothing.
func (c *Controller) Share(ctx context.Context, s Sharer) (string, error) {
	canvas := c.Canvas()
	if canvas.Blank() || s == nil {
		return "", nil
	}
	return s.Share(ctx, canvas)
}

// draw must be called with c.mu held.
func (c *Controller) draw(ctx context.Context) {
	if c.canvas == nil {
		c.state.Err = errors.MsgSomethingWrong
		return
	}

	start := time.Now()
	err := c.renderer.Draw(c.canvas, chart.Options{
		Data:       c.state.Data,
		Username:   c.owner,
		Theme:      c.state.Theme,
		FooterText: c.footer,
	})
	observability.Chart().OnDraw(ctx, c.owner, c.state.Theme, time.Since(start), err)
	if err != nil {
		c.state.Err = errors.MsgSomethingWrong
	}
}
