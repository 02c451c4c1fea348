package dashboard

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"CoinChart/internal/controller"
	"CoinChart/internal/model"
	"CoinChart/internal/render"
)

// View is one dashboard instance: a range controller, the active tab and
// the renderer that draws them. Views never share state.
type View struct {
	ID string

	mu       sync.Mutex
	ctrl     *controller.Controller
	tab      model.Tab
	full     bool
	compare  bool
	renderer *render.Renderer
	log      logrus.FieldLogger
}

// New creates a View on the given tab. An empty tab selects the default.
func New(ctrl *controller.Controller, renderer *render.Renderer, tab model.Tab, log logrus.FieldLogger) (*View, error) {
	if ctrl == nil || renderer == nil {
		return nil, fmt.Errorf("dashboard: controller and renderer are required")
	}
	if tab == "" {
		tab = model.DefaultTab
	}
	if _, err := model.ParseTab(string(tab)); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	id := uuid.NewString()
	return &View{
		ID:       id,
		ctrl:     ctrl,
		tab:      tab,
		renderer: renderer,
		log:      log.WithField("view_id", id),
	}, nil
}

// Controller exposes the range controller backing the view.
func (v *View) Controller() *controller.Controller { return v.ctrl }

// ActiveTab returns the selected tab.
func (v *View) ActiveTab() model.Tab {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tab
}

// SelectTab switches tabs. Unknown input keeps the current tab.
func (v *View) SelectTab(input string) error {
	tab, err := model.ParseTab(input)
	if err != nil {
		v.log.WithField("tab", input).Warn("ignoring unknown tab")
		return err
	}
	v.mu.Lock()
	v.tab = tab
	v.mu.Unlock()
	return nil
}

// ToggleFullscreen flips the fullscreen chart and returns the new state.
func (v *View) ToggleFullscreen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.full = !v.full
	return v.full
}

// ToggleCompare flips the moving-average overlay and returns the new state.
func (v *View) ToggleCompare() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.compare = !v.compare
	return v.compare
}

// Fullscreen reports whether the chart is drawn alone.
func (v *View) Fullscreen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.full
}

// Comparing reports whether the moving-average overlay is on.
func (v *View) Comparing() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.compare
}

// SelectRange parses input and hands it to the controller. Unknown input
// keeps the current range and series.
func (v *View) SelectRange(input string) error {
	r, err := model.ParseRange(input)
	if err != nil {
		v.log.WithField("range", input).Warn("ignoring unknown range")
		return err
	}
	return v.ctrl.ChangeRange(r)
}

// Render draws the view.
func (v *View) Render(w io.Writer) error {
	snap := v.ctrl.Snapshot()
	v.mu.Lock()
	frame := render.Frame{
		ViewID:     v.ID,
		Tab:        v.tab,
		Snapshot:   snap,
		Days:       v.ctrl.Days(snap.Range),
		Fullscreen: v.full,
		Compare:    v.compare,
	}
	v.mu.Unlock()
	return v.renderer.Render(w, frame)
}
