package ui

import (
	"fmt"
	"image"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focalpick/pkg/config"
	"focalpick/pkg/export"
	"focalpick/pkg/focal"
	"focalpick/pkg/history"
	"focalpick/pkg/loader"
	"focalpick/pkg/model"
	"focalpick/pkg/suggest"
)

// ReloadMsg asks the model to rescan the media directory. The file watcher
// sends it through Program.Send when images change on disk.
type ReloadMsg struct{}

type mediaReloadedMsg struct {
	items []model.Media
	err   error
}

type imageLoadedMsg struct {
	path string
	img  image.Image
	err  error
}

type exportDoneMsg struct {
	res export.Result
	err error
}

// Model is the root focalpick UI: a sidebar of media files, the picker
// canvas, the percent inputs, and the modal overlays. It owns the
// authoritative focal point of every media item; the canvas controller
// only ever sees it by value and hands back partial updates.
type Model struct {
	items []model.Media
	dir   string

	list    list.Model
	canvas  CanvasModel
	sliders PercentInputsModel
	help    HelpOverlayModel
	jump    *JumpModel

	hist *history.DB
	cfg  config.Config

	currentImg   image.Image
	selectedPath string

	status string
	width  int
	height int
	theme  Theme
}

// NewModel creates the root model over the given media set
func NewModel(items []model.Media, dir string, cfg config.Config, hist *history.DB) Model {
	theme := NewTheme(cfg.Theme, lipgloss.DefaultRenderer())

	listItems := make([]list.Item, len(items))
	for i, m := range items {
		listItems[i] = MediaItem{Media: m}
	}

	l := list.New(listItems, MediaDelegate{Theme: theme}, sidebarWidth, 10)
	l.Title = "media"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	m := Model{
		items:   items,
		dir:     dir,
		list:    l,
		canvas:  NewCanvasModel(theme),
		sliders: NewPercentInputsModel(theme),
		help:    NewHelpOverlayModel(theme),
		hist:    hist,
		cfg:     cfg,
		theme:   theme,
	}
	if len(items) > 0 {
		m.selectedPath = items[0].Path
		m.sliders.Sync(items[0].Focal, m.canvas.Controller().Epoch())
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.selectedPath != "" {
		return loadImageCmd(m.dir, m.selectedPath)
	}
	return nil
}

func (m Model) currentPath() (string, bool) {
	item, ok := m.list.SelectedItem().(MediaItem)
	if !ok {
		return "", false
	}
	return item.Media.Path, true
}

func (m *Model) currentMedia() *model.Media {
	path, ok := m.currentPath()
	if !ok {
		return nil
	}
	for i := range m.items {
		if m.items[i].Path == path {
			return &m.items[i]
		}
	}
	return nil
}

func (m Model) currentFocal() focal.FocalPoint {
	if media := findMedia(m.items, m.selectedPath); media != nil {
		return media.Focal
	}
	return focal.FocalPoint{}
}

func findMedia(items []model.Media, path string) *model.Media {
	for i := range items {
		if items[i].Path == path {
			return &items[i]
		}
	}
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case ReloadMsg:
		return m, reloadCmd(m.dir)

	case mediaReloadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("reload failed: %v", msg.err)
			return m, nil
		}
		m.replaceItems(msg.items)
		m.status = fmt.Sprintf("reloaded %d files", len(msg.items))
		if path, ok := m.currentPath(); ok && path != "" {
			return m, loadImageCmd(m.dir, path)
		}
		return m, nil

	case imageLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("decode failed: %v", msg.err)
			return m, nil
		}
		if msg.path != m.selectedPath {
			return m, nil // stale load from a fast selection change
		}
		m.currentImg = msg.img
		m.canvas.SetImage(msg.img)
		if media := findMedia(m.items, msg.path); media != nil {
			b := msg.img.Bounds()
			media.PixelWidth = b.Dx()
			media.PixelHeight = b.Dy()
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("export failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("exported %d, skipped %d → %s", msg.res.Exported, msg.res.Skipped, m.cfg.ExportDir)
		}
		return m, nil
	}

	// Modal overlays swallow input while visible.
	if m.jump != nil {
		return m.updateJump(msg)
	}
	if m.help.IsVisible() {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			// Wheel drives the sidebar, but not while a drag gesture holds
			// the scroll lock.
			if m.canvas.ScrollEnabled() {
				var cmd tea.Cmd
				m.list, cmd = m.list.Update(msg)
				cmds = append(cmds, cmd)
				cmds = append(cmds, m.afterSelectionChange())
			}
			return m, tea.Batch(cmds...)
		}

		var cmd tea.Cmd
		m.canvas, cmd = m.canvas.Update(msg)
		cmds = append(cmds, cmd)
		m.drainCommits(model.SourceDrag)
		return m, tea.Batch(cmds...)
	}

	// Remaining keys go to the focused component.
	if m.sliders.Focused() {
		var cmd tea.Cmd
		m.sliders, cmd = m.sliders.Update(msg)
		cmds = append(cmds, cmd)
		if commit := m.sliders.TakeCommit(); commit != nil {
			m.canvas.Controller().SliderChanged(commit.Axis, commit.Percent)
			m.drainCommits(model.SourceSlider)
		}
	} else if _, ok := msg.(tea.KeyMsg); ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
		cmds = append(cmds, m.afterSelectionChange())
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes global keybindings. The bool return is false when the
// key should fall through to the focused component.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		if m.sliders.Focused() && msg.String() == "q" {
			return m, nil, false // typing into an input
		}
		m.saveSidecar()
		return m, tea.Quit, true

	case "tab":
		m.sliders.FocusNext()
		return m, nil, true

	case "esc":
		if m.sliders.Focused() {
			m.sliders.Blur()
			return m, nil, true
		}
		return m, nil, false

	case "?":
		if !m.sliders.Focused() {
			m.help.Toggle()
			return m, nil, true
		}

	case "/":
		if !m.sliders.Focused() {
			jump := NewJumpModel(m.items, m.theme)
			jump.SetSize(m.width, m.height)
			m.jump = &jump
			return m, nil, true
		}

	case "a":
		if !m.sliders.Focused() {
			return m.suggestFocal()
		}

	case "u":
		if !m.sliders.Focused() {
			return m.undo()
		}

	case "c":
		if !m.sliders.Focused() {
			return m.copyFilter()
		}

	case "e":
		if !m.sliders.Focused() {
			m.status = "exporting..."
			return m, exportCmd(m.items, m.dir, m.cfg), true
		}

	case "r":
		if !m.sliders.Focused() {
			return m, reloadCmd(m.dir), true
		}
	}
	return m, nil, false
}

func (m Model) updateJump(msg tea.Msg) (tea.Model, tea.Cmd) {
	jump, cmd := m.jump.Update(msg)
	m.jump = &jump

	if jump.IsCancelled() {
		m.jump = nil
		return m, cmd
	}
	if jump.IsConfirmed() {
		path := jump.SelectedPath()
		m.jump = nil
		for i, item := range m.list.Items() {
			if mi, ok := item.(MediaItem); ok && mi.Media.Path == path {
				m.list.Select(i)
				break
			}
		}
		return m, tea.Batch(cmd, m.afterSelectionChange())
	}
	return m, cmd
}

// afterSelectionChange reloads the canvas and inputs when the sidebar
// selection moved to a different file.
func (m *Model) afterSelectionChange() tea.Cmd {
	path, ok := m.currentPath()
	if !ok || path == m.selectedPath {
		return nil
	}
	m.selectedPath = path
	m.currentImg = nil
	m.canvas.SetImage(nil)
	m.sliders.ForceSync(m.currentFocal())
	return loadImageCmd(m.dir, path)
}

// drainCommits merges the controller's pending partial updates into the
// authoritative focal point. Clamping happens here, on merge: the
// controller reports drags that end outside the container as fractions
// outside [0,1], and the owner decides what to keep.
func (m *Model) drainCommits(source model.Source) {
	updates := m.canvas.TakeCommits()
	if len(updates) == 0 {
		return
	}

	media := m.currentMedia()
	if media == nil {
		return
	}

	changed := false
	for _, u := range updates {
		if u.IsZero() {
			continue
		}
		media.SetFocal(u.Apply(media.Focal).Clamp(), time.Now())
		changed = true
	}
	if !changed {
		return
	}

	m.recordHistory(media, source)
	m.saveSidecar()
	m.refreshListItem(media)
	m.sliders.Sync(media.Focal, m.canvas.Controller().Epoch())
	m.status = fmt.Sprintf("focal %d%%, %d%%",
		focal.FractionToPercent(media.Focal.X),
		focal.FractionToPercent(media.Focal.Y))
}

func (m *Model) recordHistory(media *model.Media, source model.Source) {
	if m.hist == nil {
		return
	}
	r := model.FocalRecord{
		MediaPath: media.Path,
		X:         media.Focal.X,
		Y:         media.Focal.Y,
		Source:    source,
		CreatedAt: time.Now(),
	}
	if err := m.hist.Append(&r); err != nil {
		m.status = fmt.Sprintf("history write failed: %v", err)
		return
	}
	m.hist.Prune(media.Path, m.cfg.HistoryKeep)
}

func (m *Model) saveSidecar() {
	if err := loader.SaveSidecar(m.dir, m.items); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
	}
}

func (m *Model) refreshListItem(media *model.Media) {
	for i, item := range m.list.Items() {
		if mi, ok := item.(MediaItem); ok && mi.Media.Path == media.Path {
			m.list.SetItem(i, MediaItem{Media: *media})
			return
		}
	}
}

func (m *Model) replaceItems(items []model.Media) {
	// Preserve focal points committed this session for files that still
	// exist; the sidecar on disk already has them, but the reload may have
	// raced our own save.
	for i := range items {
		if old := findMedia(m.items, items[i].Path); old != nil && old.HasFocal {
			items[i] = *old
		}
	}
	m.items = items

	listItems := make([]list.Item, len(items))
	for i, mi := range items {
		listItems[i] = MediaItem{Media: mi}
	}
	m.list.SetItems(listItems)

	if findMedia(items, m.selectedPath) == nil {
		m.selectedPath = ""
		m.currentImg = nil
		m.canvas.SetImage(nil)
	}
}

func (m Model) suggestFocal() (tea.Model, tea.Cmd, bool) {
	if m.currentImg == nil {
		m.status = "no image loaded yet"
		return m, nil, true
	}
	p, confident, err := suggest.FocalPoint(m.currentImg)
	if err != nil {
		m.status = fmt.Sprintf("suggest failed: %v", err)
		return m, nil, true
	}

	media := m.currentMedia()
	if media == nil {
		return m, nil, true
	}
	media.SetFocal(p, time.Now())
	m.recordHistory(media, model.SourceSuggest)
	m.saveSidecar()
	m.refreshListItem(media)
	m.sliders.ForceSync(media.Focal)

	if confident {
		m.status = "suggested focal point from edge energy"
	} else {
		m.status = "image looks flat; suggested center"
	}
	return m, nil, true
}

func (m Model) undo() (tea.Model, tea.Cmd, bool) {
	media := m.currentMedia()
	if media == nil || m.hist == nil {
		return m, nil, true
	}
	prev, ok, err := m.hist.Previous(media.Path)
	if err != nil {
		m.status = fmt.Sprintf("undo failed: %v", err)
		return m, nil, true
	}
	if !ok {
		m.status = "nothing to undo"
		return m, nil, true
	}

	media.SetFocal(focal.FocalPoint{X: prev.X, Y: prev.Y}, time.Now())
	m.recordHistory(media, prev.Source)
	m.saveSidecar()
	m.refreshListItem(media)
	m.sliders.ForceSync(media.Focal)
	m.status = "restored previous focal point"
	return m, nil, true
}

func (m Model) copyFilter() (tea.Model, tea.Cmd, bool) {
	media := m.currentMedia()
	if media == nil || !media.HasFocal {
		m.status = "no focal point to copy"
		return m, nil, true
	}
	// The filter string format understood by focal-aware crop services.
	s := fmt.Sprintf("focal(%.3fx%.3f)", media.Focal.X, media.Focal.Y)
	if err := clipboard.WriteAll(s); err != nil {
		m.status = fmt.Sprintf("clipboard failed: %v", err)
		return m, nil, true
	}
	m.status = "copied " + s
	return m, nil, true
}

// layout distributes the window between sidebar, canvas, inputs and status
// bar, and tells the controller the canvas size.
func (m *Model) layout() {
	contentH := m.height - statusBarRows - sliderRows
	if contentH < 3 {
		contentH = 3
	}
	canvasW := m.width - sidebarWidth - SpaceXS
	if canvasW < 10 {
		canvasW = 10
	}

	m.list.SetSize(sidebarWidth, contentH)
	m.canvas.SetLayout(sidebarWidth+SpaceXS, 0, canvasW, contentH)
	m.help.SetSize(m.width, m.height)
	if m.jump != nil {
		m.jump.SetSize(m.width, m.height)
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	if m.help.IsVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.help.View())
	}
	if m.jump != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.jump.View())
	}

	p := m.currentFocal()

	sidebar := m.theme.Renderer.NewStyle().Width(sidebarWidth).Render(m.list.View())
	content := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", m.canvas.View(p))

	sliderLine := m.theme.Renderer.NewStyle().Padding(1, 0).Render(m.sliders.View(p))

	return lipgloss.JoinVertical(lipgloss.Left, content, sliderLine, m.statusLine())
}

func (m Model) statusLine() string {
	left := m.selectedPath
	if media := findMedia(m.items, m.selectedPath); media != nil && media.PixelWidth > 0 {
		left = fmt.Sprintf("%s  %dx%d", media.Path, media.PixelWidth, media.PixelHeight)
	}
	if left == "" {
		left = "no media selected"
	}

	style := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)
	statusStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Info)
	line := style.Render(Truncate(left, m.width/2))
	if m.status != "" {
		line += "  " + statusStyle.Render(Truncate(m.status, m.width/2-SpaceSM))
	}
	return line
}

func loadImageCmd(dir, path string) tea.Cmd {
	return func() tea.Msg {
		img, err := loader.Decode(dir, path)
		return imageLoadedMsg{path: path, img: img, err: err}
	}
}

func reloadCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		items, err := loader.LoadMedia(dir)
		return mediaReloadedMsg{items: items, err: err}
	}
}

func exportCmd(items []model.Media, dir string, cfg config.Config) tea.Cmd {
	snapshot := make([]model.Media, len(items))
	for i, it := range items {
		snapshot[i] = it.Clone()
	}
	return func() tea.Msg {
		res, err := export.Bundle(snapshot, export.Options{
			OutDir: fmt.Sprintf("%s/%s", dir, cfg.ExportDir),
			Width:  cfg.ExportWidth,
			Height: cfg.ExportHeight,
		})
		return exportDoneMsg{res: res, err: err}
	}
}
