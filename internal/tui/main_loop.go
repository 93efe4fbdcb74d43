package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-tree-keeper/internal/connectivity"
	"github.com/MKhiriev/go-tree-keeper/internal/service"
	"github.com/MKhiriev/go-tree-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
)

type mainLoopModel struct {
	ctx         context.Context
	coordinator service.SyncCoordinator
	events      <-chan connectivity.Event
	baseURL     string
	buildInfo   models.AppBuildInfo

	// copyText writes to the system clipboard.
	copyText func(string) error

	screen  screen
	trees   []models.Tree
	idx     int
	detail  models.Tree
	form    treeFormModel
	online  bool
	loading bool
	syncing bool
	spinner spinner.Model

	status string
	errMsg string

	showBuildInfo bool
}

func newMainLoopModel(ctx context.Context, coordinator service.SyncCoordinator, monitor connectivity.Monitor, baseURL string, buildInfo models.AppBuildInfo) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:         ctx,
		coordinator: coordinator,
		events:      monitor.Subscribe(),
		baseURL:     baseURL,
		buildInfo:   buildInfo,
		copyText:    clipboard.WriteAll,
		online:      monitor.Online(),
		loading:     true,
		spinner:     s,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadTrees(), m.cmdWaitConnectivity(), m.spinner.Tick)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case connectivityMsg:
		m.online = msg.online
		return m, m.cmdWaitConnectivity()
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.trees = msg.trees
		m.idx = clamp(m.idx, 0, len(m.trees)-1)
		return m, nil
	case treeLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.detail = msg.tree
		m.errMsg = ""
		return m, nil
	case createDoneMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenList
		m.status = fmt.Sprintf("Tree #%d created: %s", msg.tree.ID, models.TreeURL(m.baseURL, msg.tree.ID))
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadTrees()
	case updateDoneMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenList
		m.status = "Tree updated"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadTrees()
	case sweepDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Sync finished: %d pushed, %d failed", msg.report.Attempted-msg.report.Failed, msg.report.Failed)
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadTrees()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenForm {
			var cmd tea.Cmd
			m.form, cmd = m.form.updateInput(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenForm:
		return m.updateForm(keyMsg)
	case screenDetail:
		return m.updateDetail(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.idx = clamp(m.idx-1, 0, len(m.trees)-1)
	case key.Matches(msg, keys.down):
		m.idx = clamp(m.idx+1, 0, len(m.trees)-1)
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(msg, keys.newTree):
		m.form = newTreeFormModel(nil)
		m.screen = screenForm
	case key.Matches(msg, keys.sweep):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = ""
		m.errMsg = ""
		return m, m.cmdSweep()
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadTrees()
	case key.Matches(msg, keys.enter):
		tree, ok := m.current()
		if !ok {
			m.status = "No trees yet"
			return m, nil
		}
		m.detail = tree
		m.screen = screenDetail
		return m, m.cmdGetTree(tree.ID)
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		m.errMsg = ""
	case key.Matches(msg, keys.edit):
		tree := m.detail
		m.form = newTreeFormModel(&tree)
		m.screen = screenForm
	case key.Matches(msg, keys.refresh):
		return m, m.cmdGetTree(m.detail.ID)
	case key.Matches(msg, keys.copyURL):
		if err := m.copyText(models.TreeURL(m.baseURL, m.detail.ID)); err != nil {
			m.errMsg = "Copy failed: " + err.Error()
			return m, nil
		}
		m.status = "Tree page address copied"
	}
	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		if m.form.editingID != 0 {
			m.screen = screenDetail
		} else {
			m.screen = screenList
		}
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.moveFocus(-1)
		return m, nil
	case key.Matches(msg, keys.enter):
		m.form.errMsg = ""
		if m.form.editingID == 0 {
			m.form.submitting = true
			return m, m.cmdCreate(m.form.toTree())
		}

		update := m.form.toUpdate()
		if update.IsEmpty() {
			m.screen = screenDetail
			return m, nil
		}
		m.form.submitting = true
		return m, m.cmdUpdate(m.form.editingID, update)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.updateInput(msg)
	return m, cmd
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenForm:
		return m.form.View()
	case screenDetail:
		return m.viewDetail()
	}

	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo) + "\n\n" + helpStyle.Render("esc: back"))
	}
	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	b.WriteString(m.connectivityLine())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading trees...\n")
	case len(m.trees) == 0:
		b.WriteString("No trees yet\n")
	default:
		b.WriteString("  ID    │ Common name          │ Scientific name          │ Age\n")
		b.WriteString("────────┼──────────────────────┼──────────────────────────┼─────\n")
		for i, tree := range m.trees {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			fmt.Fprintf(&b, "%s %-5d │ %-20s │ %-24s │ %d\n",
				cursor,
				tree.ID,
				fitText(tree.CommonName, 20),
				fitText(tree.ScientificName, 24),
				tree.Age,
			)
		}
	}

	m.writeStatus(&b)

	return renderPage("TREES", strings.TrimRight(b.String(), "\n"),
		"n: new │ enter: open │ s: sync │ r: reload │ v: version │ ↑/↓: move")
}

func (m mainLoopModel) viewDetail() string {
	t := m.detail

	var b strings.Builder
	fmt.Fprintf(&b, "Common name     │ %s\n", t.CommonName)
	fmt.Fprintf(&b, "Scientific name │ %s\n", t.ScientificName)
	fmt.Fprintf(&b, "Description     │ %s\n", valueOrDash(t.Description))
	fmt.Fprintf(&b, "Benefits        │ %s\n", valueOrDash(strings.Join(t.Benefits, ", ")))
	fmt.Fprintf(&b, "Planted         │ %s (%d y)\n", valueOrDash(t.PlantedDate), t.Age)
	fmt.Fprintf(&b, "Health          │ %s\n", valueOrDash(t.HealthStatus))
	fmt.Fprintf(&b, "Planted by      │ %s\n", valueOrDash(t.PlantedBy))
	fmt.Fprintf(&b, "Images          │ %d\n", len(t.Images))
	qr := "no"
	if t.QRCode != nil && *t.QRCode != "" {
		qr = "yes"
	}
	fmt.Fprintf(&b, "QR attached     │ %s\n", qr)
	fmt.Fprintf(&b, "Page            │ %s\n", models.TreeURL(m.baseURL, t.ID))

	m.writeStatus(&b)

	return renderPage("TREE #"+formatID(t.ID), strings.TrimRight(b.String(), "\n"),
		"e: edit │ c: copy page address │ r: reload │ esc: back")
}

func (m mainLoopModel) connectivityLine() string {
	line := offlineStyle.Render("● offline")
	if m.online {
		line = onlineStyle.Render("● online")
	}
	if m.syncing {
		line += "  " + m.spinner.View() + " syncing..."
	}
	return line
}

func (m mainLoopModel) writeStatus(b *strings.Builder) {
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
}

func (m mainLoopModel) current() (models.Tree, bool) {
	if len(m.trees) == 0 || m.idx < 0 || m.idx >= len(m.trees) {
		return models.Tree{}, false
	}
	return m.trees[m.idx], true
}

func (m mainLoopModel) cmdLoadTrees() tea.Cmd {
	ctx, coordinator := m.ctx, m.coordinator
	return func() tea.Msg {
		trees, err := coordinator.List(ctx)
		return listLoadedMsg{trees: trees, err: err}
	}
}

func (m mainLoopModel) cmdGetTree(id int64) tea.Cmd {
	ctx, coordinator := m.ctx, m.coordinator
	return func() tea.Msg {
		tree, err := coordinator.Get(ctx, id)
		return treeLoadedMsg{tree: tree, err: err}
	}
}

func (m mainLoopModel) cmdCreate(tree models.Tree) tea.Cmd {
	ctx, coordinator := m.ctx, m.coordinator
	return func() tea.Msg {
		created, err := coordinator.Create(ctx, tree)
		return createDoneMsg{tree: created, err: err}
	}
}

func (m mainLoopModel) cmdUpdate(id int64, update models.TreeUpdate) tea.Cmd {
	ctx, coordinator := m.ctx, m.coordinator
	return func() tea.Msg {
		return updateDoneMsg{err: coordinator.Update(ctx, id, update)}
	}
}

func (m mainLoopModel) cmdSweep() tea.Cmd {
	ctx, coordinator := m.ctx, m.coordinator
	return func() tea.Msg {
		report, err := coordinator.Sweep(ctx)
		return sweepDoneMsg{report: report, err: err}
	}
}

// cmdWaitConnectivity delivers the next monitor event. A closed
// subscription ends the wait for good.
func (m mainLoopModel) cmdWaitConnectivity() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return connectivityMsg{online: ev.Online}
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
