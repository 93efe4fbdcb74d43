package tui

import (
	"strings"

	"github.com/MKhiriev/go-tree-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldCommonName = iota
	fieldScientificName
	fieldDescription
	fieldBenefits
	fieldPlantedDate
	fieldHealthStatus
	fieldPlantedBy
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Common name    ",
	"Scientific name",
	"Description    ",
	"Benefits       ",
	"Planted date   ",
	"Health status  ",
	"Planted by     ",
}

// treeFormModel edits one tree. editingID is zero for a new tree.
type treeFormModel struct {
	inputs     []textinput.Model
	focus      int
	editingID  int64
	original   models.Tree
	submitting bool
	errMsg     string
}

func newTreeFormModel(tree *models.Tree) treeFormModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[fieldBenefits].Placeholder = "comma separated"
	inputs[fieldPlantedDate].Placeholder = models.PlantedDateLayout
	inputs[fieldHealthStatus].Placeholder = models.HealthStatusHealthy
	inputs[fieldCommonName].Focus()

	m := treeFormModel{inputs: inputs}
	if tree == nil {
		return m
	}

	m.editingID = tree.ID
	m.original = *tree
	m.inputs[fieldCommonName].SetValue(tree.CommonName)
	m.inputs[fieldScientificName].SetValue(tree.ScientificName)
	m.inputs[fieldDescription].SetValue(tree.Description)
	m.inputs[fieldBenefits].SetValue(strings.Join(tree.Benefits, ", "))
	m.inputs[fieldPlantedDate].SetValue(tree.PlantedDate)
	m.inputs[fieldHealthStatus].SetValue(tree.HealthStatus)
	m.inputs[fieldPlantedBy].SetValue(tree.PlantedBy)
	return m
}

func (m treeFormModel) value(field int) string {
	return strings.TrimSpace(m.inputs[field].Value())
}

func (m treeFormModel) toTree() models.Tree {
	return models.Tree{
		CommonName:     m.value(fieldCommonName),
		ScientificName: m.value(fieldScientificName),
		Description:    m.value(fieldDescription),
		Benefits:       splitBenefits(m.value(fieldBenefits)),
		PlantedDate:    m.value(fieldPlantedDate),
		HealthStatus:   m.value(fieldHealthStatus),
		PlantedBy:      m.value(fieldPlantedBy),
	}
}

// toUpdate carries only the fields that differ from the record the form
// was opened with.
func (m treeFormModel) toUpdate() models.TreeUpdate {
	edited := m.toTree()
	var u models.TreeUpdate

	if edited.CommonName != m.original.CommonName {
		u.CommonName = &edited.CommonName
	}
	if edited.ScientificName != m.original.ScientificName {
		u.ScientificName = &edited.ScientificName
	}
	if edited.Description != m.original.Description {
		u.Description = &edited.Description
	}
	if strings.Join(edited.Benefits, ",") != strings.Join(m.original.Benefits, ",") {
		u.Benefits = &edited.Benefits
	}
	if edited.PlantedDate != m.original.PlantedDate {
		u.PlantedDate = &edited.PlantedDate
	}
	if edited.HealthStatus != m.original.HealthStatus {
		u.HealthStatus = &edited.HealthStatus
	}
	if edited.PlantedBy != m.original.PlantedBy {
		u.PlantedBy = &edited.PlantedBy
	}
	return u
}

func (m *treeFormModel) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m treeFormModel) updateInput(msg tea.Msg) (treeFormModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m treeFormModel) View() string {
	title := "NEW TREE"
	if m.editingID != 0 {
		title = "EDIT TREE #" + formatID(m.editingID)
	}

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(fieldLabels[i])
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}
	if m.submitting {
		b.WriteString("\nSaving...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab/shift+tab: field │ enter: save │ esc: cancel")
}

func splitBenefits(raw string) []string {
	benefits := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			benefits = append(benefits, part)
		}
	}
	return benefits
}
