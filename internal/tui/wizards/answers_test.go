package wizards

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/primer/pkg/primer"
)

func drainCmds(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drainCmds(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func hasQuit(msgs []tea.Msg) bool {
	for _, msg := range msgs {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	result, cmd := m.Update(msg)
	return result, cmd
}

// typeAnswer types s into the focused field and presses enter.
func typeAnswer(t *testing.T, m tea.Model, s string) (tea.Model, tea.Cmd) {
	t.Helper()
	for _, r := range s {
		if r == ' ' {
			m, _ = update(t, m, keyMsg("space"))
			continue
		}
		m, _ = update(t, m, keyMsg(string(r)))
	}
	return update(t, m, keyMsg("enter"))
}

func TestQuestions_Order(t *testing.T) {
	q := Questions()
	require.Len(t, q, 6)
	assert.Equal(t, "Please enter the project name: ", q[0])
	assert.Equal(t, "Please enter the project author's GitHub username: ", q[4])
	assert.Equal(t, primer.FullNameQuestion, q[5])
}

func TestAnswersWizard_Submit(t *testing.T) {
	var m tea.Model = NewAnswersWizard()
	m.Init()

	answers := []string{"Acme", "A demo", "https://acme.dev", "a@b.com", "acme", "Ben Vining"}
	var cmd tea.Cmd
	for _, a := range answers {
		m, cmd = typeAnswer(t, m, a)
	}

	assert.True(t, hasQuit(drainCmds(cmd)))
	result := m.(AnswersWizard).Result()
	require.False(t, result.Cancelled)
	for i, q := range Questions() {
		assert.Equal(t, answers[i], result.Answers[q], q)
	}
}

func TestAnswersWizard_MalformedNameBlocksSubmit(t *testing.T) {
	var m tea.Model = NewAnswersWizard()
	m.Init()

	for _, a := range []string{"Acme", "", "", "", ""} {
		m, _ = typeAnswer(t, m, a)
	}
	m, cmd := typeAnswer(t, m, "Cher")

	assert.False(t, hasQuit(drainCmds(cmd)))
	assert.Nil(t, m.(AnswersWizard).Result().Answers)
	assert.Contains(t, m.View(), "author name must include a given and family name")

	m, _ = update(t, m, keyMsg("space"))
	m, _ = typeAnswer(t, m, "Bono")
	result := m.(AnswersWizard).Result()
	assert.Equal(t, "Cher Bono", result.Answers[primer.FullNameQuestion])
	assert.Equal(t, "", result.Answers[primer.SimpleQuestions[1].Text], "empty answers are allowed")
}

func TestAnswersWizard_Cancel(t *testing.T) {
	var m tea.Model = NewAnswersWizard()
	m.Init()

	m, _ = typeAnswer(t, m, "Acme")
	m, cmd := update(t, m, keyMsg("esc"))

	assert.True(t, hasQuit(drainCmds(cmd)))
	assert.True(t, m.(AnswersWizard).Result().Cancelled)
}

func TestAnswersWizard_View(t *testing.T) {
	view := NewAnswersWizard().View()
	assert.Contains(t, view, "Configure this project")
	assert.Contains(t, view, "Please enter the project name")
	assert.NotContains(t, view, "name: \n", "labels drop the prompt suffix")
}
