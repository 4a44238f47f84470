package views

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CptPotato/gex/internal/common"
	"github.com/CptPotato/gex/internal/git"
	"github.com/CptPotato/gex/internal/ui"
)

func newBranchView(fake *fakeGit) *BranchView {
	v := NewBranchView(fake, ui.DefaultStyles())
	v.SetSize(80, 24)
	return v
}

func loadBranches(t *testing.T, v *BranchView) {
	t.Helper()
	msg := v.refresh()()
	require.IsType(t, branchesMsg{}, msg)
	v.Update(msg)
}

func twoBranches() []git.Branch {
	return []git.Branch{
		{Name: "main", IsCurrent: true},
		{Name: "feature", IsCurrent: false},
	}
}

func TestBranchViewListsBranches(t *testing.T) {
	v := newBranchView(&fakeGit{branches: twoBranches()})
	loadBranches(t, v)

	out := v.View()
	assert.Contains(t, out, "Branches (2)")
	assert.Contains(t, out, "* main")
	assert.Contains(t, out, "feature")
}

func TestBranchViewEnterSwitchesBranch(t *testing.T) {
	fake := &fakeGit{branches: twoBranches()}
	v := newBranchView(fake)
	loadBranches(t, v)

	v.Update(keyMsg("j"))
	_, cmd := v.Update(keyMsg("enter"))
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, checkoutDoneMsg{}, msg)
	assert.Equal(t, []string{"feature"}, fake.checkouts)

	// The done message fans out into an announcement and a refresh.
	_, cmd = v.Update(msg)
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)

	var sawInfo, sawRefresh bool
	for _, c := range batch {
		switch m := c().(type) {
		case common.InfoMsg:
			sawInfo = true
			assert.Contains(t, m.Text, "feature")
		case common.RefreshMsg:
			sawRefresh = true
		}
	}
	assert.True(t, sawInfo)
	assert.True(t, sawRefresh)
}

func TestBranchViewEnterOnCurrentBranchIsNoOp(t *testing.T) {
	fake := &fakeGit{branches: twoBranches()}
	v := newBranchView(fake)
	loadBranches(t, v)

	_, cmd := v.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.Empty(t, fake.checkouts)
}

func TestBranchViewCheckoutFailureSurfaces(t *testing.T) {
	fake := &fakeGit{branches: twoBranches(), checkoutErr: errors.New("dirty tree")}
	v := newBranchView(fake)
	loadBranches(t, v)

	v.Update(keyMsg("j"))
	_, cmd := v.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.IsType(t, common.ErrMsg{}, cmd())
}

func TestBranchViewNewBranchFlow(t *testing.T) {
	fake := &fakeGit{branches: twoBranches()}
	v := newBranchView(fake)
	loadBranches(t, v)

	v.Update(keyMsg("n"))
	require.True(t, v.InputCapture())
	assert.Contains(t, v.View(), "Create New Branch")

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hotfix")})
	_, cmd := v.Update(keyMsg("enter"))
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, checkoutDoneMsg{}, msg)
	assert.Equal(t, []string{"hotfix"}, fake.created)
	assert.False(t, v.InputCapture())
}

func TestBranchViewEscCancelsInput(t *testing.T) {
	fake := &fakeGit{branches: twoBranches()}
	v := newBranchView(fake)
	loadBranches(t, v)

	v.Update(keyMsg("n"))
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("oops")})
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.False(t, v.InputCapture())
	assert.Empty(t, fake.created)
}

func TestBranchViewEmptyNameIsIgnored(t *testing.T) {
	fake := &fakeGit{branches: twoBranches()}
	v := newBranchView(fake)
	loadBranches(t, v)

	v.Update(keyMsg("n"))
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("   ")})
	_, cmd := v.Update(keyMsg("enter"))

	assert.Nil(t, cmd)
	assert.Empty(t, fake.created)
}

func TestBranchViewCursorClampsAfterShrink(t *testing.T) {
	fake := &fakeGit{branches: []git.Branch{
		{Name: "main", IsCurrent: true},
		{Name: "a"},
		{Name: "b"},
	}}
	v := newBranchView(fake)
	loadBranches(t, v)

	v.Update(keyMsg("G"))
	require.Equal(t, 2, v.cursor)

	fake.branches = twoBranches()
	loadBranches(t, v)
	assert.Equal(t, 1, v.cursor)
}
