package linker

import (
	"bytes"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/testutil"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/arthur-debert/dotlink/pkg/ui"
	"github.com/arthur-debert/dotlink/pkg/ui/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func osFS() types.FS {
	return filesystem.NewOS()
}

// failingFS fails Symlink for one target with the given error
type failingFS struct {
	types.FS
	target string
	err    error
}

func (f *failingFS) Symlink(oldname, newname string) error {
	if newname == f.target {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: f.err}
	}
	return f.FS.Symlink(oldname, newname)
}

func newLinker(t *testing.T, p *paths.Paths, fsys types.FS, out *bytes.Buffer, dryRun bool) *Linker {
	t.Helper()

	l, err := New(Options{
		Paths:   p,
		Links:   defaultLinks(t),
		FS:      fsys,
		Printer: output.NewPrinter(out, ui.FormatText),
		DryRun:  dryRun,
	})
	require.NoError(t, err)
	return l
}

func noticeLines(out *bytes.Buffer) []string {
	text := strings.TrimRight(out.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func TestRun_CreatesAllLinks(t *testing.T) {
	tr := testutil.NewTree(t).WithShared().WithProfile("work")
	var out bytes.Buffer

	summary, err := newLinker(t, tr.Paths(), osFS(), &out, false).Run("work")
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Created())
	assert.Equal(t, 0, summary.Skipped())
	assert.Empty(t, out.String(), "successful links are silent")

	testutil.AssertSymlink(t, tr.Home(".zshrc"), tr.Install(".zshrc"))
	testutil.AssertSymlink(t, tr.Home(".zsh_history"), tr.Install(".zsh_history"))
	testutil.AssertSymlink(t, tr.Home(".aws"), tr.Install("work", ".aws"))
	testutil.AssertSymlink(t, tr.Home(".gitconfig"), tr.Install("work", ".gitconfig"))

	// Links resolve to the profile content
	testutil.AssertFileContent(t, tr.Install("work", ".gitconfig"), testutil.ReadFile(t, tr.Home(".gitconfig")))
}

func TestRun_SecondRunReportsEveryTarget(t *testing.T) {
	tr := testutil.NewTree(t).WithShared().WithProfile("work")

	var first bytes.Buffer
	_, err := newLinker(t, tr.Paths(), osFS(), &first, false).Run("work")
	require.NoError(t, err)

	var second bytes.Buffer
	summary, err := newLinker(t, tr.Paths(), osFS(), &second, false).Run("work")
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Created())
	assert.Equal(t, 4, summary.Skipped())
	assert.Equal(t, []string{
		"symlink: file " + tr.Home(".zshrc") + " already exists",
		"symlink: file " + tr.Home(".zsh_history") + " already exists",
		"symlink: file " + tr.Home(".aws") + " already exists",
		"symlink: file " + tr.Home(".gitconfig") + " already exists",
	}, noticeLines(&second))
}

func TestRun_OnePreexistingTarget(t *testing.T) {
	tr := testutil.NewTree(t).WithShared().WithProfile("work")
	testutil.CreateFile(t, tr.HomeDir, ".gitconfig", "[user]\n\tname = me\n")

	var out bytes.Buffer
	summary, err := newLinker(t, tr.Paths(), osFS(), &out, false).Run("work")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Created())
	assert.Equal(t, []string{tr.Home(".gitconfig")}, summary.Targets(types.OutcomeAlreadyExists))
	assert.Equal(t, []string{"symlink: file " + tr.Home(".gitconfig") + " already exists"}, noticeLines(&out))

	testutil.AssertFileContent(t, tr.Home(".gitconfig"), "[user]\n\tname = me\n")
	testutil.AssertSymlink(t, tr.Home(".aws"), tr.Install("work", ".aws"))
}

func TestRun_ProfileWithSeparator(t *testing.T) {
	tr := testutil.NewTree(t).WithShared().WithProfile("clients/acme")

	var out bytes.Buffer
	_, err := newLinker(t, tr.Paths(), osFS(), &out, false).Run("clients/acme")
	require.NoError(t, err)

	testutil.AssertSymlink(t, tr.Home(".aws"), tr.InstallDir+"/clients/acme/.aws")
	testutil.AssertSymlink(t, tr.Home(".gitconfig"), tr.InstallDir+"/clients/acme/.gitconfig")
}

func TestRun_TraversalProfileKeptVerbatim(t *testing.T) {
	tr := testutil.NewTree(t).WithShared()

	var out bytes.Buffer
	summary, err := newLinker(t, tr.Paths(), osFS(), &out, false).Run("../elsewhere")
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Created(), "missing profile sources still produce dangling links")
	testutil.AssertSymlink(t, tr.Home(".aws"), tr.InstallDir+"/../elsewhere/.aws")
}

func TestRun_AbsoluteProfileReplacesInstallDir(t *testing.T) {
	tr := testutil.NewTree(t).WithShared()
	elsewhere := t.TempDir()

	var out bytes.Buffer
	summary, err := newLinker(t, tr.Paths(), osFS(), &out, false).Run(elsewhere)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Created())
	testutil.AssertSymlink(t, tr.Home(".zshrc"), tr.Install(".zshrc"))
	testutil.AssertSymlink(t, tr.Home(".aws"), elsewhere+"/.aws")
	testutil.AssertSymlink(t, tr.Home(".gitconfig"), elsewhere+"/.gitconfig")
}

func TestRun_EmptyProfile(t *testing.T) {
	tr := testutil.NewTree(t).WithShared()

	var out bytes.Buffer
	summary, err := newLinker(t, tr.Paths(), osFS(), &out, false).Run("")
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	testutil.AssertNotExists(t, tr.Home(".zshrc"))
}

func TestRun_FailureStopsThePass(t *testing.T) {
	tr := testutil.NewTree(t).WithShared().WithProfile("work")
	fsys := &failingFS{FS: osFS(), target: tr.Home(".aws"), err: fs.ErrPermission}

	var out bytes.Buffer
	summary, err := newLinker(t, tr.Paths(), fsys, &out, false).Run("work")
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrSymlinkCreate))
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, tr.Home(".aws"), errors.GetErrorDetails(err)["target"])

	require.NotNil(t, summary)
	require.Len(t, summary.Results, 3, "the fourth link is never attempted")
	assert.Equal(t, types.OutcomeFailed, summary.Results[2].Outcome)

	// Links made before the failure stay
	testutil.AssertSymlink(t, tr.Home(".zshrc"), tr.Install(".zshrc"))
	testutil.AssertSymlink(t, tr.Home(".zsh_history"), tr.Install(".zsh_history"))
	testutil.AssertNotExists(t, tr.Home(".aws"))
	testutil.AssertNotExists(t, tr.Home(".gitconfig"))
	assert.Empty(t, out.String())
}

func TestRun_MissingHomeDirFails(t *testing.T) {
	tr := testutil.NewTree(t).WithShared().WithProfile("work")
	p, err := paths.New(tr.InstallDir, tr.Home("not-created"))
	require.NoError(t, err)

	var out bytes.Buffer
	summary, err := newLinker(t, p, osFS(), &out, false).Run("work")
	require.Error(t, err)

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Len(t, summary.Results, 1)
}

func TestRun_InMemory(t *testing.T) {
	fsys := testutil.NewTestFS()
	fsys.Dir(t, "/home/u")
	fsys.File(t, "/home/u/.zsh_history", "old")

	p, err := paths.New("/opt/dotfiles", "/home/u")
	require.NoError(t, err)

	var out bytes.Buffer
	summary, err := newLinker(t, p, fsys, &out, false).Run("home")
	require.NoError(t, err)

	assert.Equal(t, []string{"/home/u/.zshrc", "/home/u/.aws", "/home/u/.gitconfig"}, summary.Targets(types.OutcomeCreated))
	assert.Equal(t, "symlink: file /home/u/.zsh_history already exists\n", out.String())

	assert.Equal(t, "/opt/dotfiles/home/.aws", fsys.LinkTarget(t, "/home/u/.aws"))
}

func TestRun_DryRun(t *testing.T) {
	tr := testutil.NewTree(t).WithShared().WithProfile("work")
	testutil.CreateFile(t, tr.HomeDir, ".zshrc", "mine\n")

	var out bytes.Buffer
	summary, err := newLinker(t, tr.Paths(), osFS(), &out, true).Run("work")
	require.NoError(t, err)

	assert.True(t, summary.DryRun)
	assert.Equal(t, 0, summary.Created())
	assert.Equal(t, 3, summary.Count(types.OutcomePlanned))
	assert.Equal(t, []string{
		"symlink: file " + tr.Home(".zshrc") + " already exists",
		"would link " + tr.Home(".zsh_history") + " -> " + tr.Install(".zsh_history"),
		"would link " + tr.Home(".aws") + " -> " + tr.Install("work", ".aws"),
		"would link " + tr.Home(".gitconfig") + " -> " + tr.Install("work", ".gitconfig"),
	}, noticeLines(&out))

	testutil.AssertNotExists(t, tr.Home(".zsh_history"))
	testutil.AssertNotExists(t, tr.Home(".aws"))
	testutil.AssertFileContent(t, tr.Home(".zshrc"), "mine\n")
}

func TestNew_RequiresDependencies(t *testing.T) {
	p, err := paths.New("/opt/dotfiles", "/home/u")
	require.NoError(t, err)
	printer := output.NewPrinter(&bytes.Buffer{}, ui.FormatText)

	_, err = New(Options{FS: osFS(), Printer: printer})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))

	_, err = New(Options{Paths: p, Printer: printer})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))

	_, err = New(Options{Paths: p, FS: osFS()})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
}
