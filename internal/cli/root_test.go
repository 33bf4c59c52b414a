package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alexanderramin/projects/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, app *App, input string, args ...string) string {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestRootCmd_RunsSession(t *testing.T) {
	app := &App{Projects: &fakeProjects{}}

	out := executeRoot(t, app, "-1\n")

	assert.Equal(t, menuText+selectionPrompt+exitText, out)
}

func TestRootCmd_WelcomeOnlyWhenInteractive(t *testing.T) {
	app := &App{
		Projects:      &fakeProjects{},
		IsInteractive: func() bool { return true },
	}

	out := executeRoot(t, app, "\n")

	banner := strings.Index(out, "PROJECTS")
	require.GreaterOrEqual(t, banner, 0)
	assert.Less(t, banner, strings.Index(out, "These are the available selections"))
	assert.Contains(t, out, "Press Enter at the menu to quit.")
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	root := NewRootCmd(&App{Projects: &fakeProjects{}})
	root.SetArgs([]string{"unexpected"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}

func TestListCmd(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newTestService(database)
	_, err := svc.Create(context.Background(), testutil.NewTestDraft("Paint fence", testutil.WithEstimatedHours("6")))
	require.NoError(t, err)

	out := executeRoot(t, &App{Projects: svc}, "", "list")

	assert.Contains(t, out, "Paint fence")
	assert.Contains(t, out, "6.00")
	assert.NotContains(t, out, "These are the available selections")
}
