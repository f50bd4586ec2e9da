package plugin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingPlugin struct {
	name    string
	initErr error
	log     *[]string
}

func (p *recordingPlugin) Name() string { return p.name }

func (p *recordingPlugin) Initialize(api EditorAPI) error {
	*p.log = append(*p.log, "init "+p.name)
	return p.initErr
}

func (p *recordingPlugin) Shutdown() error {
	*p.log = append(*p.log, "shutdown "+p.name)
	return nil
}

func TestManager_Lifecycle(t *testing.T) {
	var log []string
	m := NewManager()
	require.NoError(t, m.Register(&recordingPlugin{name: "a", log: &log}))
	require.NoError(t, m.Register(&recordingPlugin{name: "b", log: &log, initErr: errors.New("boom")}))
	require.NoError(t, m.Register(&recordingPlugin{name: "c", log: &log}))

	failed := m.InitializePlugins(nil)
	require.Equal(t, []string{"b"}, failed)

	m.ShutdownPlugins()
	require.Equal(t, []string{
		"init a", "init b", "init c",
		"shutdown c", "shutdown b", "shutdown a",
	}, log)
}

func TestManager_RegisterRejects(t *testing.T) {
	var log []string
	m := NewManager()
	require.Error(t, m.Register(&recordingPlugin{name: "", log: &log}))
	require.NoError(t, m.Register(&recordingPlugin{name: "x", log: &log}))
	require.Error(t, m.Register(&recordingPlugin{name: "x", log: &log}))

	p, ok := m.GetPlugin("x")
	require.True(t, ok)
	require.Equal(t, "x", p.Name())
	_, ok = m.GetPlugin("y")
	require.False(t, ok)
}
