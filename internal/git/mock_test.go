package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockGitClient_WorkTreeNesting(t *testing.T) {
	mock := NewMockGitClient()
	mock.AddRepo("/home/dev/mono")

	inside, err := mock.IsInsideWorkTree("/home/dev/mono")
	require.NoError(t, err)
	require.True(t, inside)

	inside, err = mock.IsInsideWorkTree("/home/dev/mono/libs/demo")
	require.NoError(t, err)
	require.True(t, inside)

	inside, err = mock.IsInsideWorkTree("/home/dev/monorepo")
	require.NoError(t, err)
	require.False(t, inside)
}

func TestMockGitClient_Init(t *testing.T) {
	mock := NewMockGitClient()
	require.NoError(t, mock.Init("/p/demo/"))
	require.Equal(t, []string{"/p/demo"}, mock.Repos())

	mock.InitError = errors.New("git: command not found")
	require.Error(t, mock.Init("/p/other"))
	require.Equal(t, []string{"/p/demo"}, mock.Repos())
}

func TestMockGitClient_ErrorHook(t *testing.T) {
	mock := NewMockGitClient()
	mock.IsInsideWorkTreeError = errors.New("boom")

	_, err := mock.IsInsideWorkTree("/p")
	require.Error(t, err)
}
