package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/task-cli/internal/domain"
	"github.com/runoshun/task-cli/internal/testutil"
	"github.com/runoshun/task-cli/internal/usecase"
)

func TestInitConfig_Execute(t *testing.T) {
	t.Run("creates project config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.ProjectConfigInfo = domain.ConfigInfo{Path: "/work/task-cli.toml"}

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/work/task-cli.toml", out.Path)
		assert.True(t, manager.InitProjectCalled)
		assert.False(t, manager.InitGlobalCalled)
	})

	t.Run("creates global config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.GlobalConfigInfo = domain.ConfigInfo{Path: "/home/test/.config/task-cli/config.toml"}

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{Global: true})

		require.NoError(t, err)
		assert.Equal(t, "/home/test/.config/task-cli/config.toml", out.Path)
		assert.False(t, manager.InitProjectCalled)
		assert.True(t, manager.InitGlobalCalled)
	})

	t.Run("returns error when project config already exists", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.ProjectConfigInfo = domain.ConfigInfo{Path: "/work/task-cli.toml", Exists: true}
		manager.InitProjectErr = domain.ErrConfigExists

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
