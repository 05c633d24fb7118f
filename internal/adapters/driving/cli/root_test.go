package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludwa6/customer-support/internal/adapters/driven/storage/memory"
	"github.com/ludwa6/customer-support/internal/config"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "supportctl", rootCmd.Use)
}

func TestRootCmd_HasCommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "setup")
	assert.Contains(t, names, "databases")
	assert.Contains(t, names, "categories")
	assert.Contains(t, names, "articles")
	assert.Contains(t, names, "faqs")
	assert.Contains(t, names, "tickets")
	assert.Contains(t, names, "version")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, &mockSetupService{}, &mockContentService{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "supportctl version dev")
}

func TestCommands_ErrorWithoutToken(t *testing.T) {
	t.Setenv("SUPPORT_NOTION_TOKEN", "")
	t.Setenv("SUPPORT_NOTION_PAGE_URL", "")

	oldConfigDir := configDirFlag
	configDirFlag = t.TempDir()
	t.Cleanup(func() { configDirFlag = oldConfigDir })

	oldConfigStore, oldMappingStore := configStore, mappingStore
	configStore, mappingStore = memory.NewConfigStore(), memory.NewMappingStore()
	t.Cleanup(func() { configStore, mappingStore = oldConfigStore, oldMappingStore })

	for _, args := range [][]string{
		{"setup"}, {"databases"}, {"categories"}, {"articles"}, {"faqs"}, {"tickets"},
	} {
		_, err := execute(t, nil, nil, args...)
		require.Error(t, err, "%v", args)
		assert.Contains(t, err.Error(), "no API token configured", "%v", args)
	}
}

func TestResolveToken_PrefersFlagOverStore(t *testing.T) {
	oldToken := tokenFlag
	tokenFlag = "flag-token"
	t.Cleanup(func() { tokenFlag = oldToken })

	oldConfigStore := configStore
	store := memory.NewConfigStore()
	require.NoError(t, store.Set(keyNotionToken, "stored-token"))
	configStore = store
	t.Cleanup(func() { configStore = oldConfigStore })

	assert.Equal(t, "flag-token", resolveToken(&config.Config{}))

	tokenFlag = ""
	assert.Equal(t, "stored-token", resolveToken(&config.Config{}))
	assert.Equal(t, "env-token", resolveToken(&config.Config{Token: "env-token"}))
}
