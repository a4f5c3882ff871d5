package file_test

import (
	"os"
	"path/filepath"
	"testing"

	"mining-profit/pkg/domain/model"
	"mining-profit/pkg/infrastructure/file"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Default(t *testing.T) {
	conf, err := file.LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, model.NewDefaultConfig(), conf)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mph.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
work_dir = "/var/lib/mph"
output = "mph.json"
interval_seconds = 300
log_level = "debug"

[sources]
fixer_ttl_minutes = 120
equipments_file = "rigs.json"

[db]
driver = "mysql"
host = "localhost"
port = 3306
name = "mph"
user_name = "miner"
password = "secret"

[slack]
webhook_url = "https://hooks.slack.com/services/xxx"
`), 0644))

	conf, err := file.LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/mph", conf.WorkDir)
	assert.Equal(t, 300, conf.IntervalSeconds)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, 120, conf.Sources.FixerTTLMinutes)
	// 指定のない項目は既定値のまま
	assert.Equal(t, 15, conf.Sources.ProfitStatsTTLMinutes)
	assert.Equal(t, "config.json", conf.Sources.ConfigFile)
	assert.Equal(t, "rigs.json", conf.Sources.EquipmentsFile)
	assert.Equal(t, model.DB{Driver: "mysql", Path: "mph.db", Host: "localhost", Port: 3306, Name: "mph", UserName: "miner", Password: "secret"}, conf.DB)
	assert.Equal(t, "https://hooks.slack.com/services/xxx", conf.Slack.WebhookURL)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("MPH_WORK_DIR", "/tmp/mph")
	t.Setenv("MPH_SOURCES_PROFIT_STATS_TTL_MINUTES", "5")
	t.Setenv("MPH_DB_PATH", "other.db")
	t.Setenv("MPH_SLACK_WEBHOOK_URL", "https://example.com/hook")

	conf, err := file.LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mph", conf.WorkDir)
	assert.Equal(t, 5, conf.Sources.ProfitStatsTTLMinutes)
	assert.Equal(t, 60, conf.Sources.FixerTTLMinutes)
	assert.Equal(t, "other.db", conf.DB.Path)
	assert.Equal(t, "https://example.com/hook", conf.Slack.WebhookURL)
}

func TestLoadConfig_Error(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte(`work_dir = `), 0644))
	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("interval_seconds = 60\n"), 0644))

	tests := map[string]string{
		"missing file":         filepath.Join(dir, "missing.toml"),
		"broken toml":          broken,
		"watch without output": invalid,
	}
	for name, path := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := file.LoadConfig(path, nil)
			assert.Error(t, err)
		})
	}
}

func TestLoadCredentials(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fixer_api_access_key":"abc","mph_api_key":"unused"}`), 0644))

	c, err := file.LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", c.FixerAPIAccessKey)

	t.Setenv("MPH_FIXER_API_ACCESS_KEY", "from-env")
	require.NoError(t, file.ApplyCredentialEnv(c))
	assert.Equal(t, "from-env", c.FixerAPIAccessKey)

	_, err = file.LoadCredentials(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestEquipmentCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "equipments.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name":"gtx1080ti","performance":{"zcash":[680,250],"ethereum":[32,250]}},
		{"name":"antminer-s9","performance":{"bitcoin":[13500000000000,1300]}}
	]`), 0644))

	equipments, err := file.NewEquipmentCatalog(path).GetEquipments()
	require.NoError(t, err)
	require.Len(t, equipments, 2)
	assert.Equal(t, "gtx1080ti", equipments[0].Name)
	assert.Equal(t, "zcash", equipments[0].Performance[0].CoinName)
	assert.Equal(t, 250.0, equipments[0].Performance[1].Wattage)
	assert.Equal(t, 13500000000000.0, equipments[1].Performance[0].Hashrate)

	require.NoError(t, os.WriteFile(path, []byte(`[{"name":`), 0644))
	_, err = file.NewEquipmentCatalog(path).GetEquipments()
	assert.Error(t, err)
}

func TestLoadConfig_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("interval_seconds = 60\n"), 0644))

	conf, err := file.LoadConfig(path, func(c *model.Config) { c.Output = "mph.json" })
	require.NoError(t, err)
	assert.Equal(t, 60, conf.IntervalSeconds)
	assert.Equal(t, "mph.json", conf.Output)
}
