package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_HOST", "PORT", "APP_LOG_LEVEL", "APP_LOG_FORMAT",
	"DATA_DIR", "PUBLIC_DIR", "PASSWORD_HASH",
	"PRESENCE_BACKEND", "PRESENCE_TTL_SECOND",
	"REDIS_HOST", "REDIS_PORT", "REDIS_DB", "REDIS_PASSWORD",
	"KAFKA_BROKERS", "KAFKA_TOPIC",
	"RATE_LIMIT_PER_MINUTE", "RATE_LIMIT_BURST",
}

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// clearConfigEnv blanks every variable parseConfig reads; blank means default.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "default", args: []string{"cmd"}, want: "config.env"},
		{name: "custom", args: []string{"cmd", "-c", "myconfig.env"}, want: "myconfig.env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()

			os.Args = tt.args
			assert.Equal(t, tt.want, parseFlags())
		})
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2025-09-26\n", buf.String())
}

func TestParseConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	appHost, appPort, logLevel, logFormat,
		dataDir, publicDir, passwordHash,
		presenceBackend, presenceTTL,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		rateLimitPerMinute, rateLimitBurst,
		err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "", appHost)
	assert.Equal(t, "7860", appPort)
	assert.Equal(t, "info", logLevel)
	assert.Equal(t, "json", logFormat)
	assert.Equal(t, ".", dataDir)
	assert.Equal(t, "public", publicDir)
	assert.Equal(t, "sha256", passwordHash)
	assert.Equal(t, "memory", presenceBackend)
	assert.Equal(t, 120, presenceTTL)
	assert.Equal(t, "localhost", redisHost)
	assert.Equal(t, 6379, redisPort)
	assert.Equal(t, 0, redisDB)
	assert.Equal(t, "", redisPassword)
	assert.Empty(t, kafkaBrokers)
	assert.Equal(t, "private-messages", kafkaTopic)
	assert.Equal(t, 60, rateLimitPerMinute)
	assert.Equal(t, 10, rateLimitBurst)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("APP_LOG_FORMAT", "console")
	t.Setenv("DATA_DIR", "/var/lib/chat")
	t.Setenv("PUBLIC_DIR", "/srv/public")
	t.Setenv("PASSWORD_HASH", "bcrypt")
	t.Setenv("PRESENCE_BACKEND", "redis")
	t.Setenv("PRESENCE_TTL_SECOND", "30")
	t.Setenv("REDIS_HOST", "redis.example.com")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_PASSWORD", "redispass")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("KAFKA_TOPIC", "chat")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("RATE_LIMIT_BURST", "2")

	appHost, appPort, logLevel, logFormat,
		dataDir, publicDir, passwordHash,
		presenceBackend, presenceTTL,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		rateLimitPerMinute, rateLimitBurst,
		err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", appHost)
	assert.Equal(t, "9090", appPort)
	assert.Equal(t, "debug", logLevel)
	assert.Equal(t, "console", logFormat)
	assert.Equal(t, "/var/lib/chat", dataDir)
	assert.Equal(t, "/srv/public", publicDir)
	assert.Equal(t, "bcrypt", passwordHash)
	assert.Equal(t, "redis", presenceBackend)
	assert.Equal(t, 30, presenceTTL)
	assert.Equal(t, "redis.example.com", redisHost)
	assert.Equal(t, 6380, redisPort)
	assert.Equal(t, 2, redisDB)
	assert.Equal(t, "redispass", redisPassword)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, kafkaBrokers)
	assert.Equal(t, "chat", kafkaTopic)
	assert.Equal(t, 5, rateLimitPerMinute)
	assert.Equal(t, 2, rateLimitBurst)
}

func TestParseConfig_EnvFile(t *testing.T) {
	clearConfigEnv(t)
	for _, k := range configKeys {
		os.Unsetenv(k)
	}

	path := filepath.Join(t.TempDir(), "config.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=8181\nPRESENCE_TTL_SECOND=60\n"), 0o644))

	_, appPort, _, _, _, _, _, _, presenceTTL, _, _, _, _, _, _, _, _, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "8181", appPort)
	assert.Equal(t, 60, presenceTTL)
}

func TestParseConfig_InvalidInts(t *testing.T) {
	for _, key := range []string{
		"PRESENCE_TTL_SECOND", "REDIS_PORT", "REDIS_DB",
		"RATE_LIMIT_PER_MINUTE", "RATE_LIMIT_BURST",
	} {
		t.Run(key, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(key, "not-a-number")

			_, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
			assert.Error(t, err)
		})
	}
}

func freePort(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()
	return fmt.Sprint(lis.Addr().(*net.TCPAddr).Port)
}

func TestRun_InvalidSettings(t *testing.T) {
	tests := []struct {
		name            string
		logLevel        string
		passwordHash    string
		presenceBackend string
	}{
		{name: "bad log level", logLevel: "loud", passwordHash: "bcrypt", presenceBackend: "memory"},
		{name: "bad password hash", logLevel: "info", passwordHash: "md5", presenceBackend: "memory"},
		{name: "bad presence backend", logLevel: "info", passwordHash: "bcrypt", presenceBackend: "etcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			err := run(context.Background(),
				"127.0.0.1", freePort(t), tt.logLevel, "json",
				dir, filepath.Join(dir, "public"), tt.passwordHash,
				tt.presenceBackend, 120,
				"localhost", 6379, 0, "",
				nil, "",
				60, 10,
			)
			assert.Error(t, err)
		})
	}
}

func TestRun_ServesAPI(t *testing.T) {
	dir := t.TempDir()
	publicDir := filepath.Join(dir, "public")
	require.NoError(t, os.MkdirAll(publicDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "index.html"), []byte("<h1>chat</h1>"), 0o644))

	port := freePort(t)
	base := "http://127.0.0.1:" + port

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx,
			"127.0.0.1", port, "debug", "console",
			dir, publicDir, "sha256",
			"memory", 120,
			"localhost", 6379, 0, "",
			nil, "",
			60, 10,
		)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/index.html")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	postJSON := func(path, body string) map[string]any {
		resp, err := http.Post(base+path, "application/json", bytes.NewBufferString(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var out map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return out
	}

	alice := postJSON("/api/register", `{"username":"alice","email":"a@x.com","password":"pw1"}`)
	require.Equal(t, true, alice["success"])
	bob := postJSON("/api/register", `{"username":"bob","email":"b@x.com","password":"pw2"}`)
	require.Equal(t, true, bob["success"])

	dup := postJSON("/api/register", `{"username":"alice","email":"c@x.com","password":"pw3"}`)
	assert.Equal(t, map[string]any{"success": false, "message": "Username already exists"}, dup)

	login := postJSON("/api/login", `{"username":"b@x.com","password":"pw2"}`)
	assert.Equal(t, "Login successful", login["message"])

	aliceID := alice["user"].(map[string]any)["id"].(string)
	bobID := bob["user"].(map[string]any)["id"].(string)

	sent := postJSON("/api/chat/private", fmt.Sprintf(
		`{"userId":%q,"username":"alice","receiverId":%q,"receiverName":"bob","message":"hi"}`, aliceID, bobID))
	require.Equal(t, true, sent["success"])

	resp, err := http.Get(fmt.Sprintf("%s/api/chat/private?userId=%s&receiverId=%s", base, bobID, aliceID))
	require.NoError(t, err)
	var msgs []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msgs))
	resp.Body.Close()
	require.Len(t, msgs, 1)
	assert.Equal(t, "hi", msgs[0]["message"])

	resp, err = http.Get(base + "/api/users/online")
	require.NoError(t, err)
	var users []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	resp.Body.Close()
	require.Len(t, users, 2)
	for _, u := range users {
		assert.NotContains(t, u, "password")
		assert.Equal(t, u["id"] == aliceID, u["isOnline"])
	}

	resp, err = http.Get(base + "/swagger/doc.json")
	require.NoError(t, err)
	doc, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(doc), "/chat/private")

	stored, err := os.ReadFile(filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	var records []map[string]any
	require.NoError(t, json.Unmarshal(stored, &records))
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Regexp(t, "^[0-9a-f]{64}$", rec["password"])
	}
	_, err = os.Stat(filepath.Join(dir, "private_chats.json"))
	assert.NoError(t, err)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(12 * time.Second):
		t.Fatal("run did not stop")
	}
}
