package main

import (
	"bytes"
	"flag"
	"os"
	"strings"
	"testing"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-31"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !strings.Contains(output, "v1.0.0") ||
		!strings.Contains(output, "abcd1234") ||
		!strings.Contains(output, "2026-08-31") {
		t.Errorf("unexpected build info output: %s", output)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort, logLevel,
		pgHost, pgPort, _, _, _,
		pgMaxOpenConns, pgMaxIdleConns,
		minioEndpoint, _, _, minioBucket, minioUseSSL,
		dgURL, dgAPIKey, dgModel,
		err := parseConfig("does-not-exist.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appHost != "0.0.0.0" {
		t.Errorf("expected default app host, got %s", appHost)
	}
	if appPort != "5500" {
		t.Errorf("expected default port 5500, got %s", appPort)
	}
	if logLevel != "info" {
		t.Errorf("expected default log level info, got %s", logLevel)
	}
	if pgHost != "localhost" || pgPort != 5432 {
		t.Errorf("unexpected postgres defaults: %s:%d", pgHost, pgPort)
	}
	if pgMaxOpenConns != 16 || pgMaxIdleConns != 8 {
		t.Errorf("unexpected pool defaults: %d/%d", pgMaxOpenConns, pgMaxIdleConns)
	}
	if minioEndpoint != "localhost:9000" || minioBucket != "audio-uploads" || minioUseSSL {
		t.Errorf("unexpected minio defaults: %s %s %v", minioEndpoint, minioBucket, minioUseSSL)
	}
	if dgURL != "https://api.deepgram.com" || dgAPIKey != "" || dgModel != "nova-2" {
		t.Errorf("unexpected transcription provider defaults: %s %q %s", dgURL, dgAPIKey, dgModel)
	}
}

func TestParseConfig_FromEnv(t *testing.T) {
	resetEnv()

	os.Setenv("APP_PORT", "8081")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("MINIO_USE_SSL", "true")
	os.Setenv("DEEPGRAM_API_KEY", "dg-key")
	os.Setenv("DEEPGRAM_MODEL", "nova-3")
	defer resetEnv()

	_, appPort, _,
		_, pgPort, _, _, _,
		_, _,
		_, _, _, _, minioUseSSL,
		_, dgAPIKey, dgModel,
		err := parseConfig("does-not-exist.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appPort != "8081" {
		t.Errorf("expected port 8081, got %s", appPort)
	}
	if pgPort != 5433 {
		t.Errorf("expected postgres port 5433, got %d", pgPort)
	}
	if !minioUseSSL {
		t.Errorf("expected minio SSL enabled")
	}
	if dgAPIKey != "dg-key" || dgModel != "nova-3" {
		t.Errorf("unexpected transcription provider config: %q %s", dgAPIKey, dgModel)
	}
}

func TestParseConfig_InvalidPort(t *testing.T) {
	resetEnv()

	os.Setenv("POSTGRES_PORT", "not-a-number")
	defer resetEnv()

	_, _, _,
		_, _, _, _, _,
		_, _,
		_, _, _, _, _,
		_, _, _,
		err := parseConfig("does-not-exist.env")
	if err == nil {
		t.Fatal("expected error for invalid POSTGRES_PORT")
	}
}
