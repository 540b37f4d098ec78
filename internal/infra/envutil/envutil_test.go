package envutil

import "testing"

func TestHostEnvKey(t *testing.T) {
	if got := HostEnvKey("CONFIG_HOME"); got != "CPPGEN_CONFIG_HOME" {
		t.Fatalf("HostEnvKey() = %q", got)
	}
}

func TestGetHostEnvTrims(t *testing.T) {
	t.Setenv("CPPGEN_CONFIG", "  a.yaml ")
	if got := GetHostEnv("CONFIG"); got != "a.yaml" {
		t.Fatalf("GetHostEnv() = %q", got)
	}
}
