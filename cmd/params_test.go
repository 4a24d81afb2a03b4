package cmd

import (
	"os"
	"testing"
)

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"description_contains=camp de base", "sum_column=amount", "n=3", "desc=true"})
	if err != nil {
		t.Fatal(err)
	}
	if params["description_contains"] != "camp de base" {
		t.Errorf("params = %v", params)
	}
	if params["n"] != 3 {
		t.Errorf("n = %v (%T), want int 3", params["n"], params["n"])
	}
	if params["desc"] != true {
		t.Errorf("desc = %v, want true", params["desc"])
	}
}

func TestParseParamsEmpty(t *testing.T) {
	params, err := parseParams(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(params) != 0 {
		t.Errorf("params = %v, want empty", params)
	}
}

func TestParseParamsErrors(t *testing.T) {
	for _, arg := range []string{"novalue", "=x", "n=three", "desc=maybe"} {
		if _, err := parseParams([]string{arg}); err == nil {
			t.Errorf("parseParams(%q) did not fail", arg)
		}
	}
}

func TestOrEnv(t *testing.T) {
	t.Setenv("LVA_TEST_KEY", "from-env")

	if got := orEnv("from-flag", "LVA_TEST_KEY", "fallback"); got != "from-flag" {
		t.Errorf("flag should win, got %q", got)
	}
	if got := orEnv("", "LVA_TEST_KEY", "fallback"); got != "from-env" {
		t.Errorf("env should win over fallback, got %q", got)
	}
	os.Unsetenv("LVA_TEST_KEY")
	if got := orEnv("", "LVA_TEST_KEY", "fallback"); got != "fallback" {
		t.Errorf("fallback expected, got %q", got)
	}
}
