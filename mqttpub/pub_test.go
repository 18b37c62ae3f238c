package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPubCommandFlags(t *testing.T) {
	cmd := pubCommand()

	tests := []struct {
		long  string
		short string
	}{
		{"client-id", "i"},
		{"host", "h"},
		{"port", "p"},
		{"user", "u"},
		{"password", "P"},
		{"retain", "r"},
		{"topic", "t"},
		{"message", "m"},
		{"help", "H"},
	}

	for _, tt := range tests {
		t.Run(tt.long, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.long)
			if flag == nil {
				t.Fatalf("flag --%s not registered", tt.long)
			}
			if flag.Shorthand != tt.short {
				t.Errorf("flag --%s shorthand = %q, want %q", tt.long, flag.Shorthand, tt.short)
			}
		})
	}
}

func TestPubCommandRequiredFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no flags", []string{}},
		{"topic only", []string{"-t", "test"}},
		{"message only", []string{"-m", "hello"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := pubCommand()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			if err := cmd.Execute(); err == nil {
				t.Error("Execute() expected error for missing required flags")
			}
		})
	}
}

func TestPubCommandUnknownFlag(t *testing.T) {
	cmd := pubCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-t", "test", "-m", "hello", "--bogus"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() expected error for unknown flag")
	}
}

func TestPubCommandHelp(t *testing.T) {
	cmd := pubCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-H"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	help := out.String()
	for _, want := range []string{"Usage", "--topic", "--message", "mqttpub -t test -m hello"} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}
}
