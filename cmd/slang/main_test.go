package main

import (
	"strings"
	"testing"

	"github.com/doctorn/slang/internal/codegen"
)

func TestSamplesCompile(t *testing.T) {
	for _, s := range samples() {
		cg := codegen.New()
		asm := cg.Compile(s.program)

		if s.name == "pair" {
			if len(cg.Errors()) == 0 {
				t.Fatalf("sample %q should report a diagnostic", s.name)
			}
			continue
		}
		if errs := cg.Errors(); len(errs) != 0 {
			t.Fatalf("sample %q reported errors: %v", s.name, errs)
		}
		if !strings.Contains(asm, "main:") {
			t.Fatalf("sample %q produced no main function:\n%s", s.name, asm)
		}
		if !strings.HasSuffix(asm, "\tret\n") {
			t.Fatalf("sample %q does not end with a return:\n%s", s.name, asm)
		}
	}
}
