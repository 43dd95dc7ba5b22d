package tui

import (
	"context"
	"strings"
	"testing"
)

// fakeDriver replays scripted answers so wizard flows run without a
// terminal.
type fakeDriver struct {
	t        *testing.T
	inputs   []string
	confirms []bool
	selects  []int
}

func (d *fakeDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.t.Helper()
	if len(d.inputs) == 0 {
		d.t.Fatalf("unexpected input prompt %q", cfg.Message)
	}
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	if out == "" && cfg.Default != "" {
		out = cfg.Default
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(out); err != nil {
			d.t.Fatalf("scripted answer %q rejected by validator: %v", out, err)
		}
	}
	return out, nil
}

func (d *fakeDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	d.t.Helper()
	if len(d.confirms) == 0 {
		d.t.Fatalf("unexpected confirm prompt %q", cfg.Message)
	}
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *fakeDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	d.t.Helper()
	if len(d.selects) == 0 {
		d.t.Fatalf("unexpected select prompt %q", cfg.Message)
	}
	out := d.selects[0]
	d.selects = d.selects[1:]
	if out < 0 || out >= len(cfg.Options) {
		d.t.Fatalf("scripted index %d out of range for %v", out, cfg.Options)
	}
	return out, nil
}

func TestRunWizardFullSession(t *testing.T) {
	d := &fakeDriver{
		t: t,
		inputs: []string{
			"Commute map", // title
			"400",         // width
			"300",         // height
			"37.4219",     // marker lat
			"-122.0840",   // marker lng
			"#ff0000",     // marker color
			"g",           // marker label
			"1.0",         // path stop 1 lat
			"2.0",         // path stop 1 lng
			"3.0",         // path stop 2 lat
			"4.0",         // path stop 2 lng
			"3",           // path weight
			"",            // path color (default)
		},
		confirms: []bool{
			true,  // add a marker
			false, // no more markers
			true,  // add a path
			false, // no more stops
			false, // no more paths
		},
		selects: []int{
			3, // terrain
			1, // small marker
		},
	}

	b, title, err := RunWizard(context.Background(), d)
	if err != nil {
		t.Fatalf("run wizard: %v", err)
	}
	if title != "Commute map" {
		t.Fatalf("title = %q, want %q", title, "Commute map")
	}

	got, err := b.URL()
	if err != nil {
		t.Fatalf("url: %v", err)
	}
	for _, fragment := range []string{
		"&size=400x300",
		"&maptype=terrain",
		"&markers=color:0xff0000%7Csize:small%7Clabel:G%7C37.42,-122.08",
		"&path=weight:3%7C1,2%7C3,4",
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("url %q missing %q", got, fragment)
		}
	}

	if len(d.inputs) != 0 || len(d.confirms) != 0 || len(d.selects) != 0 {
		t.Fatalf("unconsumed script: %v %v %v", d.inputs, d.confirms, d.selects)
	}
}

func TestRunWizardMinimalSession(t *testing.T) {
	d := &fakeDriver{
		t:      t,
		inputs: []string{"", "", "", "10.5", "-20.25", "", ""},
		confirms: []bool{
			true,  // add a marker
			false, // no more markers
			false, // no paths
		},
		selects: []int{0}, // hybrid
	}

	b, title, err := RunWizard(context.Background(), d)
	if err != nil {
		t.Fatalf("run wizard: %v", err)
	}
	if title != "Static map" {
		t.Fatalf("title = %q, want default", title)
	}

	got, err := b.URL()
	if err != nil {
		t.Fatalf("url: %v", err)
	}
	for _, fragment := range []string{"&size=640x640", "&maptype=hybrid", "&markers=10.5,-20.25"} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("url %q missing %q", got, fragment)
		}
	}
}

func TestRunWizardNilDriver(t *testing.T) {
	if _, _, err := RunWizard(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil driver")
	}
}

func TestValidators(t *testing.T) {
	if err := validateDimension("0"); err == nil {
		t.Fatal("dimension 0 should fail")
	}
	if err := validateDimension("641"); err == nil {
		t.Fatal("dimension 641 should fail")
	}
	if err := validateDimension("640"); err != nil {
		t.Fatalf("dimension 640 should pass: %v", err)
	}
	if err := validateWeight("0"); err == nil {
		t.Fatal("weight 0 should fail")
	}
	if err := validateHexColor("#12345"); err == nil {
		t.Fatal("short hex should fail")
	}
	if err := optional(validateHexColor)(""); err != nil {
		t.Fatalf("empty optional should pass: %v", err)
	}
	if err := validateLabel("AB"); err == nil {
		t.Fatal("two character label should fail")
	}
}
