package packager

import "testing"

func TestDefaultDateTagBeforeRollover(t *testing.T) {
	if !(DefaultDateTag < DateRollover) {
		t.Fatalf("DefaultDateTag %q must sort before %q", DefaultDateTag, DateRollover)
	}
	if len(DefaultDateTag) > imgDateSize {
		t.Fatalf("DefaultDateTag is %d bytes, field holds %d", len(DefaultDateTag), imgDateSize)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Logger != nil {
		t.Errorf("Logger = %v, want nil", cfg.Logger)
	}
	if cfg.Banner != "(C) gekkoboot" {
		t.Errorf("Banner = %q", cfg.Banner)
	}
	if cfg.ProductTag != "gekkoboot" {
		t.Errorf("ProductTag = %q", cfg.ProductTag)
	}
	if cfg.DateTag != "*gekkoboot" {
		t.Errorf("DateTag = %q", cfg.DateTag)
	}
	if cfg.UF2Base != 0x10080000 {
		t.Errorf("UF2Base = 0x%08X, want 0x10080000", cfg.UF2Base)
	}
}

func TestWithDateTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string
	}{
		{name: "valid date", tag: "2001/09/14", want: "2001/09/14"},
		{name: "day before rollover", tag: "2004/01/31", want: "2004/01/31"},
		{name: "rollover date", tag: "2004/02/01", want: DefaultDateTag},
		{name: "after rollover", tag: "2005/01/01", want: DefaultDateTag},
		{name: "too long", tag: "2001/09/14 12:00:00", want: DefaultDateTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			WithDateTag(tt.tag)(&cfg)
			if cfg.DateTag != tt.want {
				t.Errorf("DateTag = %q, want %q", cfg.DateTag, tt.want)
			}
		})
	}
}

func TestWithBanner(t *testing.T) {
	cfg := defaultConfig()

	WithBanner("(C) someone")(&cfg)
	if cfg.Banner != "(C) someone" {
		t.Errorf("Banner = %q, want %q", cfg.Banner, "(C) someone")
	}

	long := string(make([]byte, QoobPagesOffset+1))
	WithBanner(long)(&cfg)
	if cfg.Banner != "(C) someone" {
		t.Errorf("banner reaching the page count byte was accepted")
	}
}

func TestWithProductTag(t *testing.T) {
	cfg := defaultConfig()

	WithProductTag("swiss")(&cfg)
	if cfg.ProductTag != "swiss" {
		t.Errorf("ProductTag = %q, want %q", cfg.ProductTag, "swiss")
	}

	WithProductTag("a product tag that is too long")(&cfg)
	if cfg.ProductTag != "swiss" {
		t.Errorf("over-long product tag was accepted")
	}
}

func TestOptionsApplied(t *testing.T) {
	logger := &recordingLogger{}
	p := New(
		WithLogger(logger),
		WithUF2Base(0x10100000),
		WithDateTag("2002/01/01"),
	)

	if p.config.Logger != logger {
		t.Errorf("Logger not set")
	}
	if p.config.UF2Base != 0x10100000 {
		t.Errorf("UF2Base = 0x%08X", p.config.UF2Base)
	}
	if p.config.DateTag != "2002/01/01" {
		t.Errorf("DateTag = %q", p.config.DateTag)
	}
}
