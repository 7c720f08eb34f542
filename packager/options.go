package packager

// Config holds the packager configuration.
type Config struct {
	// Logger is used for logging operations (optional)
	Logger Logger

	// Banner is the text at the start of the 256-byte Qoob header
	Banner string

	// ProductTag is the 16-byte product name in VGC images
	ProductTag string

	// DateTag is the 16-byte date field of IMG images.
	// It must sort before DateRollover.
	DateTag string

	// UF2Base is the flash address of the first UF2 block
	UF2Base uint32
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Banner:     DefaultBanner,
		ProductTag: DefaultProductTag,
		DateTag:    DefaultDateTag,
		UF2Base:    DefaultUF2Base,
	}
}

// Option is a functional option for configuring the Packager.
type Option func(*Config)

// WithLogger sets a logger for the packager operations.
//
// Example:
//
//	p := packager.New(packager.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithBanner sets the text written at the start of Qoob headers.
// Banners that would reach the page count byte are ignored.
func WithBanner(banner string) Option {
	return func(c *Config) {
		if len(banner) <= QoobPagesOffset {
			c.Banner = banner
		}
	}
}

// WithProductTag sets the product name in VGC headers.
// Tags longer than 16 bytes are ignored.
func WithProductTag(tag string) Option {
	return func(c *Config) {
		if len(tag) <= vgcFieldSize {
			c.ProductTag = tag
		}
	}
}

// WithDateTag sets the date field in IMG headers.
// Tags longer than 16 bytes, or not sorting before DateRollover, are ignored:
// the boot ROM refuses images dated after the rollover.
//
// Example:
//
//	p := packager.New(packager.WithDateTag("2001/09/14"))
func WithDateTag(tag string) Option {
	return func(c *Config) {
		if len(tag) <= imgDateSize && tag < DateRollover {
			c.DateTag = tag
		}
	}
}

// WithUF2Base sets the flash address of the first UF2 block.
func WithUF2Base(base uint32) Option {
	return func(c *Config) {
		c.UF2Base = base
	}
}
