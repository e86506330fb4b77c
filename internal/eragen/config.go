package eragen

import "time"

// Config holds build settings, loaded from the environment.
// The default source is the Japanese Wikipedia list of eras (元号一覧 (日本)).
type Config struct {
	SourceURL string        `env:"ERAGEN_SOURCE_URL" envDefault:"https://ja.wikipedia.org/wiki/%E5%85%83%E5%8F%B7%E4%B8%80%E8%A6%A7_(%E6%97%A5%E6%9C%AC)"`
	Output    string        `env:"ERAGEN_OUTPUT" envDefault:"eras.json"`
	Blocklist []string      `env:"ERAGEN_BLOCKLIST" envSeparator:"," envDefault:"-,大化,白雉,朱鳥,大宝,慶雲,和銅"`
	Timeout   time.Duration `env:"ERAGEN_TIMEOUT" envDefault:"30s"`
	Retries   uint64        `env:"ERAGEN_RETRIES" envDefault:"3"`
	ASCII     bool          `env:"ERAGEN_ASCII" envDefault:"true"`
	UserAgent string        `env:"ERAGEN_USER_AGENT" envDefault:"eradate-eragen/1.0"`
	AWSRegion string        `env:"AWS_REGION"`
}
