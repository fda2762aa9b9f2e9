package core

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/BurntSushi/toml"
)

func (p ErrorPolicy) String() string {
	switch p {
	case PolicyAbort:
		return "abort"
	case PolicyLog:
		return "log"
	}
	return fmt.Sprintf("ErrorPolicy(%d)", int(p))
}

func (p ErrorPolicy) MarshalText() ([]byte, error) {
	switch p {
	case PolicyAbort, PolicyLog:
		return []byte(p.String()), nil
	}
	return nil, fmt.Errorf("invalid error policy %d", int(p))
}

func (p *ErrorPolicy) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "abort":
		*p = PolicyAbort
	case "log":
		*p = PolicyLog
	default:
		return fmt.Errorf("invalid error policy %q (want abort or log)", b)
	}
	return nil
}

// LoadConfigFile overlays the keys present in a TOML file onto cfg.
// Keys the file leaves out keep their current value.
func LoadConfigFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	for _, k := range md.Undecoded() {
		log.Printf("config %s: unknown key %q ignored", path, k.String())
	}
	return nil
}

// WriteConfig encodes cfg as TOML, in the form LoadConfigFile reads back.
func WriteConfig(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
