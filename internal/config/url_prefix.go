package config

import (
	"fmt"
	"net/url"
	"strings"
)

// URLPrefix публичный адрес сервиса, всегда заканчивается на "/"
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

// ShortLink собирает публичный адрес короткой ссылки
func (p URLPrefix) ShortLink(code string) string {
	return string(p) + "u/" + code
}

func (p *URLPrefix) Set(value string) error {
	parsed, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", value, err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("base URL must be an absolute http(s) URL: %s", value)
	}
	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return fmt.Errorf("base URL must not contain query or fragment: %s", value)
	}

	*p = URLPrefix(strings.TrimSuffix(parsed.String(), "/") + "/")

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
