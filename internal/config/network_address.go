package config

import (
	"fmt"
	"net"
	"strconv"
)

// NetworkAddress адрес, на котором слушает HTTP сервер
type NetworkAddress struct {
	Host string
	Port int `validate:"min=1,max=65535"`
}

func (a NetworkAddress) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set разбирает "host:port", хост может быть пустым или IPv6 в скобках
func (a *NetworkAddress) Set(value string) error {
	host, portPart, err := net.SplitHostPort(value)
	if err != nil {
		return fmt.Errorf("invalid network address %q: %w", value, err)
	}

	port, err := strconv.Atoi(portPart)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", portPart, err)
	}

	a.Host = host
	a.Port = port

	return nil
}

func (a *NetworkAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}
