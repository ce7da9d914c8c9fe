package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sublee/enumname/pkg/enumtable"
)

type Level uint8

const (
	Debug Level = iota
	Info
	Warn
	Error

	LevelEnumSize
)

func (l Level) String() string                   { return levelNames.Name(l) }
func (l Level) MarshalText() ([]byte, error)     { return levelNames.MarshalText(l) }
func (l *Level) UnmarshalText(text []byte) error { return levelNames.UnmarshalText(text, l) }

type Config struct {
	Level Level `json:"level"`
}

func main() {
	b, err := json.Marshal(Config{Level: Warn})
	fmt.Println(string(b), err)

	var cfg Config
	err = json.Unmarshal([]byte(`{"level":"Error"}`), &cfg)
	fmt.Println(cfg.Level, err)

	err = json.Unmarshal([]byte(`{"level":"Fatal"}`), &cfg)
	fmt.Println(cfg.Level, errors.Is(err, enumtable.ErrUnknownName))

	_, err = json.Marshal(Config{Level: 42})
	fmt.Println(errors.Is(err, enumtable.ErrInvalidValue))
}
