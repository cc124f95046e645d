package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// 日志库只支持以下级别, 其余值会直接panic
var supportLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"fatal": {},
	"panic": {},
}

type Config struct {
	Host         string   `json:"host"`
	User         string   `json:"user"`
	Password     string   `json:"password"`
	Thread       int      `json:"thread"`
	LogLevel     string   `json:"log_level"`
	Timeout      int64    `json:"timeout"` //秒, 0表示不限制
	DebugMode    string   `json:"debug_mode"`
	Depth        int      `json:"depth"`
	ContentTypes []string `json:"content_types"`
}

func Parse(f string) (*Config, error) {
	raw, err := os.ReadFile(f)
	if err != nil {
		return nil, fmt.Errorf("read file:%w", err)
	}
	c := &Config{
		Thread:    4,
		LogLevel:  "debug",
		DebugMode: "off",
		Depth:     1,
	}
	if err := json.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("unmarshal file:%w", err)
	}
	if len(c.Host) == 0 {
		return nil, fmt.Errorf("no host found")
	}
	if _, ok := supportLogLevels[c.LogLevel]; !ok {
		return nil, fmt.Errorf("unsupported log level:%s", c.LogLevel)
	}
	if c.Thread <= 0 {
		c.Thread = 1
	}
	return c, nil
}
