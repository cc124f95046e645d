package main

import (
	"flag"
	"net/http"
	"strings"

	"github.com/xxxsen/ncfile/nctest"

	"github.com/xxxsen/common/logger"
	"go.uber.org/zap"
)

var bind = flag.String("bind", ":8080", "listen address")
var users = flag.String("users", "admin:admin", "user list, eg: bob:pwd1,alice:pwd2")
var logLevel = flag.String("log_level", "debug", "log level")

func parseUsers(s string) map[string]string {
	rs := make(map[string]string)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if len(item) == 0 {
			continue
		}
		user, pwd, _ := strings.Cut(item, ":")
		rs[user] = pwd
	}
	return rs
}

func main() {
	flag.Parse()

	logger := logger.Init("", *logLevel, 0, 0, 0, true)
	us := parseUsers(*users)
	if len(us) == 0 {
		logger.Fatal("no user found")
	}
	names := make([]string, 0, len(us))
	for name := range us {
		names = append(names, name)
	}
	logger.Info("init mock server succ, start it...", zap.String("bind", *bind), zap.Strings("users", names))
	if err := http.ListenAndServe(*bind, nctest.New(us)); err != nil {
		logger.Fatal("run server fail", zap.Error(err))
	}
}
