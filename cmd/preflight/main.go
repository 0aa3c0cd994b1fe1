// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	keys := strings.TrimSpace(os.Getenv("OWNER_API_KEYS"))
	apiAddr := strings.TrimSpace(os.Getenv("ADDR"))
	db := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	redis := strings.TrimSpace(os.Getenv("REDIS_ADDR"))

	if keys == "" {
		fail("OWNER_API_KEYS is empty (every API route will 401).")
	}
	for _, pair := range strings.Split(keys, ",") {
		if !strings.Contains(pair, ":") {
			warn("OWNER_API_KEYS entry " + strings.TrimSpace(pair) + " is not key:owner; it will be ignored")
		}
	}
	if strings.Contains(keys, " ") {
		warn("OWNER_API_KEYS contains spaces; use comma-separated with no spaces, e.g. key1:alice,key2:bob")
	}

	if apiAddr == "" {
		warn("ADDR is empty; default in your app may be used.")
	} else {
		ok("ADDR=" + apiAddr)
	}

	switch {
	case db != "":
		ok("DATABASE_URL present (postgres store)")
	case redis != "":
		ok("REDIS_ADDR=" + redis + " (redis store)")
	default:
		warn("DATABASE_URL and REDIS_ADDR empty — API will use the in-memory store.")
	}

	ok("preflight passed")
}
