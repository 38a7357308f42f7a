package main

import (
	"flag"
	"log"

	"github.com/shivamvijaywargi/auth-service/internal/client/api"
	"github.com/shivamvijaywargi/auth-service/internal/client/cli"
	"github.com/shivamvijaywargi/auth-service/internal/client/session"
)

func main() {
	addr := flag.String("addr", "http://localhost:3001", "auth service base URL")
	flag.Parse()

	sessionPath, err := session.DefaultPath()
	if err != nil {
		log.Fatalf("could not resolve session path: %v", err)
	}

	sess, err := session.Load(sessionPath)
	if err != nil {
		log.Fatalf("could not load session: %v", err)
	}

	app := cli.NewApp(api.New(*addr), sess)
	app.Main()
}
