package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func verifyCmd(args []string) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "path to schemadctl YAML config")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	mgr, closeFn, err := buildManager(context.Background(), cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeFn()

	violations := mgr.Verify()
	if len(violations) == 0 {
		fmt.Println("no violations")
		return 0
	}

	for _, v := range violations {
		fmt.Fprintf(os.Stdout, "%s\n", v)
	}
	return 1
}
