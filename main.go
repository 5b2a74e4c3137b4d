package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/avercoe/codedeck/config"
	"github.com/avercoe/codedeck/editor"
	"github.com/avercoe/codedeck/tree"
	"github.com/avercoe/codedeck/web"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	configPath := flag.String("config", "codedeck.yaml", "settings file path")
	dir := flag.String("dir", "", "browse a real directory instead of the sample project")
	flag.Parse()

	if err := run(*addr, *configPath, *dir); err != nil {
		fmt.Fprintf(os.Stderr, "codedeck: %v\n", err)
		os.Exit(1)
	}
}

func run(addr, configPath, dir string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}

	roots := tree.SampleProject()
	if dir != "" {
		roots, err = tree.FromDir(dir)
		if err != nil {
			return fmt.Errorf("load directory tree: %w", err)
		}
	}

	session := editor.NewSession(
		editor.WithScheduler(editor.NewCoalescer(settings.FrameInterval())),
	)
	srv := web.NewServer(session, roots, settings)

	watcher, err := config.Watch(configPath, srv.SetSettings)
	if err != nil {
		log.Printf("settings watch disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	server := &http.Server{Addr: addr, Handler: srv}
	go func() {
		<-ctx.Done()
		server.Close()
	}()

	fmt.Printf("codedeck: http://localhost%s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
